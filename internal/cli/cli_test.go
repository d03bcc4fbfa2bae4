package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiocut/audiocut/internal/audio"
	"github.com/audiocut/audiocut/internal/bootstrap"
	"github.com/audiocut/audiocut/internal/config"
	"github.com/audiocut/audiocut/internal/engine"
)

func TestPrintMediaInfo(t *testing.T) {
	info := &engine.MediaInfo{
		Format: engine.FormatInfo{
			Filename:   "song.wav",
			FormatName: "wav",
			Duration:   "10.000000",
			BitRate:    "256000",
		},
		Streams: []engine.StreamInfo{
			{Index: 0, CodecType: "audio", CodecName: "pcm_s16le", SampleRate: "16000", Channels: 1},
		},
	}

	var buf bytes.Buffer
	printMediaInfo(&buf, info)

	out := buf.String()
	assert.Contains(t, out, "file:     song.wav")
	assert.Contains(t, out, "format:   wav")
	assert.Contains(t, out, "duration: 10.000000s")
	assert.Contains(t, out, "stream 0: audio pcm_s16le, 16000 Hz, 1 ch")
}

func TestOverlapMs_FlagOverridesConfigDefault(t *testing.T) {
	deps := &bootstrap.Dependencies{Config: &config.Config{DefaultOverlapMs: 500}}

	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().Int64P("overlap", "l", 0, "")

	assert.Equal(t, int64(500), overlapMs(cmd, deps), "unset flag falls back to config")

	require.NoError(t, cmd.Flags().Set("overlap", "200"))
	assert.Equal(t, int64(200), overlapMs(cmd, deps))
}

// fakeRunner records argument lists instead of invoking ffmpeg.
type fakeRunner struct {
	calls [][]string
}

func (r *fakeRunner) Run(_ context.Context, args []string) error {
	r.calls = append(r.calls, args)
	return nil
}

func TestSplitCommand_PrintsTracks(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "song.wav")
	require.NoError(t, os.WriteFile(input, []byte("stub"), 0600))

	runner := &fakeRunner{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := audio.NewService(runner, nil, nil, logger)

	orig := newDeps
	newDeps = func() (*bootstrap.Dependencies, error) {
		return &bootstrap.Dependencies{Config: &config.Config{}, Logger: logger, Service: svc}, nil
	}
	defer func() { newDeps = orig }()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"split", input, "-o", filepath.Join(tmpDir, "tracks"), "00:00:03.000"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "track_01.wav")
	assert.Contains(t, buf.String(), "track_02.wav")
	assert.Len(t, runner.calls, 2)
}
