package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"FFMPEG_PATH", "FFPROBE_PATH", "TEMP_DIR", "DEFAULT_OVERLAP_MS",
		"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "LOG_FORMAT", "LOG_LEVEL",
	} {
		// t.Setenv registers the restore, Unsetenv makes the var truly absent
		// so envconfig defaults apply.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/audiocut", cfg.TempDir)
	assert.Equal(t, int64(0), cfg.DefaultOverlapMs)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.FFmpegPath)
	assert.False(t, cfg.S3Enabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("FFMPEG_PATH", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("FFPROBE_PATH", "/opt/ffmpeg/bin/ffprobe")
	t.Setenv("TEMP_DIR", "/var/tmp/cut")
	t.Setenv("DEFAULT_OVERLAP_MS", "200")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "/opt/ffmpeg/bin/ffprobe", cfg.FFprobePath)
	assert.Equal(t, "/var/tmp/cut", cfg.TempDir)
	assert.Equal(t, int64(200), cfg.DefaultOverlapMs)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestS3Enabled(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.S3Enabled())

	cfg.S3Bucket = "outputs"
	assert.False(t, cfg.S3Enabled(), "bucket alone is not enough")

	cfg.S3Region = "eu-west-1"
	assert.True(t, cfg.S3Enabled())
}

func TestString_MasksCredentials(t *testing.T) {
	cfg := &Config{
		AWSAccessKeyID:     "AKIAEXAMPLE",
		AWSSecretAccessKey: "verysecret",
		S3Bucket:           "outputs",
	}

	s := cfg.String()
	assert.NotContains(t, s, "AKIAEXAMPLE")
	assert.NotContains(t, s, "verysecret")
	assert.Contains(t, s, "outputs")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.input), tt.input)
	}
}
