// Package engine wraps the external ffmpeg/ffprobe binaries. It executes
// argument lists built by the orchestration layer and reports failures with
// the engine's own diagnostics attached; it never interprets media itself.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// Engine invokes the ffmpeg and ffprobe CLIs as subprocesses.
type Engine struct {
	// ffmpegPath is the path to the ffmpeg binary. Defaults to "ffmpeg".
	ffmpegPath string
	// ffprobePath is the path to the ffprobe binary. Defaults to "ffprobe".
	ffprobePath string
	logger      *slog.Logger
}

// New creates an Engine. Empty paths default to "ffmpeg" and "ffprobe"
// (resolved via PATH).
func New(ffmpegPath, ffprobePath string, logger *slog.Logger) *Engine {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath, logger: logger}
}

// Run executes ffmpeg with the given arguments, waiting for completion.
// A non-zero exit is returned as an *FFmpegError carrying the captured stderr
// verbatim. Context cancellation is reported distinctly.
func (e *Engine) Run(ctx context.Context, args []string) error {
	e.logger.Debug("running ffmpeg", slog.Any("args", args))

	// #nosec G204 - ffmpegPath is set by the application, not user input
	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg cancelled: %w", ctx.Err())
		}
		return &FFmpegError{
			Args:   args,
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	return nil
}

// FFmpegError represents a failed ffmpeg invocation, including the stderr
// output the engine produced.
type FFmpegError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *FFmpegError) Error() string {
	return fmt.Sprintf("ffmpeg error: %v\nargs: %v\nstderr: %s", e.Err, e.Args, e.Stderr)
}

func (e *FFmpegError) Unwrap() error {
	return e.Err
}
