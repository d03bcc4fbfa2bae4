package audio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/audiocut/audiocut/internal/engine"
	"github.com/audiocut/audiocut/internal/plan"
)

// PadRequest describes a silence-padding invocation.
type PadRequest struct {
	Input string `validate:"required"`
	// Output defaults to "<input>_padded.<ext>".
	Output string
	// StartMs is leading silence, EndMs trailing silence. At least one must
	// be positive.
	StartMs int64 `validate:"gte=0"`
	EndMs   int64 `validate:"gte=0"`
}

// Pad inserts silence before and/or after the audio.
func (s *Service) Pad(ctx context.Context, req PadRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid pad request: %w", err)
	}
	if req.StartMs == 0 && req.EndMs == 0 {
		return "", ErrNoPadding
	}
	if err := statFile(req.Input); err != nil {
		return "", err
	}

	output := req.Output
	if output == "" {
		output = withoutExt(req.Input) + "_padded" + ext(req.Input)
	}

	chain := engine.Chain{}
	if req.StartMs > 0 {
		chain.Ops = append(chain.Ops, engine.Delay{Ms: req.StartMs})
	}
	if req.EndMs > 0 {
		chain.Ops = append(chain.Ops, engine.Pad{Ms: req.EndMs})
	}

	args := []string{
		"-y",
		"-i", req.Input,
		"-af", chain.Filter(),
		output,
	}

	s.logger.Info("padding audio",
		slog.String("input", req.Input),
		slog.String("start", plan.FormatSeconds(req.StartMs)),
		slog.String("end", plan.FormatSeconds(req.EndMs)),
		slog.String("output", output),
	)

	if err := s.runner.Run(ctx, args); err != nil {
		return "", fmt.Errorf("pad audio: %w", err)
	}
	return output, nil
}

// TrimRequest describes a trim invocation.
type TrimRequest struct {
	Input string `validate:"required"`
	// Start and End bound the kept window, in HH:MM:SS.mmm form.
	Start string `validate:"required"`
	End   string `validate:"required"`
	// Output defaults to "<input>_trimmed.<ext>".
	Output string
}

// Trim keeps only the [start, end) window of the input, with stream copy.
func (s *Service) Trim(ctx context.Context, req TrimRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid trim request: %w", err)
	}
	if err := statFile(req.Input); err != nil {
		return "", err
	}

	startMs, err := plan.ParseTimestamp(req.Start)
	if err != nil {
		return "", err
	}
	endMs, err := plan.ParseTimestamp(req.End)
	if err != nil {
		return "", err
	}
	if endMs <= startMs {
		return "", fmt.Errorf("%w: %s to %s", ErrInvalidRange, req.Start, req.End)
	}

	output := req.Output
	if output == "" {
		output = withoutExt(req.Input) + "_trimmed" + ext(req.Input)
	}

	args := []string{
		"-y",
		"-ss", plan.FormatSeconds(startMs),
		"-t", plan.FormatSeconds(endMs - startMs),
		"-i", req.Input,
		"-c", "copy",
		output,
	}

	s.logger.Info("trimming audio",
		slog.String("input", req.Input),
		slog.String("start", req.Start),
		slog.String("end", req.End),
		slog.String("output", output),
	)

	if err := s.runner.Run(ctx, args); err != nil {
		return "", fmt.Errorf("trim audio: %w", err)
	}
	return output, nil
}

// ExtractRequest describes an audio-extraction invocation.
type ExtractRequest struct {
	Input string `validate:"required"`
	// Output defaults to "<input>.m4a".
	Output string
}

// Extract pulls the audio track out of a video container without re-encoding.
func (s *Service) Extract(ctx context.Context, req ExtractRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid extract request: %w", err)
	}
	if err := statFile(req.Input); err != nil {
		return "", err
	}

	output := req.Output
	if output == "" {
		output = withoutExt(req.Input) + ".m4a"
	}

	args := []string{
		"-y",
		"-i", req.Input,
		"-vn",
		"-acodec", "copy",
		output,
	}

	s.logger.Info("extracting audio",
		slog.String("input", req.Input),
		slog.String("output", output),
	)

	if err := s.runner.Run(ctx, args); err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	return output, nil
}

// ReplaceRequest describes an audio-replacement invocation.
type ReplaceRequest struct {
	Video string `validate:"required"`
	Audio string `validate:"required"`
	// Output defaults to "<video>_replaced.<ext>".
	Output string
}

// Replace swaps the video's audio track for the given audio file, copying the
// video stream and cutting at the shorter of the two.
func (s *Service) Replace(ctx context.Context, req ReplaceRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid replace request: %w", err)
	}
	if err := statFile(req.Video); err != nil {
		return "", err
	}
	if err := statFile(req.Audio); err != nil {
		return "", err
	}

	output := req.Output
	if output == "" {
		output = withoutExt(req.Video) + "_replaced" + ext(req.Video)
	}

	args := []string{
		"-y",
		"-i", req.Video,
		"-i", req.Audio,
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "copy",
		"-shortest",
		output,
	}

	s.logger.Info("replacing audio track",
		slog.String("video", req.Video),
		slog.String("audio", req.Audio),
		slog.String("output", output),
	)

	if err := s.runner.Run(ctx, args); err != nil {
		return "", fmt.Errorf("replace audio: %w", err)
	}
	return output, nil
}

// Info reports container and stream metadata for a media file.
func (s *Service) Info(ctx context.Context, path string) (*engine.MediaInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path given", ErrInputNotFound)
	}
	if err := statFile(path); err != nil {
		return nil, err
	}
	return s.prober.Probe(ctx, path)
}
