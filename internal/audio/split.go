package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/audiocut/audiocut/internal/plan"
)

// SplitRequest describes one split invocation.
type SplitRequest struct {
	// Input is the audio file to split.
	Input string `validate:"required"`
	// OutputDir receives the track files. Defaults to "<input>_tracks".
	OutputDir string
	// Timestamps are the boundary offsets in HH:MM:SS.mmm form.
	Timestamps []string `validate:"required,min=1,dive,required"`
	// OverlapMs extends every non-first segment backwards across its
	// boundary, for later crossfaded merging.
	OverlapMs int64 `validate:"gte=0"`
	// Upload publishes every produced track through the storage backend.
	Upload bool
}

// Split cuts the input at the requested boundaries into K+1 track files named
// track_01, track_02, … in the output directory. Segments are extracted
// sequentially with stream copy; a failure aborts immediately and leaves any
// earlier tracks on disk.
func (s *Service) Split(ctx context.Context, req SplitRequest) ([]string, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid split request: %w", err)
	}
	if err := statFile(req.Input); err != nil {
		return nil, err
	}

	timestamps := make([]int64, len(req.Timestamps))
	for i, ts := range req.Timestamps {
		ms, err := plan.ParseTimestamp(ts)
		if err != nil {
			return nil, err
		}
		timestamps[i] = ms
	}

	segments, err := plan.SplitSegments(timestamps, req.OverlapMs)
	if err != nil {
		return nil, err
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = withoutExt(req.Input) + "_tracks"
	}
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	ext := filepath.Ext(req.Input)
	tracks := make([]string, 0, len(segments))

	for _, seg := range segments {
		output := filepath.Join(outputDir, fmt.Sprintf("track_%02d%s", seg.Index, ext))

		args := []string{
			"-y",
			"-ss", plan.FormatSeconds(seg.StartMs),
		}
		if !seg.Open() {
			args = append(args, "-t", plan.FormatSeconds(seg.DurationMs))
		}
		args = append(args,
			"-i", req.Input,
			"-c", "copy",
			output,
		)

		s.logger.Info("extracting segment",
			slog.Int("index", seg.Index),
			slog.String("start", plan.FormatSeconds(seg.StartMs)),
			slog.Bool("open_ended", seg.Open()),
			slog.String("output", output),
		)

		if err := s.runner.Run(ctx, args); err != nil {
			return tracks, fmt.Errorf("extract segment %d: %w", seg.Index, err)
		}

		tracks = append(tracks, output)
	}

	if req.Upload {
		for _, track := range tracks {
			if err := s.publish(ctx, track); err != nil {
				return tracks, err
			}
		}
	}

	return tracks, nil
}
