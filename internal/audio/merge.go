package audio

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/audiocut/audiocut/internal/engine"
	"github.com/audiocut/audiocut/internal/plan"
)

// MergeRequest describes one merge invocation.
type MergeRequest struct {
	// InputDir is scanned (non-recursively) for audio files, which are
	// merged in lexicographic filename order.
	InputDir string `validate:"required"`
	// Output is the merged file path. Defaults to "<input_dir>_merged.<ext>"
	// with the extension of the first track.
	Output string
	// OverlapMs is the crossfade length at every junction.
	OverlapMs int64 `validate:"gte=0"`
	// Upload publishes the merged file through the storage backend.
	Upload bool
}

// Merge combines the audio files of a directory into one continuous file with
// equal-power crossfades at each junction. A single input file is copied
// byte for byte. Otherwise every track's duration is probed, the crossfade
// schedule planned, and one engine invocation mixes the delayed/faded streams.
func (s *Service) Merge(ctx context.Context, req MergeRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid merge request: %w", err)
	}

	files, err := listAudioFiles(req.InputDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoAudioFiles, req.InputDir)
	}

	output := req.Output
	if output == "" {
		output = filepath.Clean(req.InputDir) + "_merged" + filepath.Ext(files[0])
	}

	if len(files) == 1 {
		s.logger.Info("single track, copying verbatim",
			slog.String("input", files[0]),
			slog.String("output", output),
		)
		if err := copyFile(files[0], output); err != nil {
			return "", err
		}
		return output, s.maybePublish(ctx, req.Upload, output)
	}

	tracks := make([]plan.Track, len(files))
	for i, f := range files {
		seconds, err := s.prober.Duration(ctx, f)
		if err != nil {
			return "", fmt.Errorf("probe duration of %s: %w", f, err)
		}
		tracks[i] = plan.Track{Path: f, DurationMs: toMillis(seconds)}
	}

	mergePlan, err := plan.BuildMergePlan(tracks, req.OverlapMs)
	if err != nil {
		return "", err
	}

	args := []string{"-y"}
	graph := engine.MixGraph{Chains: make([]engine.Chain, len(mergePlan.Placements))}

	for i, pl := range mergePlan.Placements {
		args = append(args, "-i", pl.Path)

		chain := engine.Chain{Input: i}
		if pl.FadeInMs > 0 {
			chain.Ops = append(chain.Ops, engine.FadeIn{DurationMs: pl.FadeInMs})
		}
		if pl.FadeOutMs > 0 {
			chain.Ops = append(chain.Ops, engine.FadeOut{StartMs: pl.FadeOutAtMs, DurationMs: pl.FadeOutMs})
		}
		if pl.DelayMs > 0 {
			chain.Ops = append(chain.Ops, engine.Delay{Ms: pl.DelayMs})
		}
		graph.Chains[i] = chain

		s.logger.Info("placing track",
			slog.Int("index", i+1),
			slog.String("path", pl.Path),
			slog.String("delay", plan.FormatSeconds(pl.DelayMs)),
			slog.String("fade_in", plan.FormatSeconds(pl.FadeInMs)),
			slog.String("fade_out", plan.FormatSeconds(pl.FadeOutMs)),
		)
	}

	args = append(args,
		"-filter_complex", graph.FilterComplex(),
		"-map", "[out]",
		output,
	)

	s.logger.Info("mixing tracks",
		slog.Int("tracks", len(files)),
		slog.String("total", plan.FormatSeconds(mergePlan.TotalMs)),
		slog.String("output", output),
	)

	if err := s.runner.Run(ctx, args); err != nil {
		return "", fmt.Errorf("merge tracks: %w", err)
	}

	return output, s.maybePublish(ctx, req.Upload, output)
}

func (s *Service) maybePublish(ctx context.Context, upload bool, path string) error {
	if !upload {
		return nil
	}
	return s.publish(ctx, path)
}
