package plan

import "fmt"

// Track is one merge input with its engine-reported duration.
type Track struct {
	Path       string
	DurationMs int64
}

// Placement schedules one track on the shared merge timeline. Fade offsets are
// relative to the track's own time origin; DelayMs places it on the timeline.
type Placement struct {
	Path       string
	DurationMs int64
	// DelayMs is the start offset on the shared timeline.
	DelayMs int64
	// FadeInMs is the fade-in length at the track start; zero means no fade-in.
	FadeInMs int64
	// FadeOutAtMs is where the fade-out begins within the track; meaningful
	// only when FadeOutMs is positive.
	FadeOutAtMs int64
	// FadeOutMs is the fade-out length at the track end; zero means no fade-out.
	FadeOutMs int64
}

// MergePlan is the full crossfade schedule for one merge invocation.
type MergePlan struct {
	Placements []Placement
	// TotalMs is the reconstructed timeline length:
	// sum of track durations minus (N-1) overlaps.
	TotalMs int64
}

// nextTotal folds one track into the running timeline length. Each track after
// the first is slid back by the overlap, contracting the timeline.
func nextTotal(prevMs, durationMs, overlapMs int64, first bool) int64 {
	if first {
		return durationMs
	}
	return prevMs + durationMs - overlapMs
}

// BuildMergePlan schedules N ordered tracks with equal-power crossfades of
// overlapMs at every junction. The caller supplies the track order; for split
// output, lexicographic filename order reproduces the original timeline.
//
// The first track fades out over its last overlapMs, the last fades in over its
// first overlapMs, and interior tracks do both. Each track after the first is
// delayed to start overlapMs before the previous running total, so the faded
// regions coincide. With one track or zero overlap no fades are scheduled.
func BuildMergePlan(tracks []Track, overlapMs int64) (*MergePlan, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	if overlapMs < 0 {
		return nil, fmt.Errorf("%w: got %dms", ErrNegativeOverlap, overlapMs)
	}

	// A fade longer than either side of a junction would schedule a negative
	// fade start or negative delay. Reject rather than clamp.
	for i := 1; i < len(tracks); i++ {
		if overlapMs > tracks[i-1].DurationMs || overlapMs > tracks[i].DurationMs {
			return nil, fmt.Errorf("%w: overlap %dms at junction %d (%s -> %s)",
				ErrOverlapExceedsTrack, overlapMs, i, tracks[i-1].Path, tracks[i].Path)
		}
	}

	p := &MergePlan{Placements: make([]Placement, 0, len(tracks))}
	total := int64(0)

	for i, tr := range tracks {
		first := i == 0
		last := i == len(tracks)-1

		pl := Placement{Path: tr.Path, DurationMs: tr.DurationMs}
		if !first {
			pl.DelayMs = total - overlapMs
			pl.FadeInMs = overlapMs
		}
		if !last && overlapMs > 0 {
			pl.FadeOutAtMs = tr.DurationMs - overlapMs
			pl.FadeOutMs = overlapMs
		}

		total = nextTotal(total, tr.DurationMs, overlapMs, first)
		p.Placements = append(p.Placements, pl)
	}

	p.TotalMs = total
	return p, nil
}
