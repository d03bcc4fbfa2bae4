package plan

import "fmt"

// OpenEnded marks a segment that runs to the end of the input file; the engine
// is invoked without a duration argument and clips at the file boundary itself.
const OpenEnded = int64(-1)

// Segment is one planned extraction window over the input file.
type Segment struct {
	// Index is 1-based and drives the output track numbering.
	Index int
	// StartMs is the window start offset in milliseconds.
	StartMs int64
	// DurationMs is the window length, or OpenEnded for the final segment.
	DurationMs int64
}

// Open reports whether the segment runs to the end of the input.
func (s Segment) Open() bool {
	return s.DurationMs == OpenEnded
}

// SplitSegments converts K boundary timestamps and an overlap into K+1 segment
// windows covering the whole file. With zero overlap the windows are exactly
// contiguous; with a positive overlap every window after the first starts
// overlap milliseconds before its boundary, so adjacent windows share that much
// audio for a later crossfaded merge.
//
// Timestamps must be strictly increasing and positive. The overlap must not
// reach past any boundary; a start before zero is rejected rather than clamped.
func SplitSegments(timestampsMs []int64, overlapMs int64) ([]Segment, error) {
	if len(timestampsMs) == 0 {
		return nil, ErrNoTimestamps
	}
	if overlapMs < 0 {
		return nil, fmt.Errorf("%w: got %dms", ErrNegativeOverlap, overlapMs)
	}

	prev := int64(0)
	for i, ts := range timestampsMs {
		if ts <= prev {
			return nil, fmt.Errorf("%w: timestamp %d (%s) is not after %s",
				ErrTimestampOrder, i+1, FormatTimestamp(ts), FormatTimestamp(prev))
		}
		if i > 0 && overlapMs > timestampsMs[i-1] {
			return nil, fmt.Errorf("%w: overlap %dms reaches before zero at boundary %s",
				ErrOverlapExceedsBoundary, overlapMs, FormatTimestamp(timestampsMs[i-1]))
		}
		prev = ts
	}
	if overlapMs > timestampsMs[len(timestampsMs)-1] {
		return nil, fmt.Errorf("%w: overlap %dms reaches before zero at boundary %s",
			ErrOverlapExceedsBoundary, overlapMs, FormatTimestamp(timestampsMs[len(timestampsMs)-1]))
	}

	segments := make([]Segment, 0, len(timestampsMs)+1)
	segments = append(segments, Segment{Index: 1, StartMs: 0, DurationMs: timestampsMs[0]})

	for i := 1; i < len(timestampsMs); i++ {
		start := timestampsMs[i-1] - overlapMs
		segments = append(segments, Segment{
			Index:      i + 1,
			StartMs:    start,
			DurationMs: timestampsMs[i] - start,
		})
	}

	segments = append(segments, Segment{
		Index:      len(timestampsMs) + 1,
		StartMs:    timestampsMs[len(timestampsMs)-1] - overlapMs,
		DurationMs: OpenEnded,
	})

	return segments, nil
}
