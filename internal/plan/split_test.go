package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSegments_NoOverlap(t *testing.T) {
	// 10s file split at 3s and 7s: [0,3) [3,7) [7,end)
	segs, err := SplitSegments([]int64{3000, 7000}, 0)
	require.NoError(t, err)
	require.Len(t, segs, 3)

	assert.Equal(t, Segment{Index: 1, StartMs: 0, DurationMs: 3000}, segs[0])
	assert.Equal(t, Segment{Index: 2, StartMs: 3000, DurationMs: 4000}, segs[1])
	assert.Equal(t, Segment{Index: 3, StartMs: 7000, DurationMs: OpenEnded}, segs[2])
	assert.True(t, segs[2].Open())
}

func TestSplitSegments_WithOverlap(t *testing.T) {
	// Same boundaries, 200ms overlap: [0,3) [2.8,7) [6.8,end)
	segs, err := SplitSegments([]int64{3000, 7000}, 200)
	require.NoError(t, err)
	require.Len(t, segs, 3)

	assert.Equal(t, Segment{Index: 1, StartMs: 0, DurationMs: 3000}, segs[0])
	assert.Equal(t, Segment{Index: 2, StartMs: 2800, DurationMs: 4200}, segs[1])
	assert.Equal(t, Segment{Index: 3, StartMs: 6800, DurationMs: OpenEnded}, segs[2])
}

func TestSplitSegments_SingleTimestamp(t *testing.T) {
	segs, err := SplitSegments([]int64{5000}, 0)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Index: 1, StartMs: 0, DurationMs: 5000}, segs[0])
	assert.Equal(t, Segment{Index: 2, StartMs: 5000, DurationMs: OpenEnded}, segs[1])
}

func TestSplitSegments_BoundariesAreExact(t *testing.T) {
	// Each closed segment must end exactly on its boundary timestamp and,
	// with zero overlap, start exactly where the previous one ended.
	timestamps := []int64{1234, 5678, 9999, 12345}

	segs, err := SplitSegments(timestamps, 0)
	require.NoError(t, err)
	require.Len(t, segs, len(timestamps)+1)

	for i := 0; i < len(segs)-1; i++ {
		assert.Equal(t, timestamps[i], segs[i].StartMs+segs[i].DurationMs,
			"segment %d must end on its boundary", i+1)
		assert.Equal(t, segs[i].StartMs+segs[i].DurationMs, segs[i+1].StartMs,
			"segment %d must be contiguous with segment %d", i+1, i+2)
	}

	withOverlap, err := SplitSegments(timestamps, 250)
	require.NoError(t, err)
	for i := 1; i < len(withOverlap)-1; i++ {
		assert.Equal(t, timestamps[i-1]-250, withOverlap[i].StartMs)
		assert.Equal(t, timestamps[i], withOverlap[i].StartMs+withOverlap[i].DurationMs)
	}
}

func TestSplitSegments_Validation(t *testing.T) {
	tests := []struct {
		name       string
		timestamps []int64
		overlapMs  int64
		wantErr    error
	}{
		{"no timestamps", nil, 0, ErrNoTimestamps},
		{"negative overlap", []int64{3000}, -1, ErrNegativeOverlap},
		{"zero first timestamp", []int64{0, 3000}, 0, ErrTimestampOrder},
		{"duplicate timestamps", []int64{3000, 3000}, 0, ErrTimestampOrder},
		{"out of order", []int64{7000, 3000}, 0, ErrTimestampOrder},
		{"overlap past first boundary", []int64{100, 3000}, 200, ErrOverlapExceedsBoundary},
		{"overlap past only boundary", []int64{100}, 200, ErrOverlapExceedsBoundary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitSegments(tt.timestamps, tt.overlapMs)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
