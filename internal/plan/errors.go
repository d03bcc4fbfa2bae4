package plan

import "errors"

// Static errors for planning validation.
var (
	// ErrNoTimestamps is returned when a split is requested without any timestamps.
	ErrNoTimestamps = errors.New("no timestamps provided")
	// ErrNegativeOverlap is returned when the overlap is negative.
	ErrNegativeOverlap = errors.New("overlap must not be negative")
	// ErrTimestampOrder is returned when timestamps are not strictly increasing.
	ErrTimestampOrder = errors.New("timestamps must be strictly increasing")
	// ErrOverlapExceedsBoundary is returned when the overlap reaches past a
	// boundary timestamp, which would place a segment start before zero.
	ErrOverlapExceedsBoundary = errors.New("overlap exceeds boundary timestamp")
	// ErrNoTracks is returned when a merge is requested without any tracks.
	ErrNoTracks = errors.New("no tracks provided")
	// ErrOverlapExceedsTrack is returned when the overlap is longer than one of
	// the tracks adjacent to a crossfade junction.
	ErrOverlapExceedsTrack = errors.New("overlap exceeds adjacent track duration")
	// ErrInvalidTimestamp is returned when a timestamp string cannot be parsed.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
