package audio

import "errors"

// Static errors for audio operations.
var (
	// ErrInputNotFound is returned when a referenced input file is absent.
	ErrInputNotFound = errors.New("input file does not exist")
	// ErrDirNotFound is returned when the merge input directory is absent.
	ErrDirNotFound = errors.New("input directory does not exist")
	// ErrNotADirectory is returned when the merge input path is not a directory.
	ErrNotADirectory = errors.New("input path is not a directory")
	// ErrNoAudioFiles is returned when a directory contains no matching audio files.
	ErrNoAudioFiles = errors.New("no audio files found in directory")
	// ErrInvalidRange is returned when a trim window is empty or reversed.
	ErrInvalidRange = errors.New("end timestamp must be after start timestamp")
	// ErrNoPadding is returned when a pad operation requests no silence at all.
	ErrNoPadding = errors.New("no padding requested")
)
