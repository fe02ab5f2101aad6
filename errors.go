package powgo

import "errors"

var (
	// ErrInvalidSetSize is returned when a requested set size is negative.
	ErrInvalidSetSize = errors.New("set size must not be negative")

	// ErrInvalidTripletCount is returned when the configured triplet count
	// is negative.
	ErrInvalidTripletCount = errors.New("triplet count must not be negative")

	// ErrInvalidLevels is returned when the configured partition prefix
	// length is negative.
	ErrInvalidLevels = errors.New("combiner levels must not be negative")
)
