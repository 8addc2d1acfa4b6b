package stats

import "errors"

var (
	// ErrNoSamples indicates an empty sample sequence.
	ErrNoSamples = errors.New("stats: no samples")

	// ErrLengthMismatch indicates paired sequences of different lengths.
	ErrLengthMismatch = errors.New("stats: sequence lengths differ")

	// ErrInvalidSites indicates a non-positive site count.
	ErrInvalidSites = errors.New("stats: site count must be positive")

	// ErrInvalidTemperature indicates a temperature that is not strictly positive.
	ErrInvalidTemperature = errors.New("stats: temperature must be positive")

	// ErrTooFewPoints indicates a fit with fewer than two points.
	ErrTooFewPoints = errors.New("stats: need at least two points")

	// ErrDegenerateFit indicates a fit whose x values are all equal.
	ErrDegenerateFit = errors.New("stats: x values have no spread")

	// ErrUnknownMode indicates an unrecognised magnetization mode name.
	ErrUnknownMode = errors.New("stats: unknown magnetization mode")
)
