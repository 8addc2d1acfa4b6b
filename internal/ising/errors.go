package ising

import (
	"errors"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/rng"
)

// Construction and sampling errors.
var (
	// ErrInvalidSize indicates a lattice length below 1.
	ErrInvalidSize = errors.New("ising: lattice size must be at least 1")

	// ErrInvalidTemperature indicates a temperature that is not strictly positive.
	ErrInvalidTemperature = errors.New("ising: temperature must be positive")

	// ErrUnknownGenerator indicates a generator name rng.New does not know.
	ErrUnknownGenerator = rng.ErrUnknownGenerator

	// ErrUnknownInitPolicy indicates an unrecognised initial spin configuration name.
	ErrUnknownInitPolicy = errors.New("ising: unknown init policy")

	// ErrInvalidSampleCount indicates a negative burn-in or sample count.
	ErrInvalidSampleCount = errors.New("ising: sweep counts must be non-negative")
)
