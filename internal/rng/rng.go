// Package rng provides the seeded pseudo-random sources that drive the
// Monte Carlo engine.
//
// Every engine owns its own Source. Sources are not safe for concurrent use;
// parallel simulations create one Source per engine.
package rng

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// Generator names accepted by New.
const (
	PCG     = "pcg"
	MT19937 = "mt19937"
)

var (
	// ErrUnknownGenerator is returned by New for an unregistered generator name.
	ErrUnknownGenerator = errors.New("rng: unknown generator")

	// ErrSeedOutOfRange is returned by New for a seed the generator cannot
	// take without collapsing it onto another seed.
	ErrSeedOutOfRange = errors.New("rng: seed out of range")
)

// Source is the randomness an engine consumes: uniform site indices and
// uniform acceptance draws.
type Source interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

var generators = map[string]func(seed int64) (Source, error){
	PCG: func(seed int64) (Source, error) { return NewPCG(seed), nil },
	// MT19937 has a 32-bit seed, so only seeds in [0, 2^32) are distinct.
	MT19937: func(seed int64) (Source, error) {
		if seed < 0 || seed > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %s takes seeds in [0, %d], got %d", ErrSeedOutOfRange, MT19937, uint64(math.MaxUint32), seed)
		}
		return NewMT19937(uint32(seed)), nil
	},
}

// NewPCG returns a math/rand/v2 generator backed by PCG and seeded
// deterministically from seed.
func NewPCG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// New builds the named generator seeded with seed. An empty name selects PCG.
// PCG takes any int64 seed; MT19937 only seeds that fit in 32 bits.
func New(name string, seed int64) (Source, error) {
	if name == "" {
		name = PCG
	}
	fn, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownGenerator, name, Names())
	}
	return fn(seed)
}

// Names lists the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
