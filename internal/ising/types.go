package ising

import (
	"fmt"
	"math"
)

// Spin is the value of a single lattice site.
type Spin int8

const (
	Up   Spin = 1
	Down Spin = -1
)

// InitPolicy selects the initial spin configuration.
type InitPolicy int

const (
	// Ordered sets every spin to +1.
	Ordered InitPolicy = iota
	// Random draws every spin independently, ±1 with probability ½.
	Random
	// Checkerboard alternates spins; sites with even i+j start at -1.
	Checkerboard
)

var initPolicyNames = map[InitPolicy]string{
	Ordered:      "ordered",
	Random:       "random",
	Checkerboard: "checkerboard",
}

func (p InitPolicy) String() string {
	if name, ok := initPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("InitPolicy(%d)", int(p))
}

// ParseInitPolicy maps a policy name to its value.
func ParseInitPolicy(name string) (InitPolicy, error) {
	for p, n := range initPolicyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInitPolicy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (p InitPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *InitPolicy) UnmarshalText(text []byte) error {
	v, err := ParseInitPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Config describes one engine. Temperature is fixed for the lifetime of the
// engine; a different temperature needs a new Model.
type Config struct {
	Size        int
	Temperature float64
	Init        InitPolicy
	// Seed must lie in [0, 2^32) when Generator is mt19937.
	Seed        int64
	// Generator names the random source, see rng.Names. Empty means PCG.
	Generator   string
}

// Validate checks the construction preconditions.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidSize, c.Size)
	}
	if math.IsNaN(c.Temperature) || c.Temperature <= 0 {
		return fmt.Errorf("%w, got %g", ErrInvalidTemperature, c.Temperature)
	}
	if _, ok := initPolicyNames[c.Init]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownInitPolicy, int(c.Init))
	}
	return nil
}

// Observer is notified after every sweep run by Model.Sample. sweep counts
// completed sweeps starting at 1, burn-in included.
type Observer interface {
	Observe(sweep int, m *Model)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(sweep int, m *Model)

func (f ObserverFunc) Observe(sweep int, m *Model) { f(sweep, m) }

// Samples holds the energy and magnetization recorded after each sampled sweep.
type Samples struct {
	Energy        []int
	Magnetization []int
}

// Len returns the number of recorded sweeps.
func (s *Samples) Len() int { return len(s.Energy) }
