package metrics

import (
	"math"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
)

// AcceptanceRate reports the fraction of flip attempts the observed engine
// has accepted over its lifetime, as of the last observed sweep.
type AcceptanceRate struct {
	name     string
	attempts uint64
	accepted uint64
}

func NewAcceptanceRate() *AcceptanceRate {
	return &AcceptanceRate{name: "acceptance_rate"}
}

func (a *AcceptanceRate) Name() string { return a.name }

func (a *AcceptanceRate) Observe(sweep int, m *ising.Model) {
	a.attempts = m.Attempted()
	a.accepted = m.Accepted()
}

func (a *AcceptanceRate) Value() float64 {
	if a.attempts == 0 {
		return math.NaN()
	}
	return float64(a.accepted) / float64(a.attempts)
}

func (a *AcceptanceRate) Reset() {
	a.attempts = 0
	a.accepted = 0
}
