// Package metrics holds per-sweep observers that accumulate running
// quantities while an engine samples: means of ε and |m|, fluctuation based
// C_v and χ, the acceptance rate and a burn-in trace.
package metrics

import (
	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
)

// Metric is an ising.Observer that reduces what it sees to one number.
type Metric interface {
	ising.Observer
	Name() string
	Value() float64
	Reset()
}

// Default returns a fresh set of the standard metrics. mode selects how χ
// treats the sign of M.
func Default(mode stats.MagnetizationMode) []Metric {
	return []Metric{
		NewMeanEnergy(),
		NewMeanAbsMagnetization(),
		NewSpecificHeat(),
		NewSusceptibility(mode),
		NewAcceptanceRate(),
	}
}

// Observers adapts metrics for ising.Model.Sample.
func Observers(metrics []Metric) []ising.Observer {
	out := make([]ising.Observer, len(metrics))
	for i, m := range metrics {
		out[i] = m
	}
	return out
}

// Collect returns the current value of every metric keyed by name.
func Collect(metrics []Metric) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

type afterBurnIn struct {
	Metric
	burnIn int
}

// AfterBurnIn wraps m so it ignores the first burnIn sweeps.
func AfterBurnIn(burnIn int, m Metric) Metric {
	return &afterBurnIn{Metric: m, burnIn: burnIn}
}

func (a *afterBurnIn) Observe(sweep int, m *ising.Model) {
	if sweep <= a.burnIn {
		return
	}
	a.Metric.Observe(sweep, m)
}
