package metrics

import (
	"math"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
)

// TracePoint is the running means after N sweeps.
type TracePoint struct {
	N                int
	Epsilon          float64
	AbsMagnetization float64
}

// Trace records running ⟨ε⟩ and ⟨|m|⟩ as a function of the number of
// sweeps, the data behind a burn-in plot. With Every > 1 only every Every-th
// sweep is kept; the running sums still include every sweep.
type Trace struct {
	name   string
	every  int
	sumE   float64
	sumM   float64
	n      int
	points []TracePoint
}

// NewTrace returns a trace keeping every every-th point. Values below 1
// keep every point.
func NewTrace(every int) *Trace {
	if every < 1 {
		every = 1
	}
	return &Trace{name: "trace", every: every}
}

func (t *Trace) Name() string { return t.name }

func (t *Trace) Observe(sweep int, m *ising.Model) {
	t.sumE += m.EnergyPerSite()
	t.sumM += math.Abs(m.MagnetizationPerSite())
	t.n++
	if t.n%t.every != 0 {
		return
	}
	t.points = append(t.points, TracePoint{
		N:                t.n,
		Epsilon:          t.sumE / float64(t.n),
		AbsMagnetization: t.sumM / float64(t.n),
	})
}

// Value returns the latest running ⟨ε⟩.
func (t *Trace) Value() float64 {
	if t.n == 0 {
		return math.NaN()
	}
	return t.sumE / float64(t.n)
}

// Points returns the recorded points.
func (t *Trace) Points() []TracePoint {
	out := make([]TracePoint, len(t.points))
	copy(out, t.points)
	return out
}

func (t *Trace) Reset() {
	t.sumE = 0
	t.sumM = 0
	t.n = 0
	t.points = nil
}
