package metrics

import (
	"math"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
)

// MeanEnergy is the running ⟨ε⟩.
type MeanEnergy struct {
	name    string
	sum     float64
	samples int
}

func NewMeanEnergy() *MeanEnergy {
	return &MeanEnergy{name: "expected_epsilon"}
}

func (e *MeanEnergy) Name() string { return e.name }

func (e *MeanEnergy) Observe(sweep int, m *ising.Model) {
	e.sum += m.EnergyPerSite()
	e.samples++
}

func (e *MeanEnergy) Value() float64 {
	if e.samples == 0 {
		return math.NaN()
	}
	return e.sum / float64(e.samples)
}

func (e *MeanEnergy) Reset() {
	e.sum = 0
	e.samples = 0
}

// SpecificHeat is the running C_v = (⟨E²⟩ - ⟨E⟩²)/(N·T²).
type SpecificHeat struct {
	name    string
	sum     float64
	sumSq   float64
	sites   int
	temp    float64
	samples int
}

func NewSpecificHeat() *SpecificHeat {
	return &SpecificHeat{name: "C_v"}
}

func (c *SpecificHeat) Name() string { return c.name }

func (c *SpecificHeat) Observe(sweep int, m *ising.Model) {
	e := float64(m.Energy())
	c.sum += e
	c.sumSq += e * e
	c.sites = m.Sites()
	c.temp = m.Temperature()
	c.samples++
}

func (c *SpecificHeat) Value() float64 {
	if c.samples == 0 {
		return math.NaN()
	}
	n := float64(c.samples)
	mean := c.sum / n
	return (c.sumSq/n - mean*mean) / (float64(c.sites) * c.temp * c.temp)
}

func (c *SpecificHeat) Reset() {
	c.sum = 0
	c.sumSq = 0
	c.samples = 0
}
