package ising

import (
	"fmt"
	"math"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/rng"
)

// Model is an L×L periodic Ising lattice with Metropolis dynamics.
type Model struct {
	cfg   Config
	size  int
	spins []Spin // row-major, index i*size+j

	// next[x] and prev[x] are the periodic neighbours of row or column x.
	next []int
	prev []int

	energy        int
	magnetization int
	beta          float64
	table         AcceptanceTable

	src rng.Source

	attempted uint64
	accepted  uint64
}

// New validates cfg and builds a model with the generator named by
// cfg.Generator, seeded with cfg.Seed.
func New(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := rng.New(cfg.Generator, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return newModel(cfg, src), nil
}

// NewWithSource builds a model that draws from src. The model takes
// ownership of src; it must not be shared with another model.
func NewWithSource(cfg Config, src rng.Source) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("ising: nil random source")
	}
	return newModel(cfg, src), nil
}

func newModel(cfg Config, src rng.Source) *Model {
	L := cfg.Size
	m := &Model{
		cfg:   cfg,
		size:  L,
		spins: make([]Spin, L*L),
		next:  make([]int, L),
		prev:  make([]int, L),
		beta:  1 / cfg.Temperature,
		src:   src,
	}
	for x := 0; x < L; x++ {
		m.next[x] = (x + 1) % L
		m.prev[x] = (x - 1 + L) % L
	}
	m.initSpins(cfg.Init)
	m.energy, m.magnetization = m.Recompute()
	m.table = NewAcceptanceTable(m.beta)
	return m
}

func (m *Model) initSpins(policy InitPolicy) {
	L := m.size
	for i := 0; i < L; i++ {
		for j := 0; j < L; j++ {
			s := Up
			switch policy {
			case Random:
				if m.src.IntN(2) == 0 {
					s = Down
				}
			case Checkerboard:
				if (i+j)%2 == 0 {
					s = Down
				}
			}
			m.spins[i*L+j] = s
		}
	}
}

// Sweep performs one Monte Carlo cycle: L² flip attempts at sites drawn
// uniformly with replacement.
func (m *Model) Sweep() {
	L := m.size
	if L == 1 {
		m.sweepSingle()
		return
	}
	spins := m.spins
	for n := 0; n < L*L; n++ {
		i := m.src.IntN(L)
		j := m.src.IntN(L)
		row := i * L
		s := spins[row+j]
		sum := int(spins[row+m.next[j]]) + int(spins[row+m.prev[j]]) +
			int(spins[m.next[i]*L+j]) + int(spins[m.prev[i]*L+j])
		dE := 2 * int(s) * sum

		m.attempted++
		if m.src.Float64() <= m.table.At(dE) {
			spins[row+j] = -s
			m.energy += dE
			m.magnetization -= 2 * int(s)
			m.accepted++
		}
	}
}

// sweepSingle handles L = 1, where the site is its own neighbour in every
// direction. The energy is -2 whatever the spin, so a flip costs nothing.
func (m *Model) sweepSingle() {
	m.attempted++
	if m.src.Float64() <= m.table.At(0) {
		m.spins[0] = -m.spins[0]
		m.magnetization = int(m.spins[0])
		m.accepted++
	}
}

// Recompute sums energy and magnetization over the whole lattice. Each site
// contributes its right and down bonds so every bond is counted once.
func (m *Model) Recompute() (energy, magnetization int) {
	L := m.size
	for i := 0; i < L; i++ {
		for j := 0; j < L; j++ {
			s := int(m.spins[i*L+j])
			energy -= s * (int(m.spins[i*L+m.next[j]]) + int(m.spins[m.next[i]*L+j]))
			magnetization += s
		}
	}
	return energy, magnetization
}

// Energy returns the total energy E.
func (m *Model) Energy() int { return m.energy }

// Magnetization returns the total magnetization M.
func (m *Model) Magnetization() int { return m.magnetization }

// EnergyPerSite returns ε = E / L².
func (m *Model) EnergyPerSite() float64 {
	return float64(m.energy) / float64(m.Sites())
}

// MagnetizationPerSite returns m = M / L².
func (m *Model) MagnetizationPerSite() float64 {
	return float64(m.magnetization) / float64(m.Sites())
}

// Spins returns a copy of the lattice as rows of ±1.
func (m *Model) Spins() [][]int {
	L := m.size
	out := make([][]int, L)
	for i := range out {
		out[i] = make([]int, L)
		for j := range out[i] {
			out[i][j] = int(m.spins[i*L+j])
		}
	}
	return out
}

// Spin returns the spin at row i, column j, wrapping both indices.
func (m *Model) Spin(i, j int) Spin {
	L := m.size
	i = (i%L + L) % L
	j = (j%L + L) % L
	return m.spins[i*L+j]
}

func (m *Model) Size() int              { return m.size }
func (m *Model) Sites() int             { return m.size * m.size }
func (m *Model) Temperature() float64   { return m.cfg.Temperature }
func (m *Model) Beta() float64          { return m.beta }
func (m *Model) Config() Config         { return m.cfg }
func (m *Model) Table() AcceptanceTable { return m.table }
func (m *Model) Attempted() uint64      { return m.attempted }
func (m *Model) Accepted() uint64       { return m.accepted }

// AcceptanceRate is the fraction of flip attempts accepted so far.
func (m *Model) AcceptanceRate() float64 {
	if m.attempted == 0 {
		return math.NaN()
	}
	return float64(m.accepted) / float64(m.attempted)
}

// AtTemperature returns an engine at temperature T that continues from m's
// lattice, counters and random stream. The source moves to the new engine,
// so m must not be swept afterwards.
func (m *Model) AtTemperature(T float64) (*Model, error) {
	cfg := m.cfg
	cfg.Temperature = T
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := *m
	out.cfg = cfg
	out.spins = append([]Spin(nil), m.spins...)
	out.beta = 1 / T
	out.table = NewAcceptanceTable(out.beta)
	return &out, nil
}
