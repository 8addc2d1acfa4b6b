package analytic

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sort"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
)

// MaxEnumerationSize is the largest lattice Enumerate accepts; L = 4
// already has 65536 microstates.
const MaxEnumerationSize = 4

var (
	// ErrSizeOutOfRange indicates a lattice Enumerate cannot handle.
	ErrSizeOutOfRange = errors.New("analytic: lattice size out of range")

	// ErrNoStates indicates an empty state summary.
	ErrNoStates = errors.New("analytic: no states")
)

// State groups the microstates sharing a number of up spins and an energy.
type State struct {
	PositiveSpins int `json:"positive_spins"`
	Energy        int `json:"energy"`
	Magnetization int `json:"magnetization"`
	Degeneracy    int `json:"degeneracy"`
}

// Enumerate visits all 2^(L²) microstates of an L×L periodic lattice and
// returns them grouped, ordered by up spins and then energy.
func Enumerate(L int) ([]State, error) {
	if L < 1 || L > MaxEnumerationSize {
		return nil, fmt.Errorf("%w: %d (1..%d)", ErrSizeOutOfRange, L, MaxEnumerationSize)
	}

	n := L * L
	type key struct{ up, energy int }
	counts := make(map[key]int)

	spin := func(mask uint32, i, j int) int {
		i, j = i%L, j%L
		if mask&(1<<uint(i*L+j)) != 0 {
			return 1
		}
		return -1
	}

	for mask := uint32(0); mask < 1<<uint(n); mask++ {
		energy := 0
		for i := 0; i < L; i++ {
			for j := 0; j < L; j++ {
				s := spin(mask, i, j)
				energy -= s * (spin(mask, i, j+1) + spin(mask, i+1, j))
			}
		}
		counts[key{bits.OnesCount32(mask), energy}]++
	}

	states := make([]State, 0, len(counts))
	for k, c := range counts {
		states = append(states, State{
			PositiveSpins: k.up,
			Energy:        k.energy,
			Magnetization: 2*k.up - n,
			Degeneracy:    c,
		})
	}
	sort.Slice(states, func(i, j int) bool {
		if states[i].PositiveSpins != states[j].PositiveSpins {
			return states[i].PositiveSpins < states[j].PositiveSpins
		}
		return states[i].Energy < states[j].Energy
	})
	return states, nil
}

// Exact returns Boltzmann-weighted expectation values over states at
// temperature T. size is the lattice length the states were enumerated for.
func Exact(states []State, size int, T float64, mode stats.MagnetizationMode) (stats.Estimates, error) {
	if len(states) == 0 {
		return stats.Estimates{}, ErrNoStates
	}
	if size < 1 {
		return stats.Estimates{}, fmt.Errorf("%w: %d", ErrSizeOutOfRange, size)
	}
	if math.IsNaN(T) || T <= 0 {
		return stats.Estimates{}, fmt.Errorf("%w, got %g", stats.ErrInvalidTemperature, T)
	}

	beta := 1 / T
	eMin := states[0].Energy
	for _, s := range states {
		eMin = min(eMin, s.Energy)
	}

	// Weights are shifted by the ground state energy to avoid overflow.
	var z, sumE, sumE2, sumM, sumM2 float64
	for _, s := range states {
		w := float64(s.Degeneracy) * math.Exp(-beta*float64(s.Energy-eMin))
		e := float64(s.Energy)
		mag := float64(s.Magnetization)
		if mode != stats.Signed {
			mag = math.Abs(mag)
		}
		z += w
		sumE += w * e
		sumE2 += w * e * e
		sumM += w * mag
		sumM2 += w * mag * mag
	}

	n := float64(size * size)
	meanE, meanE2 := sumE/z, sumE2/z
	meanM, meanM2 := sumM/z, sumM2/z
	return stats.Estimates{
		Temperature:    T,
		Epsilon:        meanE / n,
		Magnetization:  meanM / n,
		SpecificHeat:   (meanE2 - meanE*meanE) / (n * T * T),
		Susceptibility: (meanM2 - meanM*meanM) / (n * T),
	}, nil
}
