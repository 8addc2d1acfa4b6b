package ising

import (
	"fmt"
	"math"
)

// AcceptanceTable caches exp(-βΔE) for ΔE ∈ {-8, -4, 0, 4, 8}, the only
// energy changes a single flip on a square lattice can produce. Entries for
// ΔE ≤ 0 are ≥ 1 and are deliberately not clamped: the draw r < 1 always
// accepts them.
type AcceptanceTable [5]float64

// NewAcceptanceTable builds the table for inverse temperature beta.
func NewAcceptanceTable(beta float64) AcceptanceTable {
	var t AcceptanceTable
	for k := range t {
		t[k] = math.Exp(-beta * float64(deltaFor(k)))
	}
	return t
}

// At returns the acceptance weight for energy change dE. Any other dE means
// broken neighbor indexing, so it panics.
func (t *AcceptanceTable) At(dE int) float64 {
	if dE < -8 || dE > 8 || dE%4 != 0 {
		panic(fmt.Sprintf("ising: impossible energy change %d", dE))
	}
	return t[(dE+8)/4]
}

// Deltas lists the energy changes in table order.
func Deltas() []int {
	return []int{-8, -4, 0, 4, 8}
}

func deltaFor(k int) int { return 4*k - 8 }
