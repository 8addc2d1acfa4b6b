// Package analytic provides exact thermodynamic results for small Ising
// lattices, used to validate the Monte Carlo engine.
//
// [TwoByTwo] evaluates the closed-form expressions for L = 2. [Enumerate]
// lists every microstate of an L ≤ 4 lattice, grouped by number of up spins
// and energy, and [Exact] turns that summary into Boltzmann-weighted
// expectation values at any temperature.
package analytic
