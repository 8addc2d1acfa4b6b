// Package ising implements the two-dimensional Ising model on an L×L
// periodic lattice, evolved with single-spin-flip Metropolis dynamics.
//
// The package is built around a few types:
//
//   - [Model]: owns the lattice, the running energy and magnetization, and
//     the random source; [Model.Sweep] performs one Monte Carlo cycle
//   - [AcceptanceTable]: exp(-βΔE) for the five energy changes a single flip
//     can produce
//   - [Config]: lattice size, temperature, initial state and seed
//   - [Observer]: per-sweep callback used by [Model.Sample]
//
// # Example
//
//	m, err := ising.New(ising.Config{Size: 20, Temperature: 2.4, Init: ising.Random, Seed: 9642})
//	if err != nil {
//	    return err
//	}
//	samples, err := m.Sample(ctx, 1000, 100000)
//
// Energy and magnetization are updated in O(1) per accepted flip and always
// equal a full recomputation over the lattice ([Model.Recompute]).
//
// # Thread Safety
//
// A Model is NOT safe for concurrent use. Independent models share no state
// and may run in parallel, one goroutine each.
package ising
