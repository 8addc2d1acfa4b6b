// Package viz renders Ising lattices and simulation results in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas; [Canvas.DrawLattice] maps each up
//     spin to lit sub-pixels
//   - [Live]: Bubble Tea program that sweeps an engine in real time
//   - [SweepChart], [TraceChart], [DistributionChart]: asciigraph plots of
//     stored results
//   - Theme selection with four built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume sweeping
//	R     - Reset to the initial lattice
//	+/-   - Raise/lower the temperature
//	T     - Cycle color themes
//	Q     - Quit
package viz
