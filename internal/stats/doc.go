// Package stats turns Monte Carlo samples into probability distributions,
// expectation values and the thermodynamic estimators of the Ising model.
//
// All functions are generic over [Number] so integer energy and
// magnetization samples are used directly, without conversion. Arithmetic is
// carried out in float64.
//
// Estimators:
//
//	C_v = (⟨E²⟩ - ⟨E⟩²) / (N·T²)
//	χ   = (⟨M²⟩ - ⟨|M|⟩²) / (N·T)   (Absolute mode)
//	χ   = (⟨M²⟩ - ⟨M⟩²) / (N·T)     (Signed mode)
//
// where N is the number of lattice sites.
package stats
