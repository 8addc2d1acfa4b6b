package ising

import (
	"context"
	"fmt"
)

// Sample runs burnIn discarded sweeps followed by n sampled sweeps, recording
// E and M after each sampled sweep. Observers see every sweep, burn-in
// included. The context is checked between sweeps; on cancellation the
// samples gathered so far are returned with the context error.
func (m *Model) Sample(ctx context.Context, burnIn, n int, observers ...Observer) (*Samples, error) {
	if burnIn < 0 || n < 0 {
		return nil, fmt.Errorf("%w: burn-in %d, samples %d", ErrInvalidSampleCount, burnIn, n)
	}

	samples := &Samples{
		Energy:        make([]int, 0, n),
		Magnetization: make([]int, 0, n),
	}

	for k := 0; k < burnIn+n; k++ {
		select {
		case <-ctx.Done():
			return samples, ctx.Err()
		default:
		}

		m.Sweep()

		for _, obs := range observers {
			obs.Observe(k+1, m)
		}

		if k >= burnIn {
			samples.Energy = append(samples.Energy, m.energy)
			samples.Magnetization = append(samples.Magnetization, m.magnetization)
		}
	}

	return samples, nil
}

// Run performs n sweeps without recording anything.
func (m *Model) Run(n int) {
	for k := 0; k < n; k++ {
		m.Sweep()
	}
}
