package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/metrics"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/sweep"
)

// SweepChart plots quantity q across the temperatures of a sweep.
func SweepChart(points []sweep.Point, q sweep.Quantity, width, height int) string {
	if len(points) == 0 {
		return "no data"
	}
	caption := fmt.Sprintf("%s vs T, T from %.3f to %.3f", q, points[0].Temperature, points[len(points)-1].Temperature)
	return asciigraph.Plot(sweep.Values(points, q),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// TraceChart plots the running ⟨ε⟩ and ⟨|m|⟩ of a burn-in trace.
func TraceChart(points []metrics.TracePoint, width, height int) string {
	if len(points) == 0 {
		return "no data"
	}
	eps := make([]float64, len(points))
	mag := make([]float64, len(points))
	for i, p := range points {
		eps[i] = p.Epsilon
		mag[i] = p.AbsMagnetization
	}

	caption := fmt.Sprintf("running mean after N sweeps, N up to %d", points[len(points)-1].N)
	return asciigraph.Plot(eps,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("⟨ε⟩ "+caption),
	) + "\n\n" + asciigraph.Plot(mag,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("⟨|m|⟩ "+caption),
	)
}

// DistributionChart plots the probability of each value in ascending order.
func DistributionChart(buckets []stats.Bucket, width, height int) string {
	if len(buckets) == 0 {
		return "no data"
	}
	p := make([]float64, len(buckets))
	for i, b := range buckets {
		p[i] = b.Probability
	}
	caption := fmt.Sprintf("p(ε), ε from %.3f to %.3f", buckets[0].Value, buckets[len(buckets)-1].Value)
	return asciigraph.Plot(p,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
