package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
)

func newModel(t *testing.T, cfg ising.Config) *ising.Model {
	t.Helper()
	m, err := ising.New(cfg)
	if err != nil {
		t.Fatalf("ising.New: %v", err)
	}
	return m
}

func TestMetricsMatchEstimates(t *testing.T) {
	for _, mode := range []stats.MagnetizationMode{stats.Absolute, stats.Signed} {
		t.Run(mode.String(), func(t *testing.T) {
			m := newModel(t, ising.Config{Size: 6, Temperature: 2.4, Init: ising.Random, Seed: 31})
			ms := Default(mode)

			samples, err := m.Sample(context.Background(), 0, 500, Observers(ms)...)
			if err != nil {
				t.Fatalf("Sample: %v", err)
			}
			est, err := stats.Estimate(samples.Energy, samples.Magnetization, m.Sites(), m.Temperature(), mode)
			if err != nil {
				t.Fatalf("Estimate: %v", err)
			}
			abs, err := stats.Estimate(samples.Energy, samples.Magnetization, m.Sites(), m.Temperature(), stats.Absolute)
			if err != nil {
				t.Fatalf("Estimate: %v", err)
			}

			got := Collect(ms)
			want := map[string]float64{
				"expected_epsilon": est.Epsilon,
				"expected_m_abs":   abs.Magnetization,
				"C_v":              est.SpecificHeat,
				"chi":              est.Susceptibility,
				"acceptance_rate":  m.AcceptanceRate(),
			}
			for name, w := range want {
				g, ok := got[name]
				if !ok {
					t.Errorf("missing metric %q", name)
					continue
				}
				if math.Abs(g-w) > 1e-9 {
					t.Errorf("%s = %v, want %v", name, g, w)
				}
			}
		})
	}
}

func TestMetricReset(t *testing.T) {
	m := newModel(t, ising.Config{Size: 4, Temperature: 1})

	for _, metric := range Default(stats.Absolute) {
		m.Sweep()
		metric.Observe(1, m)
		if math.IsNaN(metric.Value()) {
			t.Errorf("%s: expected a value after one observation", metric.Name())
		}

		metric.Reset()
		if !math.IsNaN(metric.Value()) {
			t.Errorf("%s: expected NaN after reset, got %v", metric.Name(), metric.Value())
		}
	}
}

func TestMeanEnergy_GroundState(t *testing.T) {
	m := newModel(t, ising.Config{Size: 4, Temperature: 0.01})
	e := NewMeanEnergy()
	a := NewMeanAbsMagnetization()

	for k := 1; k <= 10; k++ {
		m.Sweep()
		e.Observe(k, m)
		a.Observe(k, m)
	}
	if e.Value() != -2 {
		t.Errorf("expected ⟨ε⟩ = -2, got %v", e.Value())
	}
	if a.Value() != 1 {
		t.Errorf("expected ⟨|m|⟩ = 1, got %v", a.Value())
	}
}

func TestAfterBurnIn(t *testing.T) {
	m := newModel(t, ising.Config{Size: 4, Temperature: 2.4, Init: ising.Random, Seed: 5})
	tr := NewTrace(1)

	if _, err := m.Sample(context.Background(), 20, 30, AfterBurnIn(20, tr)); err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if got := len(tr.Points()); got != 30 {
		t.Errorf("expected 30 points after burn-in, got %d", got)
	}
}

func TestTrace(t *testing.T) {
	m := newModel(t, ising.Config{Size: 4, Temperature: 2.4, Init: ising.Random, Seed: 8})
	tr := NewTrace(10)

	samples, err := m.Sample(context.Background(), 0, 100, tr)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}

	points := tr.Points()
	if len(points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(points))
	}
	if points[0].N != 10 || points[9].N != 100 {
		t.Errorf("unexpected N range %d..%d", points[0].N, points[9].N)
	}

	want, _ := stats.ExpectedValue(samples.Energy, stats.Scaled[int](1.0/16))
	if math.Abs(points[9].Epsilon-want) > 1e-12 {
		t.Errorf("final ⟨ε⟩ = %v, want %v", points[9].Epsilon, want)
	}

	prefix, _ := stats.ExpectedValue(samples.Magnetization[:10], func(x int) float64 { return math.Abs(float64(x)) / 16 })
	if math.Abs(points[0].AbsMagnetization-prefix) > 1e-12 {
		t.Errorf("⟨|m|⟩ after 10 sweeps = %v, want %v", points[0].AbsMagnetization, prefix)
	}
}
