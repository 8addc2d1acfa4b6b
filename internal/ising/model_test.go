package ising

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero size", Config{Size: 0, Temperature: 1}, ErrInvalidSize},
		{"negative size", Config{Size: -3, Temperature: 1}, ErrInvalidSize},
		{"zero temperature", Config{Size: 2, Temperature: 0}, ErrInvalidTemperature},
		{"negative temperature", Config{Size: 2, Temperature: -1}, ErrInvalidTemperature},
		{"NaN temperature", Config{Size: 2, Temperature: math.NaN()}, ErrInvalidTemperature},
		{"bad init policy", Config{Size: 2, Temperature: 1, Init: InitPolicy(42)}, ErrUnknownInitPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNew_UnknownGenerator(t *testing.T) {
	_, err := New(Config{Size: 2, Temperature: 1, Generator: "lcg"})
	if !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("expected ErrUnknownGenerator, got %v", err)
	}
}

func TestAcceptanceTable_InfiniteTemperature(t *testing.T) {
	table := NewAcceptanceTable(0)
	for _, dE := range Deltas() {
		if w := table.At(dE); w != 1 {
			t.Errorf("At(%d) = %v, want 1", dE, w)
		}
	}

	m, err := New(Config{Size: 4, Temperature: math.Inf(1), Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Run(10)
	if m.Accepted() != m.Attempted() {
		t.Errorf("accepted %d of %d attempts, want all", m.Accepted(), m.Attempted())
	}
}

func TestAcceptanceTable_LowTemperature(t *testing.T) {
	table := NewAcceptanceTable(1 / 0.01)

	for _, dE := range []int{4, 8} {
		if w := table.At(dE); w > 1e-100 {
			t.Errorf("At(%d) = %v, want ~0", dE, w)
		}
	}
	for _, dE := range []int{-8, -4, 0} {
		if w := table.At(dE); w < 1 {
			t.Errorf("At(%d) = %v, want >= 1", dE, w)
		}
	}
}

func TestAcceptanceTable_Values(t *testing.T) {
	beta := 1 / 2.4
	table := NewAcceptanceTable(beta)
	for _, dE := range Deltas() {
		want := math.Exp(-beta * float64(dE))
		if got := table.At(dE); math.Abs(got-want) > 1e-15*want {
			t.Errorf("At(%d) = %v, want %v", dE, got, want)
		}
	}
}

func TestAcceptanceTable_PanicsOnImpossibleDelta(t *testing.T) {
	table := NewAcceptanceTable(1)
	for _, dE := range []int{-12, -2, 1, 6, 12} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d) did not panic", dE)
				}
			}()
			table.At(dE)
		}()
	}
}

func TestInitialState(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		energy int
		magnet int
	}{
		{"ordered 3x3", Config{Size: 3, Temperature: 1, Init: Ordered}, -18, 9},
		{"ordered 2x2", Config{Size: 2, Temperature: 1, Init: Ordered}, -8, 4},
		{"checkerboard 4x4", Config{Size: 4, Temperature: 1, Init: Checkerboard}, 32, 0},
		{"checkerboard 2x2", Config{Size: 2, Temperature: 1, Init: Checkerboard}, 8, 0},
		{"single site", Config{Size: 1, Temperature: 1, Init: Ordered}, -2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if m.Energy() != tt.energy {
				t.Errorf("Energy() = %d, want %d", m.Energy(), tt.energy)
			}
			if m.Magnetization() != tt.magnet {
				t.Errorf("Magnetization() = %d, want %d", m.Magnetization(), tt.magnet)
			}
		})
	}
}

func TestRandomInitUsesBothSpins(t *testing.T) {
	m, err := New(Config{Size: 20, Temperature: 1, Init: Random, Seed: 9642})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Magnetization() == 400 || m.Magnetization() == -400 {
		t.Errorf("random lattice is uniform: M = %d", m.Magnetization())
	}
	e, mag := m.Recompute()
	if e != m.Energy() || mag != m.Magnetization() {
		t.Errorf("initial bookkeeping (%d, %d) != recomputed (%d, %d)", m.Energy(), m.Magnetization(), e, mag)
	}
}

func TestSingleSiteLattice(t *testing.T) {
	m, err := New(Config{Size: 1, Temperature: 1, Seed: 7})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for k := 0; k < 5; k++ {
		before := m.Magnetization()
		m.Sweep()
		if m.Energy() != -2 {
			t.Fatalf("sweep %d: Energy() = %d, want -2", k, m.Energy())
		}
		if m.Magnetization() != -before {
			t.Fatalf("sweep %d: Magnetization() = %d, want %d", k, m.Magnetization(), -before)
		}
		e, mag := m.Recompute()
		if e != m.Energy() || mag != m.Magnetization() {
			t.Fatalf("sweep %d: bookkeeping drifted from lattice", k)
		}
	}
}

func TestIntensiveQuantities(t *testing.T) {
	m, _ := New(Config{Size: 4, Temperature: 1})
	if got := m.EnergyPerSite(); got != -2 {
		t.Errorf("EnergyPerSite() = %v, want -2", got)
	}
	if got := m.MagnetizationPerSite(); got != 1 {
		t.Errorf("MagnetizationPerSite() = %v, want 1", got)
	}
}

func TestSpinsReturnsCopy(t *testing.T) {
	m, _ := New(Config{Size: 3, Temperature: 1})
	grid := m.Spins()
	grid[0][0] = -1

	if m.Spin(0, 0) != Up {
		t.Error("mutating Spins() result changed the lattice")
	}
	if m.Spin(-1, 3) != m.Spin(2, 0) {
		t.Error("Spin does not wrap indices")
	}
}

func TestSample(t *testing.T) {
	m, _ := New(Config{Size: 4, Temperature: 2.4, Init: Random, Seed: 11})

	sweeps := 0
	counter := ObserverFunc(func(sweep int, _ *Model) { sweeps = sweep })

	samples, err := m.Sample(context.Background(), 10, 25, counter)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if samples.Len() != 25 || len(samples.Magnetization) != 25 {
		t.Errorf("recorded %d/%d samples, want 25", samples.Len(), len(samples.Magnetization))
	}
	if sweeps != 35 {
		t.Errorf("observer saw %d sweeps, want 35", sweeps)
	}
	last := samples.Len() - 1
	if samples.Energy[last] != m.Energy() || samples.Magnetization[last] != m.Magnetization() {
		t.Error("last sample does not match current state")
	}
}

func TestSample_InvalidCounts(t *testing.T) {
	m, _ := New(Config{Size: 2, Temperature: 1})
	if _, err := m.Sample(context.Background(), -1, 10); !errors.Is(err, ErrInvalidSampleCount) {
		t.Errorf("expected ErrInvalidSampleCount, got %v", err)
	}
}

func TestSample_Canceled(t *testing.T) {
	m, _ := New(Config{Size: 2, Temperature: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	samples, err := m.Sample(ctx, 0, 100)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if samples.Len() != 0 {
		t.Errorf("expected no samples, got %d", samples.Len())
	}
}

func TestParseInitPolicy(t *testing.T) {
	for _, p := range []InitPolicy{Ordered, Random, Checkerboard} {
		got, err := ParseInitPolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParseInitPolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParseInitPolicy("striped"); !errors.Is(err, ErrUnknownInitPolicy) {
		t.Errorf("expected ErrUnknownInitPolicy, got %v", err)
	}
}

func BenchmarkSweep_L20(b *testing.B) {
	m, _ := New(Config{Size: 20, Temperature: 2.4, Init: Random, Seed: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Sweep()
	}
}

func BenchmarkSweep_L100(b *testing.B) {
	m, _ := New(Config{Size: 100, Temperature: 2.4, Init: Random, Seed: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Sweep()
	}
}

func TestAtTemperature(t *testing.T) {
	m, _ := New(Config{Size: 6, Temperature: 1, Init: Random, Seed: 21})
	m.Run(5)

	hot, err := m.AtTemperature(4)
	if err != nil {
		t.Fatalf("AtTemperature: %v", err)
	}
	if hot.Energy() != m.Energy() || hot.Magnetization() != m.Magnetization() {
		t.Error("new engine did not start from the old lattice")
	}
	if hot.Temperature() != 4 || hot.Beta() != 0.25 {
		t.Errorf("unexpected temperature %v / beta %v", hot.Temperature(), hot.Beta())
	}
	if m.Temperature() != 1 {
		t.Error("receiver changed temperature")
	}

	hot.Run(20)
	e, mag := hot.Recompute()
	if e != hot.Energy() || mag != hot.Magnetization() {
		t.Error("bookkeeping drifted after temperature change")
	}

	if _, err := m.AtTemperature(0); !errors.Is(err, ErrInvalidTemperature) {
		t.Errorf("expected ErrInvalidTemperature, got %v", err)
	}
}
