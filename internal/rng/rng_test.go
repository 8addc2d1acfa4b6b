package rng

import (
	"errors"
	"testing"
)

func TestMT19937_ReferenceOutput(t *testing.T) {
	// std::mt19937 default seed.
	mt := NewMT19937(5489)
	if got := mt.Uint32(); got != 3499211612 {
		t.Fatalf("first output = %d, want 3499211612", got)
	}
	for i := 2; i < 10000; i++ {
		mt.Uint32()
	}
	if got := mt.Uint32(); got != 4123659995 {
		t.Errorf("10000th output = %d, want 4123659995", got)
	}
}

func TestSources_Ranges(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			src, err := New(name, 3875623)
			if err != nil {
				t.Fatalf("New(%q): %v", name, err)
			}
			seen := make([]int, 7)
			for i := 0; i < 10000; i++ {
				k := src.IntN(7)
				if k < 0 || k >= 7 {
					t.Fatalf("IntN(7) = %d out of range", k)
				}
				seen[k]++

				f := src.Float64()
				if f < 0 || f >= 1 {
					t.Fatalf("Float64() = %v out of [0,1)", f)
				}
			}
			for k, c := range seen {
				if c == 0 {
					t.Errorf("IntN(7) never produced %d", k)
				}
			}
		})
	}
}

func TestSources_Deterministic(t *testing.T) {
	for _, name := range Names() {
		a, _ := New(name, 42)
		b, _ := New(name, 42)
		for i := 0; i < 100; i++ {
			if a.IntN(1000) != b.IntN(1000) || a.Float64() != b.Float64() {
				t.Fatalf("%s: streams diverged at draw %d", name, i)
			}
		}
	}
}

func TestNew_DefaultAndUnknown(t *testing.T) {
	if _, err := New("", 1); err != nil {
		t.Errorf("empty name should select the default generator, got %v", err)
	}
	_, err := New("xorshift", 1)
	if !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("expected ErrUnknownGenerator, got %v", err)
	}
}

func TestNew_MT19937SeedRange(t *testing.T) {
	for _, seed := range []int64{0, 1, 3875623, 1<<32 - 1} {
		if _, err := New(MT19937, seed); err != nil {
			t.Errorf("seed %d: unexpected error %v", seed, err)
		}
	}
	for _, seed := range []int64{-1, 1 << 32, 1<<32 + 1} {
		if _, err := New(MT19937, seed); !errors.Is(err, ErrSeedOutOfRange) {
			t.Errorf("seed %d: expected ErrSeedOutOfRange, got %v", seed, err)
		}
	}
	// PCG uses all 64 bits
	a, _ := New(PCG, 1)
	b, _ := New(PCG, 1<<32+1)
	same := true
	for i := 0; i < 8; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	if same {
		t.Error("PCG seeds 1 and 2^32+1 produced the same stream")
	}
}

func TestMT19937_IntNPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for IntN(0)")
		}
	}()
	NewMT19937(1).IntN(0)
}
