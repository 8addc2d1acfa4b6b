package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/rng"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/sweep"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BurnIn != 1000 {
		t.Errorf("expected burn-in 1000, got %d", cfg.BurnIn)
	}
	if cfg.Init != ising.Ordered {
		t.Errorf("expected ordered init, got %s", cfg.Init)
	}
	if cfg.Generator != rng.PCG {
		t.Errorf("expected pcg generator, got %s", cfg.Generator)
	}
	if cfg.Magnetization != stats.Absolute {
		t.Errorf("expected absolute magnetization, got %s", cfg.Magnetization)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`size: 2
temperature: 1.0
init: random
generator: mt19937
magnetization: signed
sweep:
  sizes: [8, 16]
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Size != 2 || cfg.Temperature != 1.0 {
		t.Errorf("unexpected size/temperature %d/%g", cfg.Size, cfg.Temperature)
	}
	if cfg.Init != ising.Random {
		t.Errorf("expected random init, got %s", cfg.Init)
	}
	if cfg.Generator != rng.MT19937 {
		t.Errorf("expected mt19937, got %s", cfg.Generator)
	}
	if cfg.Magnetization != stats.Signed {
		t.Errorf("expected signed mode, got %s", cfg.Magnetization)
	}
	if cfg.BurnIn != DefaultBurnIn {
		t.Errorf("unset field should keep default, got burn-in %d", cfg.BurnIn)
	}
	if cfg.Sweep.Steps != DefaultSteps {
		t.Errorf("unset sweep field should keep default, got %d", cfg.Sweep.Steps)
	}
	if got := cfg.Sizes(); len(got) != 2 || got[1] != 16 {
		t.Errorf("unexpected sizes %v", got)
	}
}

func TestLoad_BadInitPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("init: striped\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown init policy")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := GetPreset("phase", "quick")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Init != cfg.Init || loaded.Seed != cfg.Seed || loaded.Sweep.TMax != cfg.Sweep.TMax {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
	if len(loaded.Sweep.Sizes) != len(cfg.Sweep.Sizes) {
		t.Errorf("sizes lost: %v", loaded.Sweep.Sizes)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero size", func(c *Config) { c.Size = 0 }, ising.ErrInvalidSize},
		{"negative temperature", func(c *Config) { c.Temperature = -1 }, ising.ErrInvalidTemperature},
		{"infinite temperature", func(c *Config) { c.Temperature = math.Inf(1) }, ising.ErrInvalidTemperature},
		{"infinite sweep bound", func(c *Config) { c.Sweep.TMax = math.Inf(1) }, sweep.ErrInvalidRange},
		{"mt19937 seed beyond 32 bits", func(c *Config) { c.Generator, c.Seed = rng.MT19937, 1<<32 + 1 }, rng.ErrSeedOutOfRange},
		{"unknown generator", func(c *Config) { c.Generator = "xorshift" }, rng.ErrUnknownGenerator},
		{"no samples", func(c *Config) { c.Samples = 0 }, ising.ErrInvalidSampleCount},
		{"bad sweep size", func(c *Config) { c.Sweep.Sizes = []int{10, 0} }, ising.ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEngineAndSweepFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	e := cfg.Engine()
	if e.Size != cfg.Size || e.Seed != 42 || e.Temperature != cfg.Temperature {
		t.Errorf("unexpected engine config %+v", e)
	}

	s := cfg.SweepFor(60)
	if s.Size != 60 || s.Steps != cfg.Sweep.Steps || s.BurnIn != cfg.BurnIn {
		t.Errorf("unexpected sweep config %+v", s)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("validation", "2x2")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Size != 2 || cfg.Seed != 3875623 {
		t.Errorf("unexpected preset %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}

	cfg.Size = 99
	if GetPreset("validation", "2x2").Size != 2 {
		t.Error("GetPreset returned shared state")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("validation", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "2x2"); cfg != nil {
		t.Error("expected nil for nonexistent group")
	}
}

func TestListPresets(t *testing.T) {
	for _, group := range ListGroups() {
		names := ListPresets(group)
		if len(names) == 0 {
			t.Errorf("expected presets for %s", group)
		}
		for _, name := range names {
			if err := GetPreset(group, name).Validate(); err != nil {
				t.Errorf("%s/%s invalid: %v", group, name, err)
			}
		}
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent group")
	}
}
