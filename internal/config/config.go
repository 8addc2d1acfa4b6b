package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/rng"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/sweep"
)

const (
	DefaultSize        = 20
	DefaultTemperature = 2.4
	DefaultSeed        = 9642
	DefaultBurnIn      = 1000
	DefaultSamples     = 100000
	DefaultTMin        = 2.1
	DefaultTMax        = 2.4
	DefaultSteps       = 16
	DefaultZoomSteps   = 20
	DefaultMargin      = 2
	DefaultDataDir     = "data"
)

type Config struct {
	Size          int                     `yaml:"size"`
	Temperature   float64                 `yaml:"temperature"`
	Init          ising.InitPolicy        `yaml:"init"`
	Seed          int64                   `yaml:"seed"`
	Generator     string                  `yaml:"generator"`
	BurnIn        int                     `yaml:"burn_in"`
	Samples       int                     `yaml:"samples"`
	Magnetization stats.MagnetizationMode `yaml:"magnetization"`
	Sweep         SweepConfig             `yaml:"sweep"`
	DataDir       string                  `yaml:"data_dir"`
}

type SweepConfig struct {
	TMin  float64 `yaml:"t_min"`
	TMax  float64 `yaml:"t_max"`
	Steps int     `yaml:"steps"`
	// Sizes lists the lattice lengths swept; empty means just Size.
	Sizes     []int `yaml:"sizes"`
	Workers   int   `yaml:"workers"`
	ZoomSteps int   `yaml:"zoom_steps"`
	Margin    int   `yaml:"margin"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:          DefaultSize,
		Temperature:   DefaultTemperature,
		Init:          ising.Ordered,
		Seed:          DefaultSeed,
		Generator:     rng.PCG,
		BurnIn:        DefaultBurnIn,
		Samples:       DefaultSamples,
		Magnetization: stats.Absolute,
		Sweep: SweepConfig{
			TMin:      DefaultTMin,
			TMax:      DefaultTMax,
			Steps:     DefaultSteps,
			ZoomSteps: DefaultZoomSteps,
			Margin:    DefaultMargin,
		},
		DataDir: DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks everything an engine or sweep would reject, so a bad file
// fails before any sampling starts.
func (c *Config) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return err
	}
	// the engine accepts T = +Inf but results at it cannot be stored
	if math.IsInf(c.Temperature, 0) {
		return fmt.Errorf("%w: stored runs need a finite temperature, got %g", ising.ErrInvalidTemperature, c.Temperature)
	}
	if _, err := rng.New(c.Generator, c.Seed); err != nil {
		return err
	}
	if c.BurnIn < 0 || c.Samples < 1 {
		return fmt.Errorf("%w: burn-in %d, samples %d", ising.ErrInvalidSampleCount, c.BurnIn, c.Samples)
	}
	for _, L := range c.Sizes() {
		if L < 1 {
			return fmt.Errorf("%w, got %d", ising.ErrInvalidSize, L)
		}
		if err := c.SweepFor(L).Validate(); err != nil {
			return err
		}
	}
	if c.Sweep.Margin < 0 {
		return errors.New("config: sweep margin must be non-negative")
	}
	return nil
}

// Engine returns the single-temperature engine configuration.
func (c *Config) Engine() ising.Config {
	return ising.Config{
		Size:        c.Size,
		Temperature: c.Temperature,
		Init:        c.Init,
		Seed:        c.Seed,
		Generator:   c.Generator,
	}
}

// Sizes returns the lattice lengths to sweep.
func (c *Config) Sizes() []int {
	if len(c.Sweep.Sizes) == 0 {
		return []int{c.Size}
	}
	return c.Sweep.Sizes
}

// SweepFor returns the sweep configuration for lattice length L.
func (c *Config) SweepFor(L int) sweep.Config {
	return sweep.Config{
		Size:      L,
		TMin:      c.Sweep.TMin,
		TMax:      c.Sweep.TMax,
		Steps:     c.Sweep.Steps,
		BurnIn:    c.BurnIn,
		Samples:   c.Samples,
		Seed:      c.Seed,
		Init:      c.Init,
		Generator: c.Generator,
		Workers:   c.Sweep.Workers,
		Mode:      c.Magnetization,
	}
}
