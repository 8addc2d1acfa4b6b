// Package sweep runs independent Ising engines over a grid of temperatures
// and locates the peaks of C_v and χ, from which the infinite-lattice
// critical temperature is extrapolated.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
)

var (
	// ErrInvalidRange indicates a temperature range that is empty or not positive.
	ErrInvalidRange = errors.New("sweep: invalid temperature range")

	// ErrInvalidSteps indicates fewer than one grid point.
	ErrInvalidSteps = errors.New("sweep: steps must be at least 1")

	// ErrNoPoints indicates an empty result set.
	ErrNoPoints = errors.New("sweep: no points")
)

// Config describes a temperature sweep at one lattice size.
type Config struct {
	Size      int
	TMin      float64
	TMax      float64
	Steps     int
	BurnIn    int
	Samples   int
	Seed      int64
	Init      ising.InitPolicy
	Generator string
	// Workers bounds the number of engines running at once. Zero means
	// runtime.NumCPU().
	Workers int
	Mode    stats.MagnetizationMode
}

// Validate checks the grid and sampling parameters. Engine parameters are
// checked by ising.New.
func (c Config) Validate() error {
	if err := c.ValidateGrid(); err != nil {
		return err
	}
	if c.BurnIn < 0 || c.Samples < 1 {
		return fmt.Errorf("%w: burn-in %d, samples %d", ising.ErrInvalidSampleCount, c.BurnIn, c.Samples)
	}
	return nil
}

// ValidateGrid checks only TMin, TMax and Steps. Both bounds must be
// finite; an infinite bound has no evenly spaced grid.
func (c Config) ValidateGrid() error {
	if !isFinite(c.TMin) || !isFinite(c.TMax) || c.TMin <= 0 || c.TMax < c.TMin {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, c.TMin, c.TMax)
	}
	if c.Steps < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidSteps, c.Steps)
	}
	if c.Steps == 1 && c.TMax != c.TMin {
		return fmt.Errorf("%w: one step needs TMin == TMax", ErrInvalidRange)
	}
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Temperatures returns Steps evenly spaced temperatures from TMin to TMax
// inclusive.
func (c Config) Temperatures() []float64 {
	if c.Steps <= 1 {
		return []float64{c.TMin}
	}
	ts := make([]float64, c.Steps)
	dt := (c.TMax - c.TMin) / float64(c.Steps-1)
	for i := range ts {
		ts[i] = c.TMin + float64(i)*dt
	}
	ts[len(ts)-1] = c.TMax
	return ts
}

// Point is the outcome at one temperature.
type Point struct {
	stats.Estimates
	Seed           int64   `json:"seed"`
	AcceptanceRate float64 `json:"acceptance_rate"`
}

// Run samples one engine per temperature, seeded Seed+index, and returns
// the points in temperature order. The first engine error cancels the rest.
func Run(ctx context.Context, cfg Config) ([]Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	temps := cfg.Temperatures()
	points := make([]Point, len(temps))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log := logrus.WithFields(logrus.Fields{
		"L":       cfg.Size,
		"steps":   len(temps),
		"workers": workers,
	})
	log.Infof("sweeping T in [%g, %g]", cfg.TMin, cfg.TMax)
	start := time.Now()

	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, T := range temps {
		g.Go(func() error {
			seed := cfg.Seed + int64(i)
			p, err := runOne(ctx, cfg, T, seed)
			if err != nil {
				return fmt.Errorf("T=%g: %w", T, err)
			}
			points[i] = p

			n := done.Add(1)
			log.WithField("T", T).Debugf("point %d/%d done: C_v=%.4f chi=%.4f", n, len(temps), p.SpecificHeat, p.Susceptibility)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Infof("sweep finished in %s", time.Since(start).Round(time.Millisecond))
	return points, nil
}

func runOne(ctx context.Context, cfg Config, T float64, seed int64) (Point, error) {
	m, err := ising.New(ising.Config{
		Size:        cfg.Size,
		Temperature: T,
		Init:        cfg.Init,
		Seed:        seed,
		Generator:   cfg.Generator,
	})
	if err != nil {
		return Point{}, err
	}

	samples, err := m.Sample(ctx, cfg.BurnIn, cfg.Samples)
	if err != nil {
		return Point{}, err
	}

	est, err := stats.Estimate(samples.Energy, samples.Magnetization, m.Sites(), T, cfg.Mode)
	if err != nil {
		return Point{}, err
	}
	return Point{Estimates: est, Seed: seed, AcceptanceRate: m.AcceptanceRate()}, nil
}
