package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/config"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/storage"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/sweep"
)

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st := openStore(cfg.DataDir)
	for _, L := range cfg.Sizes() {
		sc := cfg.SweepFor(L)
		points, err := sweepAndSave(ctx, st, cfg, sc)
		if err != nil {
			return err
		}

		if !zoom {
			continue
		}
		lo, hi, err := sweep.ZoomWindow(points, cfg.Sweep.Margin)
		if err != nil {
			return err
		}
		sc.TMin, sc.TMax, sc.Steps = lo, hi, cfg.Sweep.ZoomSteps
		if sc.TMin == sc.TMax {
			sc.Steps = 1
		}
		logrus.Infof("zooming L=%d into [%g, %g]", L, lo, hi)
		if _, err := sweepAndSave(ctx, st, cfg, sc); err != nil {
			return err
		}
	}
	return nil
}

func sweepAndSave(ctx context.Context, st *storage.Store, cfg *config.Config, sc sweep.Config) ([]sweep.Point, error) {
	start := time.Now()
	points, err := sweep.Run(ctx, sc)
	if err != nil {
		return nil, err
	}

	meta := newMetadata(cfg, sc.Size)
	meta.TMin, meta.TMax, meta.Steps = sc.TMin, sc.TMax, sc.Steps
	meta.Elapsed = time.Since(start).Seconds()

	runID, err := st.SaveSweep(meta, points)
	if err != nil {
		return nil, err
	}

	fmt.Printf("run id: %s (%v)\n", runID, time.Since(start).Round(time.Millisecond))
	printPoints(points)
	return points, nil
}

func printPoints(points []sweep.Point) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\t<epsilon>\t<m>\tC_v\tchi\tACCEPT")
	for _, p := range points {
		fmt.Fprintf(w, "%.4f\t%.6f\t%.6f\t%.6f\t%.6f\t%.4f\n",
			p.Temperature, p.Epsilon, p.Magnetization, p.SpecificHeat, p.Susceptibility, p.AcceptanceRate)
	}
	w.Flush()
	fmt.Println()
}

// runCritical merges the stored sweeps per lattice size, takes the peak
// temperature of the chosen quantity and extrapolates to L = ∞.
func runCritical(cmd *cobra.Command, args []string) error {
	q, err := sweep.ParseQuantity(quantity)
	if err != nil {
		return err
	}

	st := openStore("")
	bySize := make(map[int][]sweep.Point)
	for _, id := range args {
		meta, err := st.Load(id)
		if err != nil {
			return err
		}
		points, err := st.LoadSweep(id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		bySize[meta.Size] = append(bySize[meta.Size], points...)
	}

	peaks := make(map[int]float64, len(bySize))
	for L, points := range bySize {
		sweep.SortByTemperature(points)
		i, err := sweep.PeakOf(points, q)
		if err != nil {
			return err
		}
		peaks[L] = points[i].Temperature
	}

	ex, err := sweep.CriticalTemperature(peaks)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "L\tT_c(L) from %s\n", q)
	for i, L := range ex.Sizes {
		fmt.Fprintf(w, "%d\t%.5f\n", L, ex.Peaks[i])
	}
	w.Flush()

	fmt.Printf("\nT_c(L) = T_c(inf) + a/L\n")
	fmt.Printf("  T_c(inf): %.5f ± %.5f\n", ex.Intercept, ex.InterceptErr)
	fmt.Printf("  a:        %.5f ± %.5f\n", ex.Slope, ex.SlopeErr)
	fmt.Printf("  R^2:      %.5f\n", ex.RSquared)
	return nil
}
