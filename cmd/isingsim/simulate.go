package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/metrics"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/viz"
)

func runSingle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	engine, err := ising.New(cfg.Engine())
	if err != nil {
		return err
	}

	ms := metrics.Default(cfg.Magnetization)
	observed := make([]metrics.Metric, len(ms))
	for i, m := range ms {
		observed[i] = metrics.AfterBurnIn(cfg.BurnIn, m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logrus.Infof("sampling L=%d T=%g: %d burn-in + %d sweeps", cfg.Size, cfg.Temperature, cfg.BurnIn, cfg.Samples)
	start := time.Now()

	samples, err := engine.Sample(ctx, cfg.BurnIn, cfg.Samples, metrics.Observers(observed)...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	est, err := stats.Estimate(samples.Energy, samples.Magnetization, engine.Sites(), cfg.Temperature, cfg.Magnetization)
	if err != nil {
		return err
	}

	meta := newMetadata(cfg, cfg.Size)
	meta.Temperature = cfg.Temperature
	meta.Elapsed = elapsed.Seconds()
	meta.Estimates = &est
	meta.Metrics = metrics.Collect(ms)
	meta.Metrics["final_acceptance_rate"] = engine.AcceptanceRate()

	runID, err := openStore(cfg.DataDir).SaveRun(meta, samples, engine.Spins())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	printEstimates(est)
	printMetrics(meta.Metrics)
	return nil
}

func printEstimates(e stats.Estimates) {
	fmt.Printf("\nT = %g, %d samples\n", e.Temperature, e.Samples)
	fmt.Printf("  <epsilon>: %.6f\n", e.Epsilon)
	fmt.Printf("  <m>:       %.6f\n", e.Magnetization)
	fmt.Printf("  C_v:       %.6f\n", e.SpecificHeat)
	fmt.Printf("  chi:       %.6f\n", e.Susceptibility)
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func runBurnIn(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	engine, err := ising.New(cfg.Engine())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	trace := metrics.NewTrace(traceEvery)
	logrus.Infof("tracing L=%d T=%g init=%s for %d sweeps", cfg.Size, cfg.Temperature, cfg.Init, cfg.Samples)
	start := time.Now()
	if _, err := engine.Sample(ctx, 0, cfg.Samples, trace); err != nil {
		return err
	}

	meta := newMetadata(cfg, cfg.Size)
	meta.Temperature = cfg.Temperature
	meta.BurnIn = 0
	meta.Elapsed = time.Since(start).Seconds()

	points := trace.Points()
	runID, err := openStore(cfg.DataDir).SaveTrace(meta, points)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n\n", runID)
	fmt.Println(viz.TraceChart(points, width, height))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	viz.SetTheme(theme)

	m, err := viz.NewLive(cfg.Engine(), perTick, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
