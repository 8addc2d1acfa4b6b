package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/analytic"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/config"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/export"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/storage"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/sweep"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/viz"
)

// maxPlainLattice is the largest lattice show prints site by site.
const maxPlainLattice = 32

func runExact(cmd *cobra.Command, args []string) error {
	mode, err := stats.ParseMagnetizationMode(magnetization)
	if err != nil {
		return err
	}
	grid := sweep.Config{TMin: tMin, TMax: tMax, Steps: steps}
	if err := grid.ValidateGrid(); err != nil {
		return err
	}

	states, err := analytic.Enumerate(enumSize)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\t<epsilon>\t<m>\tC_v\tchi")
	for _, T := range grid.Temperatures() {
		e, err := analytic.Exact(states, enumSize, T, mode)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%.4f\t%.6f\t%.6f\t%.6f\t%.6f\n",
			T, e.Epsilon, e.Magnetization, e.SpecificHeat, e.Susceptibility)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if enumSize == 2 {
		z := analytic.TwoByTwo{T: grid.TMin}
		fmt.Printf("\nclosed form at T=%g: Z=%.6f <epsilon>=%.6f <|m|>=%.6f C_v=%.6f chi=%.6f\n",
			z.T, z.PartitionFunction(), z.Epsilon(), z.AbsMagnetization(), z.SpecificHeat(), z.Susceptibility())
	}
	return nil
}

func runStates(cmd *cobra.Command, args []string) error {
	states, err := analytic.Enumerate(enumSize)
	if err != nil {
		return err
	}

	if asCSV {
		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"positive_spins", "energy", "magnetization", "degeneracy"}); err != nil {
			return err
		}
		for _, s := range states {
			rec := []string{
				strconv.Itoa(s.PositiveSpins),
				strconv.Itoa(s.Energy),
				strconv.Itoa(s.Magnetization),
				strconv.Itoa(s.Degeneracy),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UP\tE\tM\tDEGENERACY")
	for _, s := range states {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", s.PositiveSpins, s.Energy, s.Magnetization, s.Degeneracy)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := openStore("").List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tL\tT\tTIME\tSAMPLES\tINIT\tRNG")

	for _, run := range runs {
		temp := fmt.Sprintf("%g", run.Temperature)
		if run.Kind == storage.KindSweep {
			temp = fmt.Sprintf("%g..%g", run.TMin, run.TMax)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%d\t%s\t%s\n",
			run.ID,
			run.Kind,
			run.Size,
			temp,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Init,
			run.Generator,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := openStore("")
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	if meta.Kind != storage.KindRun {
		return nil
	}
	spins, err := st.LoadSpins(meta.ID)
	if err != nil {
		return err
	}
	fmt.Println("\nfinal lattice:")
	if len(spins) <= maxPlainLattice {
		fmt.Print(viz.LatticeString(spins))
		return nil
	}
	canvas := viz.NewCanvas(40, 20)
	canvas.DrawLattice(spins)
	fmt.Print(canvas.String())
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := openStore("")
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s, L=%d\n\n", meta.ID, meta.Kind, meta.Size)
	switch meta.Kind {
	case storage.KindSweep:
		q, err := sweep.ParseQuantity(quantity)
		if err != nil {
			return err
		}
		points, err := st.LoadSweep(meta.ID)
		if err != nil {
			return err
		}
		fmt.Println(viz.SweepChart(points, q, width, height))
	case storage.KindBurnIn:
		points, err := st.LoadTrace(meta.ID)
		if err != nil {
			return err
		}
		fmt.Println(viz.TraceChart(points, width, height))
	default:
		buckets, err := st.LoadDistribution(meta.ID)
		if err != nil {
			return err
		}
		fmt.Println(viz.DistributionChart(buckets, width, height))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return openStore("").CopyCSV(os.Stdout, args[0])
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return openStore("").ExportJSON(os.Stdout, args[0])
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := openStore("")
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	var svg string
	switch meta.Kind {
	case storage.KindSweep:
		q, err := sweep.ParseQuantity(quantity)
		if err != nil {
			return err
		}
		points, err := st.LoadSweep(meta.ID)
		if err != nil {
			return err
		}
		curve := make([]export.Point, len(points))
		for i, p := range points {
			curve[i] = export.Point{X: p.Temperature, Y: q.Of(p.Estimates)}
		}
		svg = export.CurveSVG(curve, svgWidth, svgHeight, "#ff00ff")
	case storage.KindBurnIn:
		points, err := st.LoadTrace(meta.ID)
		if err != nil {
			return err
		}
		curve := make([]export.Point, len(points))
		for i, p := range points {
			curve[i] = export.Point{X: float64(p.N), Y: p.Epsilon}
		}
		svg = export.CurveSVG(curve, svgWidth, svgHeight, "#00ffff")
	default:
		spins, err := st.LoadSpins(meta.ID)
		if err != nil {
			return err
		}
		svg = export.LatticeSVG(spins, max(1, svgWidth/max(1, len(spins))), "#00ff00")
	}

	if svg == "" {
		return fmt.Errorf("%s: not enough data to draw", meta.ID)
	}
	fmt.Println(svg)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("preset groups:")
		for _, g := range config.ListGroups() {
			fmt.Printf("  %s\n", g)
		}
		return nil
	}

	group := args[0]
	presets := config.ListPresets(group)
	if len(presets) == 0 {
		fmt.Printf("no presets in group: %s\n", group)
		return nil
	}
	fmt.Printf("presets in %s:\n", group)
	for _, name := range presets {
		p := config.GetPreset(group, name)
		fmt.Printf("  %s/%s: L=%d T=%g init=%s samples=%d\n", group, name, p.Size, p.Temperature, p.Init, p.Samples)
	}
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
