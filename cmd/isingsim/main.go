package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/config"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/rng"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/storage"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string

	size          int
	temperature   float64
	initPolicy    string
	seed          int64
	generator     string
	burnIn        int
	samples       int
	magnetization string

	tMin    float64
	tMax    float64
	steps   int
	sizes   []int
	workers int
	zoom    bool

	traceEvery int
	quantity   string
	enumSize   int
	width      int
	height     int
	svgWidth   int
	svgHeight  int
	frameRate  int
	perTick    int
	theme      string
	asCSV      bool
)

// main registers the isingsim commands and exits 1 when the selected command
// returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "isingsim",
		Short:         "2D Ising model Monte Carlo lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "preset as group/name")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "sample one temperature and store samples, distribution and estimates",
		Args:  cobra.NoArgs,
		RunE:  runSingle,
	}
	addEngineFlags(runCmd)
	addSamplingFlags(runCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sample a temperature grid for each lattice size",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addEngineFlags(sweepCmd)
	addSamplingFlags(sweepCmd)
	addGridFlags(sweepCmd)
	sweepCmd.Flags().IntSliceVar(&sizes, "sizes", nil, "lattice sizes to sweep (default: --size)")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "concurrent temperatures (0 = all CPUs)")
	sweepCmd.Flags().BoolVar(&zoom, "zoom", false, "refine the grid around the C_v and chi peaks")

	burnInCmd := &cobra.Command{
		Use:   "burnin",
		Short: "record running means from the first sweep on",
		Args:  cobra.NoArgs,
		RunE:  runBurnIn,
	}
	addEngineFlags(burnInCmd)
	burnInCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of sweeps")
	burnInCmd.Flags().IntVar(&traceEvery, "every", 1, "keep every n-th point of the trace")
	burnInCmd.Flags().IntVar(&width, "width", 70, "chart width")
	burnInCmd.Flags().IntVar(&height, "height", 12, "chart height")

	exactCmd := &cobra.Command{
		Use:   "exact",
		Short: "exact expectation values by enumeration",
		Args:  cobra.NoArgs,
		RunE:  runExact,
	}
	exactCmd.Flags().IntVar(&enumSize, "size", 2, "lattice size (1-4)")
	exactCmd.Flags().StringVar(&magnetization, "magnetization", stats.Absolute.String(), "magnetization mode (absolute, signed)")
	addGridFlags(exactCmd)

	statesCmd := &cobra.Command{
		Use:   "states",
		Short: "summarise all microstates of a small lattice",
		Args:  cobra.NoArgs,
		RunE:  runStates,
	}
	statesCmd.Flags().IntVar(&enumSize, "size", 2, "lattice size (1-4)")
	statesCmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of a table")

	tcCmd := &cobra.Command{
		Use:   "tc [sweep_id...]",
		Short: "extrapolate T_c from stored sweeps of several sizes",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runCritical,
	}
	tcCmd.Flags().StringVar(&quantity, "quantity", "C_v", "peak quantity (C_v, chi)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&quantity, "quantity", "C_v", "sweep quantity (epsilon, m_abs, C_v, chi)")
	plotCmd.Flags().IntVar(&width, "width", 70, "chart width")
	plotCmd.Flags().IntVar(&height, "height", 12, "chart height")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write the main CSV of a run to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write everything stored for a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "write the final lattice or a curve of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&quantity, "quantity", "C_v", "sweep quantity (epsilon, m_abs, C_v, chi)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "sweep a lattice with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addEngineFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&perTick, "sweeps", 1, "sweeps per frame")
	liveCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")

	presetsCmd := &cobra.Command{
		Use:   "presets [group]",
		Short: "list preset groups, or the presets of a group",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}
	addEngineFlags(initConfigCmd)
	addSamplingFlags(initConfigCmd)
	addGridFlags(initConfigCmd)

	rootCmd.AddCommand(runCmd, sweepCmd, burnInCmd, exactCmd, statesCmd, tcCmd,
		listCmd, showCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, liveCmd,
		presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "lattice size L")
	cmd.Flags().Float64Var(&temperature, "temp", config.DefaultTemperature, "temperature in units of J/k_B")
	cmd.Flags().StringVar(&initPolicy, "init", ising.Ordered.String(), "initial lattice (ordered, random, checkerboard)")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringVar(&generator, "rng", rng.PCG, "random generator (pcg, mt19937)")
}

func addSamplingFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&burnIn, "burn-in", config.DefaultBurnIn, "discarded sweeps")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sampled sweeps")
	cmd.Flags().StringVar(&magnetization, "magnetization", stats.Absolute.String(), "magnetization mode (absolute, signed)")
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tMin, "t-min", config.DefaultTMin, "lowest temperature")
	cmd.Flags().Float64Var(&tMax, "t-max", config.DefaultTMax, "highest temperature")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "grid points")
}

// loadConfig builds the effective configuration: defaults, then the preset,
// then the config file, then any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		group, name, ok := strings.Cut(preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset must be group/name, got %q (groups: %v)", preset, config.ListGroups())
		}
		cfg = config.GetPreset(group, name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(group))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("temp") {
		cfg.Temperature = temperature
	}
	if flags.Changed("init") {
		policy, err := ising.ParseInitPolicy(initPolicy)
		if err != nil {
			return nil, err
		}
		cfg.Init = policy
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("rng") {
		cfg.Generator = generator
	}
	if flags.Changed("burn-in") {
		cfg.BurnIn = burnIn
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if flags.Changed("magnetization") {
		mode, err := stats.ParseMagnetizationMode(magnetization)
		if err != nil {
			return nil, err
		}
		cfg.Magnetization = mode
	}
	if flags.Changed("t-min") {
		cfg.Sweep.TMin = tMin
	}
	if flags.Changed("t-max") {
		cfg.Sweep.TMax = tMax
	}
	if flags.Changed("steps") {
		cfg.Sweep.Steps = steps
	}
	if flags.Changed("sizes") {
		cfg.Sweep.Sizes = sizes
	}
	if flags.Changed("workers") {
		cfg.Sweep.Workers = workers
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore returns the store under dir, falling back to --data.
func openStore(dir string) *storage.Store {
	if dir == "" {
		dir = dataDir
	}
	return storage.New(dir)
}

// newMetadata fills the fields shared by every stored run kind.
func newMetadata(cfg *config.Config, L int) storage.RunMetadata {
	return storage.RunMetadata{
		Size:          L,
		Seed:          cfg.Seed,
		Init:          cfg.Init.String(),
		Generator:     cfg.Generator,
		BurnIn:        cfg.BurnIn,
		Samples:       cfg.Samples,
		Magnetization: cfg.Magnetization.String(),
	}
}
