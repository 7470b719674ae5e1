package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/san-kum/ndlife/internal/automation"
	"github.com/san-kum/ndlife/internal/config"
	"github.com/san-kum/ndlife/internal/experiment"
	"github.com/san-kum/ndlife/internal/export"
	"github.com/san-kum/ndlife/internal/life"
	"github.com/san-kum/ndlife/internal/logging"
	"github.com/san-kum/ndlife/internal/metrics"
	"github.com/san-kum/ndlife/internal/optim"
	"github.com/san-kum/ndlife/internal/seed"
	"github.com/san-kum/ndlife/internal/sim"
	"github.com/san-kum/ndlife/internal/storage"
	"github.com/san-kum/ndlife/internal/viz"
	"github.com/spf13/cobra"
)

// resolveConfig layers preset, then config file, then any flags set on
// the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(preset, configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("rule") {
		cfg.Rule = rule
	}
	if flags.Changed("dim") {
		cfg.Dimensions = dims
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}
	if flags.Changed("seed") {
		cfg.Seed = seedValue
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("origin") {
		cfg.Origin = origin
	}
	if flags.Changed("plane") {
		cfg.View.Plane = plane
	}
	if flags.Changed("stop-on-cycle") {
		cfg.StopOnCycle = stopOnCycle
	}
	if flags.Changed("fps") {
		cfg.View.FPS = fps
	}
	if flags.Changed("plain") {
		cfg.View.Plain = plain
	}
	if cmd.Root().PersistentFlags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.LogLevel, os.Stderr)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	th, err := th
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	exp, err := experiment.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if ensemble > 0 {
		return runEnsemble(ctx, exp, ensemble)
	}

	var printer *viz.PrintObserver
	if printEach {
		printer = &viz.PrintObserver{
			W:        os.Stdout,
			Renderer: viz.NewRenderer(cfg.View.Plane, cfg.View.Plain, th),
		}
		exp.Setup(printer)
	} else {
		exp.Setup()
	}

	fmt.Printf("running %dD %s, size %d, seed %d\n", cfg.Dimensions, cfg.Rule, cfg.Size, cfg.Seed)

	start := time.Now()
	g, result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if printer != nil && printer.Err() != nil {
		return printer.Err()
	}

	printSummary(g, result, elapsed)

	if svgPath != "" {
		r := viz.NewRenderer(cfg.View.Plane, true, th)
		svg, err := export.GridToSVG(g, r, 8)
		if err != nil {
			return err
		}
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func printSummary(g *life.Grid, result *sim.Result, elapsed time.Duration) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "generations:\t%d\n", result.Generations)
	fmt.Fprintf(w, "population:\t%d / %d\n", g.Population(), g.Len())
	if result.Period > 0 {
		fmt.Fprintf(w, "cycle:\tperiod %d from generation %d\n", result.Period, result.CycleStart)
	} else {
		fmt.Fprintf(w, "cycle:\tnone\n")
	}
	for _, name := range []string{"peak_population", "mean_population", "activity", "extinction", "dominant_period"} {
		if v, ok := result.Metrics[name]; ok {
			fmt.Fprintf(w, "%s:\t%.2f\n", name, v)
		}
	}
	fmt.Fprintf(w, "elapsed:\t%s\n", elapsed.Round(time.Millisecond))
	w.Flush()
}

func runEnsemble(ctx context.Context, exp *experiment.Experiment, n int) error {
	cfg := exp.Config()
	fmt.Printf("ensemble of %d: %dD %s, size %d, seeds %d..%d\n", n, cfg.Dimensions, cfg.Rule, cfg.Size, cfg.Seed, cfg.Seed+int64(n-1))

	results, err := exp.Ensemble(ctx, n)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFINAL\tPEAK\tMEAN\tPERIOD")
	for i, r := range results {
		final := r.Samples[len(r.Samples)-1].Population
		fmt.Fprintf(w, "%d\t%d\t%.0f\t%.1f\t%d\n", cfg.Seed+int64(i), final, r.Metrics["peak_population"], r.Metrics["mean_population"], r.Period)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	th, err := th
	if err != nil {
		return err
	}
	exp, err := experiment.New(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		return err
	}
	g, err := exp.NewGrid()
	if err != nil {
		return err
	}

	renderer := viz.NewRenderer(cfg.View.Plane, false, th)
	if _, err := renderer.Render(g); err != nil {
		return err
	}
	m := viz.NewModel(g, exp.NewGrid, renderer, cfg.View.FPS, cfg.Generations)
	return viz.RunLive(m)
}

func printGenerations(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	th, err := th
	if err != nil {
		return err
	}
	exp, err := experiment.New(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	g, err := exp.NewGrid()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	printer := &viz.PrintObserver{
		W:        os.Stdout,
		Renderer: viz.NewRenderer(cfg.View.Plane, !color, th),
	}
	r := sim.New(newLogger(cfg))
	r.AddObserver(printer)
	_, err = r.RunUntil(ctx, g, cfg.Generations, cfg.StopOnCycle)
	var ce sim.CycleError
	if errors.As(err, &ce) {
		fmt.Printf("settled at generation %d: period %d\n", ce.Generation, ce.Period)
		err = nil
	}
	if err != nil {
		return err
	}
	return printer.Err()
}

func showNeighbors(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}

	coords := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", a, err)
		}
		coords[i] = v
	}

	index, err := g.CoordsToIndex(coords)
	if err != nil {
		return err
	}
	nbrs, err := g.NeighborIndices(index)
	if err != nil {
		return err
	}
	full, _ := life.NeighborCount(g.Dim())

	fmt.Printf("cell %v (index %d): %d of %d neighbors\n", coords, index, len(nbrs), full)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tCOORDS")
	for _, n := range nbrs {
		nc, err := g.IndexToCoords(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%v\n", n, nc)
	}
	return w.Flush()
}

func showRules(cmd *cobra.Command, args []string) error {
	if maxDim < 1 {
		return fmt.Errorf("max-dim must be at least 1, got %d", maxDim)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIM\tNEIGHBORS\tRULE\tMIN\tBREED\tMAX")
	for d := 1; d <= maxDim; d++ {
		n, err := life.NeighborCount(d)
		if err != nil {
			return err
		}
		for _, v := range []life.RuleVariant{life.Basic, life.Percentage} {
			th, err := life.Derive(d, v)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%d\n", d, n, v, th.MinNeighbors, th.MinBreedNeighbors, th.MaxNeighbors)
		}
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRULE\tDIM\tSIZE\tGENS\tPERIOD\tTIMESTAMP")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			run.ID, run.Rule, run.Dimensions, run.Size, run.Generations, run.Period,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data in run")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("rule: %s  %dD  size %d\n", meta.Rule, meta.Dimensions, meta.Size)
	fmt.Printf("samples: %d\n\n", len(samples))

	fmt.Println(viz.PopulationPlot(samples, 80, 12, "population vs generation"))
	fmt.Println()

	// Turnover per generation, skipping generation 0 which has no predecessor.
	if len(samples) > 1 {
		turnover := make([]sim.Sample, 0, len(samples)-1)
		for _, s := range samples[1:] {
			turnover = append(turnover, sim.Sample{Generation: s.Generation, Population: s.Births + s.Deaths})
		}
		fmt.Println(viz.PopulationPlot(turnover, 80, 8, "births + deaths"))
	}

	act := metrics.NewActivity()
	period := metrics.NewDominantPeriod()
	for _, s := range samples {
		act.Observe(s)
		period.Observe(s)
	}
	fmt.Printf("\nactivity: %.2f\n", act.Value())
	if p := period.Value(); p > 0 {
		fmt.Printf("dominant period: %.1f generations\n", p)
	} else {
		fmt.Println("dominant period: none")
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportCSV(os.Stdout, args[0])
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRULE\tDIM\tSIZE\tSTART")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		start := fmt.Sprintf("soup %.2f", p.Density)
		if p.Pattern != "" {
			start = "pattern " + p.Pattern
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", name, p.Rule, p.Dimensions, p.Size, start)
	}
	fmt.Fprintf(w, "\npatterns:\t%v\n", seed.ListPatterns())
	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	samples, err := storage.New(dataDir).LoadSamples(args[0])
	if err != nil {
		return err
	}
	svg := export.SeriesToSVG(samples, 800, 300, string(viz.ThemeRetroGreen.Alive))
	if svg == "" {
		return fmt.Errorf("run %s has fewer than two samples", args[0])
	}
	fmt.Println(svg)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	level := logLevel
	if level == "" {
		level = config.DefaultLogLevel
	}
	logger := logging.NewLogger(level, os.Stderr)

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	results, err := automation.RunScenario(ctx, sc, logger)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tRULE\tDIM\tSIZE\tFINAL\tPERIOD\tSAVED")
	for i, r := range results {
		saved := "-"
		if sc.Steps[i].SaveAs != "" {
			id, err := st.Save(r.Config, r.Result)
			if err != nil {
				return err
			}
			saved = sc.Steps[i].SaveAs + " (" + id + ")"
		}
		final := r.Result.Samples[len(r.Result.Samples)-1].Population
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%s\n", i+1, r.Config.Rule, r.Config.Dimensions, r.Config.Size, final, r.Result.Period, saved)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := automation.RunSweep(ctx, &automation.ParameterSweep{
		Base:      cfg,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
	}, newLogger(cfg))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tFINAL\tPEAK\tMEAN\tPERIOD\n", sweepParam)
	for _, r := range results {
		fmt.Fprintf(w, "%g\t%d\t%.0f\t%.1f\t%d\n", r.ParamValue, r.FinalPopulation, r.PeakPopulation, r.MeanPopulation, r.Period)
	}
	return w.Flush()
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	sizes := searchSizes
	if len(sizes) == 0 {
		sizes = []float64{float64(cfg.Size)}
	}

	gs := optim.NewGridSearch([]string{"density", "size"}, [][]float64{searchDensities, sizes})
	gs.Maximize = searchMaximize

	build := func(params map[string]float64) (*experiment.Experiment, error) {
		c := cfg.Clone()
		for k, v := range params {
			if err := automation.ApplyParam(c, k, v); err != nil {
				return nil, err
			}
		}
		return experiment.New(c, logger)
	}

	ctx, cancel := signalContext()
	defer cancel()

	best, value, err := gs.Search(ctx, build, searchMetric)
	if err != nil {
		return err
	}
	fmt.Printf("best %s: %.2f at density %g, size %g\n", searchMetric, value, best["density"], best["size"])
	return nil
}
