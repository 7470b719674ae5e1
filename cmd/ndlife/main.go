package main

import (
	"os"
	"strings"

	"github.com/san-kum/ndlife/internal/life"
	"github.com/san-kum/ndlife/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string

	rule        string
	dims        int
	size        int
	generations int
	seedValue   int64
	density     float64
	pattern     string
	origin      []int
	plane       []int
	stopOnCycle bool

	printEach bool
	plain     bool
	color     bool
	theme     string
	noSave    bool
	ensemble  int
	fps       int
	maxDim    int
	svgPath   string

	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int

	searchDensities []float64
	searchSizes     []float64
	searchMetric    string
	searchMaximize  bool
)

var themeHelp = "color theme (" + strings.Join(viz.ListThemes(), ", ") + ")"

// main registers the ndlife commands and executes the root command.
// It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "ndlife",
		Short:        "N-dimensional Game of Life lab",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ndlife", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (info, debug, trace)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and save its population series",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addGridFlags(runCmd)
	runCmd.Flags().BoolVar(&printEach, "print", false, "print every generation")
	runCmd.Flags().BoolVar(&plain, "plain", false, "print without colors")
	runCmd.Flags().StringVar(&theme, "theme", "retro", themeHelp)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	runCmd.Flags().IntVar(&ensemble, "ensemble", 0, "run this many seeds concurrently and summarize")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final grid slice to this SVG file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addGridFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", 0, "frame rate")
	liveCmd.Flags().StringVar(&theme, "theme", "retro", themeHelp)

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "print the starting grid and each following generation",
		Args:  cobra.NoArgs,
		RunE:  printGenerations,
	}
	addGridFlags(printCmd)
	printCmd.Flags().BoolVar(&color, "color", false, "print with theme colors")
	printCmd.Flags().StringVar(&theme, "theme", "retro", themeHelp)

	neighborsCmd := &cobra.Command{
		Use:   "neighbors [coord...]",
		Short: "list the neighbors of a cell",
		Args:  cobra.MinimumNArgs(1),
		RunE:  showNeighbors,
	}
	addGridFlags(neighborsCmd)

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "show thresholds for each rule variant by dimension",
		Args:  cobra.NoArgs,
		RunE:  showRules,
	}
	rulesCmd.Flags().IntVar(&maxDim, "max-dim", 6, "highest dimension to list")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the population series of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run one config across a range of a parameter",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addGridFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "density", "parameter to vary (density, size, dim, generations, seed)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.1, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.9, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 9, "number of values")

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "grid search density and size for the best metric value",
		Args:  cobra.NoArgs,
		RunE:  runSearch,
	}
	addGridFlags(searchCmd)
	searchCmd.Flags().Float64SliceVar(&searchDensities, "densities", []float64{0.2, 0.35, 0.5, 0.65}, "densities to try")
	searchCmd.Flags().Float64SliceVar(&searchSizes, "sizes", nil, "sizes to try (default: the configured size)")
	searchCmd.Flags().StringVar(&searchMetric, "metric", "mean_population", "metric to optimize")
	searchCmd.Flags().BoolVar(&searchMaximize, "maximize", false, "maximize instead of minimize")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, printCmd, neighborsCmd, rulesCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd,
		scenarioCmd, sweepCmd, searchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&rule, "rule", "percentage", "rule variant ("+strings.Join(life.RuleNames(), ", ")+")")
	cmd.Flags().IntVar(&dims, "dim", 2, "number of dimensions")
	cmd.Flags().IntVar(&size, "size", 100, "cells per axis")
	cmd.Flags().IntVar(&generations, "generations", 100, "generations to run")
	cmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().Float64Var(&density, "density", 0.5, "fraction of cells alive in a random soup")
	cmd.Flags().StringVar(&pattern, "pattern", "", "place a named pattern instead of a random soup")
	cmd.Flags().IntSliceVar(&origin, "origin", nil, "pattern origin, one value per axis")
	cmd.Flags().IntSliceVar(&plane, "plane", nil, "coordinates of axes 2 and up for display")
	cmd.Flags().BoolVar(&stopOnCycle, "stop-on-cycle", false, "stop once a state repeats")
}
