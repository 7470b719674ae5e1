package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/san-kum/ndlife/internal/config"
	"github.com/san-kum/ndlife/internal/life"
	"github.com/san-kum/ndlife/internal/metrics"
	"github.com/san-kum/ndlife/internal/seed"
	"github.com/san-kum/ndlife/internal/sim"
)

// Experiment turns a Config into seeded grids and runs them.
type Experiment struct {
	cfg        *config.Config
	logger     *slog.Logger
	randSource *rand.Rand
	runner     *sim.Runner
}

func New(cfg *config.Config, logger *slog.Logger) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Pattern != "" {
		if _, err := seed.GetPattern(cfg.Pattern); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Experiment{
		cfg:        cfg,
		logger:     logger,
		randSource: seed.NewRNG(cfg.Seed),
	}, nil
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// NewGrid builds and seeds a grid. Random soups draw from the experiment's
// RNG, so repeated calls give different soups in a reproducible sequence.
func (e *Experiment) NewGrid() (*life.Grid, error) {
	g, err := e.cfg.NewGrid()
	if err != nil {
		return nil, err
	}
	if err := Populate(g, e.cfg, e.randSource); err != nil {
		return nil, err
	}
	e.logger.Debug("grid seeded", "cells", g.Len(), "population", g.Population())
	return g, nil
}

// Populate seeds g from cfg: the named pattern if set, otherwise a random
// soup at cfg.Density.
func Populate(g *life.Grid, cfg *config.Config, rng *rand.Rand) error {
	if cfg.Pattern == "" {
		return seed.Randomize(g, rng, cfg.Density)
	}
	p, err := seed.GetPattern(cfg.Pattern)
	if err != nil {
		return err
	}
	if cfg.Origin != nil {
		return seed.Place(g, p, cfg.Origin)
	}
	return seed.PlaceCentered(g, p)
}

// Setup creates the runner with the standard metrics and any observers.
func (e *Experiment) Setup(observers ...sim.Observer) {
	e.runner = sim.New(e.logger)
	for _, m := range metrics.Defaults() {
		e.runner.AddMetric(m)
	}
	for _, o := range observers {
		e.runner.AddObserver(o)
	}
}

// Run seeds a grid and steps it for the configured generations.
func (e *Experiment) Run(ctx context.Context) (*life.Grid, *sim.Result, error) {
	if e.runner == nil {
		return nil, nil, fmt.Errorf("experiment not setup")
	}
	g, err := e.NewGrid()
	if err != nil {
		return nil, nil, err
	}
	res, err := e.runner.Run(ctx, g, e.simConfig())
	return g, res, err
}

func (e *Experiment) simConfig() sim.Config {
	return sim.Config{
		Generations: e.cfg.Generations,
		StopOnCycle: e.cfg.StopOnCycle,
	}
}

// Ensemble runs numRuns soups concurrently, seeded cfg.Seed, cfg.Seed+1, ...
func (e *Experiment) Ensemble(ctx context.Context, numRuns int) ([]*sim.Result, error) {
	build := func(s int64) (*life.Grid, error) {
		g, err := e.cfg.NewGrid()
		if err != nil {
			return nil, err
		}
		return g, Populate(g, e.cfg, seed.NewRNG(s))
	}
	newRunner := func() *sim.Runner {
		r := sim.New(e.logger)
		for _, m := range metrics.Defaults() {
			r.AddMetric(m)
		}
		return r
	}
	return sim.NewEnsemble(newRunner, build, numRuns, e.cfg.Seed).Run(ctx, e.simConfig())
}
