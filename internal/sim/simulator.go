package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/san-kum/ndlife/internal/life"
	"github.com/san-kum/ndlife/internal/logging"
)

var defaultPool = NewBufferPool()

// Runner drives a grid through generations, feeding metrics and observers.
type Runner struct {
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
	buffers   *BufferPool
}

// New returns a Runner. A nil logger discards output.
func New(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger,
		buffers:   defaultPool,
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run steps g cfg.Generations times. Generation 0 of the result is the
// grid as passed in. Cycles are detected by hashing every state seen.
func (r *Runner) Run(ctx context.Context, g *life.Grid, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Samples:    make([]Sample, 0, cfg.Generations+1),
		Metrics:    make(map[string]float64),
		CycleStart: -1,
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	prev := r.buffers.GetAndCopy(g)
	cur := r.buffers.Get()
	defer r.buffers.Put(prev)
	defer r.buffers.Put(cur)

	var scratch []byte
	seen := make(map[uint64]int)
	seen[hashCells(*prev, &scratch)] = g.Generation()

	r.logger.Info("run started",
		"rule", g.Rule().String(),
		"dim", g.Dim(),
		"size", g.Size(),
		"generations", cfg.Generations,
	)

	r.record(result, g, Sample{Generation: g.Generation(), Population: g.Population()})

	for i := 0; i < cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			r.finish(result)
			return result, ctx.Err()
		default:
		}

		g.Step()
		*cur = g.CopyCells(*cur)

		s := diff(*prev, *cur)
		s.Generation = g.Generation()
		r.record(result, g, s)
		result.Generations++

		r.logger.Debug("generation",
			"generation", s.Generation,
			"population", s.Population,
			"births", s.Births,
			"deaths", s.Deaths,
		)

		if result.Period == 0 {
			h := hashCells(*cur, &scratch)
			r.logger.Log(ctx, logging.LevelTrace, "snapshot", "generation", s.Generation, "hash", h)
			if start, ok := seen[h]; ok {
				result.CycleStart = start
				result.Period = s.Generation - start
				r.logger.Info("cycle detected", "start", start, "period", result.Period)
				if cfg.StopOnCycle {
					break
				}
			} else {
				seen[h] = s.Generation
			}
		}

		prev, cur = cur, prev
	}

	r.finish(result)
	r.logger.Info("run finished",
		"generations", result.Generations,
		"population", g.Population(),
		"period", result.Period,
	)
	return result, nil
}

// RunUntil steps g until it reaches generation target. It fails with a
// CycleError if the grid settles into a cycle first and stop is set.
func (r *Runner) RunUntil(ctx context.Context, g *life.Grid, target int, stop bool) (*Result, error) {
	if target < g.Generation() {
		return nil, fmt.Errorf("target generation %d is behind current generation %d", target, g.Generation())
	}
	res, err := r.Run(ctx, g, Config{Generations: target - g.Generation(), StopOnCycle: stop})
	if err != nil {
		return res, err
	}
	if stop && res.Period > 0 && g.Generation() < target {
		return res, CycleError{Generation: g.Generation(), Period: res.Period}
	}
	return res, nil
}

func (r *Runner) record(result *Result, g *life.Grid, s Sample) {
	result.Samples = append(result.Samples, s)
	for _, m := range r.metrics {
		m.Observe(s)
	}
	for _, obs := range r.observers {
		obs.OnStep(g, s)
	}
}

func (r *Runner) finish(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Generations < 0 {
		return fmt.Errorf("generations must be non-negative, got %d", cfg.Generations)
	}
	return nil
}

func diff(prev, cur []life.Cell) Sample {
	var s Sample
	for i, c := range cur {
		if c == life.Alive {
			s.Population++
		}
		switch {
		case prev[i] == life.Dead && c == life.Alive:
			s.Births++
		case prev[i] == life.Alive && c == life.Dead:
			s.Deaths++
		}
	}
	return s
}

func hashCells(cells []life.Cell, scratch *[]byte) uint64 {
	b := (*scratch)[:0]
	for _, c := range cells {
		b = append(b, byte(c))
	}
	*scratch = b
	return xxhash.Sum64(b)
}
