package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/ndlife/internal/config"
	"github.com/san-kum/ndlife/internal/experiment"
	"github.com/san-kum/ndlife/internal/sim"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. Params override the preset
// (or the defaults when Preset is empty) by name; see ApplyParam.
type ScenarioStep struct {
	Preset      string             `yaml:"preset"`
	Rule        string             `yaml:"rule"`
	Pattern     string             `yaml:"pattern"`
	Origin      []int              `yaml:"origin"`
	Seed        int64              `yaml:"seed"`
	StopOnCycle bool               `yaml:"stop_on_cycle"`
	Params      map[string]float64 `yaml:"params"`
	SaveAs      string             `yaml:"save_as"`
}

// StepResult pairs a step's resolved config with its outcome.
type StepResult struct {
	Config *config.Config
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// Resolve builds the config for a step.
func (s ScenarioStep) Resolve() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Rule != "" {
		cfg.Rule = s.Rule
	}
	if s.Pattern != "" {
		cfg.Pattern = s.Pattern
	}
	if s.Origin != nil {
		cfg.Origin = s.Origin
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if s.StopOnCycle {
		cfg.StopOnCycle = true
	}
	for k, v := range s.Params {
		if err := ApplyParam(cfg, k, v); err != nil {
			return nil, err
		}
	}
	return cfg, cfg.Validate()
}

// ApplyParam sets a numeric config field by name.
func ApplyParam(cfg *config.Config, name string, value float64) error {
	switch name {
	case "density":
		cfg.Density = value
	case "size":
		cfg.Size = int(value)
	case "dimensions", "dim":
		cfg.Dimensions = int(value)
	case "generations":
		cfg.Generations = int(value)
	case "seed":
		cfg.Seed = int64(value)
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}

// RunScenario executes all steps in a scenario
func RunScenario(ctx context.Context, scenario *Scenario, logger *slog.Logger) ([]StepResult, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Resolve()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		logger.Info("scenario step", "step", i+1, "of", len(scenario.Steps), "rule", cfg.Rule, "dim", cfg.Dimensions)

		result, err := runOnce(ctx, cfg, logger)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Config: cfg, Result: result})
	}

	return results, nil
}

func runOnce(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sim.Result, error) {
	exp, err := experiment.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	exp.Setup()
	_, result, err := exp.Run(ctx)
	return result, err
}

// ParameterSweep runs the base config across a range of one parameter.
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	ParamValue      float64
	FinalPopulation int
	PeakPopulation  float64
	MeanPopulation  float64
	Period          int
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep, logger *slog.Logger) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		cfg := sweep.Base.Clone()
		if err := ApplyParam(cfg, sweep.ParamName, paramVal); err != nil {
			return nil, err
		}

		result, err := runOnce(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", sweep.ParamName, paramVal, err)
		}

		results = append(results, SweepResult{
			ParamValue:      paramVal,
			FinalPopulation: result.Samples[len(result.Samples)-1].Population,
			PeakPopulation:  result.Metrics["peak_population"],
			MeanPopulation:  result.Metrics["mean_population"],
			Period:          result.Period,
		})

		logger.Debug("sweep point", "step", i+1, "of", sweep.NumSteps, sweep.ParamName, paramVal)
	}

	return results, nil
}
