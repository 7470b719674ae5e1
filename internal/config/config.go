package config

import (
	"fmt"
	"os"

	"github.com/san-kum/ndlife/internal/life"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRule        = "percentage"
	DefaultDimensions  = 2
	DefaultSize        = 100
	DefaultGenerations = 100
	DefaultDensity     = 0.5
	DefaultLogLevel    = "info"
)

type Config struct {
	Rule        string  `yaml:"rule"`
	Dimensions  int     `yaml:"dimensions"`
	Size        int     `yaml:"size"`
	Generations int     `yaml:"generations"`
	Seed        int64   `yaml:"seed"`
	Density     float64 `yaml:"density"`
	Pattern     string  `yaml:"pattern,omitempty"`
	Origin      []int   `yaml:"origin,omitempty"`
	StopOnCycle bool    `yaml:"stop_on_cycle"`
	View        View    `yaml:"view"`
	LogLevel    string  `yaml:"log_level"`
}

// View controls how a grid is drawn in the terminal.
type View struct {
	// Plane fixes the coordinates of axes 2 and up; axes 0 and 1 are drawn.
	Plane []int `yaml:"plane,omitempty"`
	FPS   int   `yaml:"fps"`
	Plain bool  `yaml:"plain"`
}

func DefaultConfig() *Config {
	return &Config{
		Rule:        DefaultRule,
		Dimensions:  DefaultDimensions,
		Size:        DefaultSize,
		Generations: DefaultGenerations,
		Density:     DefaultDensity,
		View:        View{FPS: 10},
		LogLevel:    DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path over a copy of base. Keys missing from the file keep
// base's values.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Variant parses the configured rule name.
func (c *Config) Variant() (life.RuleVariant, error) {
	return life.ParseRule(c.Rule)
}

func (c *Config) Validate() error {
	if _, err := c.Variant(); err != nil {
		return err
	}
	if _, err := life.CellCount(c.Size, c.Dimensions); err != nil {
		return err
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must be non-negative, got %d", c.Generations)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be in [0, 1], got %f", c.Density)
	}
	if c.Origin != nil && len(c.Origin) != c.Dimensions {
		return fmt.Errorf("origin has %d components, want %d", len(c.Origin), c.Dimensions)
	}
	if extra := max(c.Dimensions-2, 0); len(c.View.Plane) > extra {
		return fmt.Errorf("view plane has %d components, at most %d allowed", len(c.View.Plane), extra)
	}
	if c.View.FPS < 0 {
		return fmt.Errorf("fps must be non-negative, got %d", c.View.FPS)
	}
	return nil
}

// NewGrid builds an all-dead grid of the configured shape.
func (c *Config) NewGrid() (*life.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	v, _ := c.Variant()
	return life.New(v, c.Dimensions, c.Size)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Origin != nil {
		cp.Origin = append([]int(nil), c.Origin...)
	}
	if c.View.Plane != nil {
		cp.View.Plane = append([]int(nil), c.View.Plane...)
	}
	return &cp
}
