package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"classic": {
		Rule: "basic", Dimensions: 2, Size: 48, Generations: 200, Density: 0.35,
		View: View{FPS: 15}, LogLevel: DefaultLogLevel,
	},
	"percentage": {
		Rule: "percentage", Dimensions: 2, Size: 100, Generations: 200, Density: 0.5,
		View: View{FPS: 10}, LogLevel: DefaultLogLevel,
	},
	"glider": {
		Rule: "basic", Dimensions: 2, Size: 24, Generations: 80, Pattern: "glider",
		Origin: []int{1, 1}, View: View{FPS: 15}, LogLevel: DefaultLogLevel,
	},
	"line": {
		Rule: "basic", Dimensions: 1, Size: 80, Generations: 40, Pattern: "dot",
		Origin: []int{40}, View: View{FPS: 10}, LogLevel: DefaultLogLevel,
	},
	"cube": {
		Rule: "percentage", Dimensions: 3, Size: 16, Generations: 60, Density: 0.3,
		View: View{Plane: []int{8}, FPS: 8}, LogLevel: DefaultLogLevel,
	},
	"tesseract": {
		Rule: "basic", Dimensions: 4, Size: 8, Generations: 40, Density: 0.25,
		View: View{Plane: []int{4, 4}, FPS: 5}, LogLevel: DefaultLogLevel,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve starts from the named preset (or the defaults when preset is
// empty) and applies the config file at path on top, if given.
func Resolve(preset, path string) (*Config, error) {
	if preset == "" {
		if path == "" {
			return DefaultConfig(), nil
		}
		return Load(path)
	}
	cfg := GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, ListPresets())
	}
	if path == "" {
		return cfg, nil
	}
	return LoadOnto(path, cfg)
}
