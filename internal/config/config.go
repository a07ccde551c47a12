// Package config loads and saves simulation preferences. Preferences are
// engine-level knobs (window, rates, overlays, world constants) persisted
// across runs; per-demo state is not stored here.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the preferences file, relative to the process working directory.
const Path = "config/sim.yaml"

// Prefs holds the simulation preferences.
type Prefs struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
	FPS         int  `yaml:"fps"`
	PhysicsRate int  `yaml:"physics_rate"`
	ShowFPS     bool `yaml:"show_fps"`
	ShowMem     bool `yaml:"show_mem"`
	ShowCounts  bool `yaml:"show_counts"`

	Gravity     float64 `yaml:"gravity"`
	Restitution float64 `yaml:"restitution"`
	CellSize    float64 `yaml:"cell_size"`
}

// Default returns the default preferences: a 1200x800 window at 60 FPS with
// overlays off and moderately bouncy collisions.
func Default() Prefs {
	p := Prefs{
		FPS:         60,
		PhysicsRate: 120,
		Gravity:     9.8,
		Restitution: 0.7,
		CellSize:    100,
	}
	p.Window.Width = 1200
	p.Window.Height = 800
	return p
}

// Load reads preferences from config/sim.yaml. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() Prefs {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default()
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p
}

// Save writes preferences to config/sim.yaml, creating the config directory
// if needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(Path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
