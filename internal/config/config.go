// Package config loads the board description used by the plugboard command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Port struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

type Cable struct {
	ID  string  `yaml:"id"`
	In  string  `yaml:"in"`
	Out string  `yaml:"out"`
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
}

type Config struct {
	Window   Window `yaml:"window"`
	LogLevel string `yaml:"log_level"`
	// PortSize and PlugSize are the side lengths in pixels.
	PortSize float64 `yaml:"port_size"`
	PlugSize float64 `yaml:"plug_size"`
	// ForgetDraggedPlug clears the drag slot when a plug is dropped.
	ForgetDraggedPlug bool    `yaml:"forget_dragged_plug_on_release"`
	Ports             []Port  `yaml:"ports"`
	Cables            []Cable `yaml:"cables"`
}

// Default is a small board with three ports and two cables.
func Default() *Config {
	return &Config{
		Window:   Window{Width: 960, Height: 600, Title: "plugboard"},
		LogLevel: "info",
		PortSize: 20,
		PlugSize: 16,
		Ports: []Port{
			{ID: "osc.out", Label: "osc out", X: 120, Y: 120},
			{ID: "filter.in", Label: "filter in", X: 420, Y: 160},
			{ID: "mixer.in", Label: "mixer in", X: 720, Y: 120},
		},
		Cables: []Cable{
			{ID: "patch-1", Out: "osc.out", In: "filter.in"},
			{ID: "patch-2", X: 120, Y: 420},
		},
	}
}

// Load reads a YAML file. Missing fields fall back to Default's values,
// except ports and cables which are taken as given when present.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	c := Default()
	var raw Config
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	merge(c, &raw)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func merge(dst, src *Config) {
	if src.Window.Width > 0 {
		dst.Window.Width = src.Window.Width
	}
	if src.Window.Height > 0 {
		dst.Window.Height = src.Window.Height
	}
	if src.Window.Title != "" {
		dst.Window.Title = src.Window.Title
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.PortSize > 0 {
		dst.PortSize = src.PortSize
	}
	if src.PlugSize > 0 {
		dst.PlugSize = src.PlugSize
	}
	dst.ForgetDraggedPlug = src.ForgetDraggedPlug
	if src.Ports != nil {
		dst.Ports = src.Ports
		dst.Cables = nil
	}
	if src.Cables != nil {
		dst.Cables = src.Cables
	}
}

// Validate checks ids and references.
func (c *Config) Validate() error {
	var errs []error
	if c.PortSize <= 0 || c.PlugSize <= 0 {
		errs = append(errs, errors.New("port_size and plug_size must be positive"))
	}
	ports := map[string]bool{}
	for i, p := range c.Ports {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("ports[%d]: empty id", i))
		case ports[p.ID]:
			errs = append(errs, fmt.Errorf("ports[%d]: duplicate id %q", i, p.ID))
		}
		ports[p.ID] = true
	}
	cables := map[string]bool{}
	for i, cb := range c.Cables {
		if cb.ID != "" {
			if cables[cb.ID] {
				errs = append(errs, fmt.Errorf("cables[%d]: duplicate id %q", i, cb.ID))
			}
			cables[cb.ID] = true
		}
		for _, end := range []string{cb.In, cb.Out} {
			if end != "" && !ports[end] {
				errs = append(errs, fmt.Errorf("cables[%d]: unknown port %q", i, end))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
