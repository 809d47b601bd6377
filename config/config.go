// Package config loads the wallpaper configuration from YAML.
//
// Every field is optional; missing values fall back to the defaults the
// renderer and host were designed around (an 800x600 window, 4x MSAA, a
// green clear color, automatic pointer device discovery).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/lively"
)

// Default dimensions and title for the windowed host.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "lively"
)

// DefaultSensitivity is the pointer delta multiplier applied when the
// config leaves it unset.
const DefaultSensitivity = 1.0

// Config holds the wallpaper settings.
type Config struct {
	// Width, Height are the window dimensions in pixels.
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`

	// Title is the window title.
	Title string `yaml:"title,omitempty"`

	// SampleCount is the MSAA sample count, 1 or 4.
	SampleCount int `yaml:"sampleCount,omitempty"`

	// Clear is the background color. Nil means the default green;
	// the pointer distinguishes an explicit transparent black from unset.
	Clear *Color `yaml:"clear,omitempty"`

	// Input configures the pointer source.
	Input Input `yaml:"input,omitempty"`
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
	A float32 `yaml:"a"`
}

// Input configures where pointer motion comes from.
type Input struct {
	// Device is an evdev device path, or "auto" to scan /dev/input.
	Device string `yaml:"device,omitempty"`

	// Sensitivity scales relative pointer deltas.
	Sensitivity float64 `yaml:"sensitivity,omitempty"`

	// Start is the initial pointer position in pixels. Nil means the
	// surface center.
	Start *Point `yaml:"start,omitempty"`
}

// Point is a pixel-space position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.normalize()
	return c
}

func (c *Config) normalize() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.SampleCount == 0 {
		c.SampleCount = 4
	}
	if c.Input.Device == "" {
		c.Input.Device = "auto"
	}
	if c.Input.Sensitivity == 0 {
		c.Input.Sensitivity = DefaultSensitivity
	}
}

// Validate checks the configuration for values the renderer or host cannot
// work with. The returned error names the offending field.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("config: width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("config: height must be positive, got %d", c.Height)
	}
	if c.SampleCount != 1 && c.SampleCount != 4 {
		return fmt.Errorf("config: sampleCount must be 1 or 4, got %d", c.SampleCount)
	}
	if c.Input.Sensitivity <= 0 {
		return fmt.Errorf("config: input.sensitivity must be positive, got %g", c.Input.Sensitivity)
	}
	if c.Clear != nil {
		for _, comp := range []struct {
			name  string
			value float32
		}{
			{"r", c.Clear.R}, {"g", c.Clear.G}, {"b", c.Clear.B}, {"a", c.Clear.A},
		} {
			if comp.value < 0 || comp.value > 1 {
				return fmt.Errorf("config: clear.%s must be in [0, 1], got %g", comp.name, comp.value)
			}
		}
	}
	return nil
}

// Parse decodes a YAML document, fills in defaults, and validates.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads a configuration file. An empty path or a missing file yields
// the defaults; any other read or parse failure is an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ClearColor returns the configured background color, or the engine default
// when the config leaves it unset.
func (c *Config) ClearColor() lively.Color {
	if c.Clear == nil {
		return lively.DefaultClearColor
	}
	return lively.Color{R: c.Clear.R, G: c.Clear.G, B: c.Clear.B, A: c.Clear.A}
}
