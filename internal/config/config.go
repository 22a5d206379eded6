package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shape-viewer/internal/shapes"
	"shape-viewer/internal/theme"
	"shape-viewer/internal/viewstate"
)

// DefaultPath is the config file read when no --config flag is given,
// relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Window holds window settings.
type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int    `yaml:"target_fps"`
	MSAA       bool   `yaml:"msaa"`
}

// Camera holds the orbit camera settings.
type Camera struct {
	Position        [3]float32 `yaml:"position"`
	Fovy            float32    `yaml:"fovy"`
	AutoRotate      bool       `yaml:"auto_rotate"`
	AutoRotateSpeed float32    `yaml:"auto_rotate_speed"`
	EnableZoom      bool       `yaml:"enable_zoom"`
}

// Initial is the view state the window opens with.
type Initial struct {
	Shape       string `yaml:"shape"`
	Wireframe   bool   `yaml:"wireframe"`
	DarkMode    bool   `yaml:"dark_mode"`
	CustomColor string `yaml:"custom_color,omitempty"`
}

// Config is the viewer configuration. It is read at startup and never written.
type Config struct {
	Window       Window  `yaml:"window"`
	Camera       Camera  `yaml:"camera"`
	Initial      Initial `yaml:"initial"`
	ShowFPS      bool    `yaml:"show_fps"`
	ShowMemAlloc bool    `yaml:"show_memalloc"`
	Font         string  `yaml:"font,omitempty"` // optional TTF for overlay text
}

// Default returns the built-in configuration: cube, dark theme, camera at
// (0, 0, 5) auto-rotating at speed 2.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    800,
			Title:     "Shape Viewer",
			TargetFPS: 60,
			MSAA:      true,
		},
		Camera: Camera{
			Position:        [3]float32{0, 0, 5},
			Fovy:            75,
			AutoRotate:      true,
			AutoRotateSpeed: 2,
			EnableZoom:      true,
		},
		Initial: Initial{
			Shape:    string(shapes.Cube),
			DarkMode: true,
		},
	}
}

// Load reads path on top of Default. A missing file is not an error and
// yields Default; a malformed or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and the initial view state.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		return fmt.Errorf("%w: fovy %g", ErrInvalid, c.Camera.Fovy)
	}
	if !shapes.Valid(shapes.ID(c.Initial.Shape)) {
		return fmt.Errorf("%w: shape %q", ErrInvalid, c.Initial.Shape)
	}
	if c.Initial.CustomColor != "" {
		if _, err := theme.ParseColor(c.Initial.CustomColor); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// ViewState returns the initial view state. Call Validate first.
func (c Config) ViewState() viewstate.ViewState {
	s := viewstate.ViewState{
		Shape:     shapes.ID(c.Initial.Shape),
		Wireframe: c.Initial.Wireframe,
		DarkMode:  c.Initial.DarkMode,
	}
	if norm, err := theme.NormalizeColor(c.Initial.CustomColor); err == nil {
		s.CustomColor = norm
	}
	return s
}
