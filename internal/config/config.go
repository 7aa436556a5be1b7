// Package config loads the viewer's layout settings from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"ordview/internal/geom"
	"ordview/internal/ui"
)

const (
	// PathEnv is the env var override for the config file location.
	PathEnv = "ORDVIEW_CONFIG"
	// DefaultPath is the config file location under $HOME.
	DefaultPath = ".config/ordview/config.yaml"

	// MenuWidthEnv overrides layout.menu_width.
	MenuWidthEnv = "ORDVIEW_MENU_WIDTH"
	// FPSEnv overrides layout.fps.
	FPSEnv = "ORDVIEW_FPS"

	// MaxFPS bounds the frame clock.
	MaxFPS = 120
)

// Layout holds the region sizing knobs.
type Layout struct {
	GridScale      float64 `yaml:"grid_scale"`
	SceneViewScale float64 `yaml:"scene_view_scale"`
	MenuWidth      int     `yaml:"menu_width"`
	FPS            int     `yaml:"fps"`
}

// File is the on-disk configuration.
type File struct {
	Layout     Layout `yaml:"layout"`
	Views      int    `yaml:"views"`
	Background string `yaml:"background"`
}

// Default returns the configuration used when no file exists.
func Default() File {
	c := ui.DefaultConfig()
	return File{
		Layout: Layout{
			GridScale:      c.GridScale,
			SceneViewScale: c.SceneViewScale,
			MenuWidth:      c.MenuWidth,
			FPS:            int(time.Second / c.FrameInterval),
		},
		Views:      1,
		Background: c.Background,
	}
}

// ResolvePath returns the config path, using ORDVIEW_CONFIG if set,
// otherwise ~/.config/ordview/config.yaml.
func ResolvePath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultPath), nil
}

// Load reads path over the defaults and applies env overrides. A missing
// file is not an error.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return File{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := f.applyEnv(); err != nil {
		return File{}, err
	}
	return f, nil
}

func (f *File) applyEnv() error {
	if v := os.Getenv(MenuWidthEnv); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", MenuWidthEnv, err)
		}
		f.Layout.MenuWidth = n
	}
	if v := os.Getenv(FPSEnv); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", FPSEnv, err)
		}
		f.Layout.FPS = n
	}
	return nil
}

// UIConfig converts f into a validated controller configuration.
func (f File) UIConfig() (ui.Config, error) {
	if f.Layout.FPS < 1 || f.Layout.FPS > MaxFPS {
		return ui.Config{}, fmt.Errorf("fps %d out of range [1, %d]", f.Layout.FPS, MaxFPS)
	}
	if f.Views < 0 || f.Views > geom.MaxViews {
		return ui.Config{}, fmt.Errorf("views %d out of range [0, %d]", f.Views, geom.MaxViews)
	}
	c := ui.DefaultConfig()
	c.GridScale = f.Layout.GridScale
	c.SceneViewScale = f.Layout.SceneViewScale
	c.MenuWidth = f.Layout.MenuWidth
	c.FrameInterval = time.Second / time.Duration(f.Layout.FPS)
	c.Background = f.Background
	if err := c.Validate(); err != nil {
		return ui.Config{}, err
	}
	return c, nil
}
