package ui

import (
	"fmt"
	"time"

	"ordview/internal/geom"
)

// Config holds the fixed layout constants of a Controller. It is passed by
// value at construction and never mutated afterwards.
type Config struct {
	// GridScale shrinks the menu height available to controller panels to
	// leave room for borders and padding.
	GridScale float64
	// SceneViewScale is where the plotting area is split between views.
	SceneViewScale float64
	// MaxViews caps the number of scene views.
	MaxViews int
	// MenuWidth is the width of the tab menu in cells. The plotting area
	// gets whatever is left.
	MenuWidth int
	// FrameInterval is the period of the render clock.
	FrameInterval time.Duration
	// Background is the surface background color; empty for the terminal's.
	Background string
}

// DefaultConfig returns the stock layout constants.
func DefaultConfig() Config {
	return Config{
		GridScale:      0.97,
		SceneViewScale: geom.DefaultSceneViewScale,
		MaxViews:       geom.MaxViews,
		MenuWidth:      40,
		FrameInterval:  50 * time.Millisecond,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.GridScale <= 0 || c.GridScale > 1:
		return fmt.Errorf("grid scale %v out of range (0, 1]", c.GridScale)
	case c.SceneViewScale <= 0 || c.SceneViewScale > 1:
		return fmt.Errorf("scene view scale %v out of range (0, 1]", c.SceneViewScale)
	case c.MaxViews < 1 || c.MaxViews > geom.MaxViews:
		return fmt.Errorf("max views %d out of range [1, %d]", c.MaxViews, geom.MaxViews)
	case c.MenuWidth < 0:
		return fmt.Errorf("menu width %d is negative", c.MenuWidth)
	case c.FrameInterval <= 0:
		return fmt.Errorf("frame interval %v must be positive", c.FrameInterval)
	}
	return nil
}
