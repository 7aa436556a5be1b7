package ui

import (
	"ordview/internal/decomp"
	"ordview/internal/scene"
	"ordview/internal/surface"
)

// SceneView is a 3D view bound to one rectangle of the shared surface.
type SceneView interface {
	Resize(x, y, width, height int)
	Render() error
}

// ViewFactory builds a scene view bound to the shared surface and data.
type ViewFactory func(s *surface.Surface, views decomp.Dict) SceneView

// NewPlotView is the default ViewFactory.
func NewPlotView(s *surface.Surface, views decomp.Dict) SceneView {
	return scene.NewPlotView(s, views)
}

var _ SceneView = (*scene.PlotView)(nil)
