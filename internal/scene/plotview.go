// Package scene provides the scene view: an independently rendered 3D
// scatter bound to one viewport rectangle of the shared surface.
package scene

import (
	"fmt"
	"sort"

	"ordview/internal/decomp"
	"ordview/internal/geom"
	"ordview/internal/surface"

	"github.com/chewxy/math32"
)

// AxisColor is used for the origin marker.
const AxisColor = "#585858"

// PlotView renders every visible sample of every view in a dictionary.
type PlotView struct {
	surface  *surface.Surface
	views    decomp.Dict
	viewport geom.Rect
	Camera   Camera
}

// NewPlotView binds a view to the shared surface and data dictionary.
// Its viewport is empty until the first Resize.
func NewPlotView(s *surface.Surface, views decomp.Dict) *PlotView {
	return &PlotView{
		surface: s,
		views:   views,
		Camera:  DefaultCamera(),
	}
}

// Resize assigns the view's viewport rectangle on the shared surface.
func (v *PlotView) Resize(x, y, width, height int) {
	v.viewport = geom.NewRect(x, y, width, height)
}

// Viewport returns the last assigned rectangle.
func (v *PlotView) Viewport() geom.Rect {
	return v.viewport
}

// Reset restores the default camera.
func (v *PlotView) Reset() {
	v.Camera = DefaultCamera()
}

type projected struct {
	x, y  int
	depth float32
	glyph rune
	color string
}

// Render draws the scene into the view's viewport. A zero-area viewport is
// a no-op.
func (v *PlotView) Render() error {
	if v.surface == nil {
		return fmt.Errorf("scene.Render: no surface bound")
	}
	if v.viewport.Empty() {
		return nil
	}
	v.surface.SetViewport(v.viewport)
	w, h := v.viewport.W, v.viewport.H

	extent := v.extent()
	// Fit the unit cube into the smaller of the two axes, in cells.
	half := math32.Min(float32(w)/2, float32(h)/2/cellAspect) * 0.9
	cx := float32(w-1) / 2
	cy := float32(h-1) / 2

	toCell := func(x, y, z float32) (int, int, float32) {
		sx, sy, d := v.Camera.project(x/extent, y/extent, z/extent)
		col := math32.Round(cx + sx*half)
		row := math32.Round(cy - sy*half*cellAspect)
		return int(col), int(row), d
	}

	ox, oy, _ := toCell(0, 0, 0)
	v.surface.Set(ox, oy, '+', AxisColor)

	var points []projected
	for _, name := range v.views.Names() {
		dv := v.views[name]
		for i, c := range dv.Model.Coords {
			if !dv.Visible[i] {
				continue
			}
			px, py, d := toCell(c[0], c[1], c[2])
			points = append(points, projected{x: px, y: py, depth: d, glyph: rune(dv.Glyphs[i]), color: dv.Colors[i]})
		}
	}
	// Far to near so closer samples win a shared cell.
	sort.SliceStable(points, func(i, j int) bool { return points[i].depth < points[j].depth })
	for _, p := range points {
		v.surface.Set(p.x, p.y, p.glyph, p.color)
	}
	return nil
}

// extent is the largest absolute coordinate across all views, so the data
// always fits the viewport regardless of ordination scale.
func (v *PlotView) extent() float32 {
	var e float32
	for _, dv := range v.views {
		for _, c := range dv.Model.Coords {
			for _, x := range c[:3] {
				e = math32.Max(e, math32.Abs(x))
			}
		}
	}
	if e == 0 {
		return 1
	}
	return e
}
