package decomp

import (
	"slices"
	"sort"
)

// Glyph is the marker used to plot a sample.
type Glyph rune

// Glyphs available to the shape controller, in cycle order.
const (
	GlyphSphere      Glyph = '●'
	GlyphCube        Glyph = '■'
	GlyphCone        Glyph = '▲'
	GlyphIcosahedron Glyph = '◆'
	GlyphCylinder    Glyph = '▮'
)

// AllGlyphs lists glyphs in cycle order.
var AllGlyphs = []Glyph{GlyphSphere, GlyphCube, GlyphCone, GlyphIcosahedron, GlyphCylinder}

// GlyphName returns a human name for g.
func GlyphName(g Glyph) string {
	switch g {
	case GlyphSphere:
		return "sphere"
	case GlyphCube:
		return "cube"
	case GlyphCone:
		return "cone"
	case GlyphIcosahedron:
		return "icosahedron"
	case GlyphCylinder:
		return "cylinder"
	default:
		return string(g)
	}
}

// DefaultColor is the color every sample starts with.
const DefaultColor = "#ffffff"

// View wraps a Model with presentation state: per-sample color, visibility
// and glyph. Controllers mutate a View; scene views read it every frame.
type View struct {
	Model   *Model
	Colors  []string
	Visible []bool
	Glyphs  []Glyph
}

// NewView returns a view with every sample visible, white, and a sphere.
func NewView(m *Model) *View {
	n := m.Len()
	v := &View{
		Model:   m,
		Colors:  make([]string, n),
		Visible: make([]bool, n),
		Glyphs:  make([]Glyph, n),
	}
	for i := 0; i < n; i++ {
		v.Colors[i] = DefaultColor
		v.Visible[i] = true
		v.Glyphs[i] = GlyphSphere
	}
	return v
}

// samples returns the indices whose header column equals value.
func (v *View) samples(header, value string) []int {
	col := v.Model.HeaderIndex(header)
	if col < 0 {
		return nil
	}
	var out []int
	for i, row := range v.Model.Metadata {
		if row[col] == value {
			out = append(out, i)
		}
	}
	return out
}

// SetColor colors every sample in the category. Returns the number changed.
func (v *View) SetColor(header, value, color string) int {
	idx := v.samples(header, value)
	for _, i := range idx {
		v.Colors[i] = color
	}
	return len(idx)
}

// SetVisible shows or hides every sample in the category.
func (v *View) SetVisible(header, value string, visible bool) int {
	idx := v.samples(header, value)
	for _, i := range idx {
		v.Visible[i] = visible
	}
	return len(idx)
}

// SetGlyph sets the marker of every sample in the category.
func (v *View) SetGlyph(header, value string, g Glyph) int {
	idx := v.samples(header, value)
	for _, i := range idx {
		v.Glyphs[i] = g
	}
	return len(idx)
}

// Dict is the shared dictionary of named views handed to scene views and
// attribute controllers.
type Dict map[string]*View

// Names returns the view names sorted.
func (d Dict) Names() []string {
	names := make([]string, 0, len(d))
	for n := range d {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Headers returns the union of metadata headers across views, in first-seen
// order over sorted view names. The sample ID column is excluded.
func (d Dict) Headers() []string {
	var out []string
	for _, name := range d.Names() {
		for i, h := range d[name].Model.Headers {
			if i == 0 || slices.Contains(out, h) {
				continue
			}
			out = append(out, h)
		}
	}
	return out
}

// Categories returns the sorted union of values for header across views.
func (d Dict) Categories(header string) []string {
	var out []string
	for _, name := range d.Names() {
		for _, c := range d[name].Model.Categories(header) {
			if !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}
	slices.Sort(out)
	return out
}

// First returns the index of the first sample in the category, or -1.
func (v *View) First(header, value string) int {
	if idx := v.samples(header, value); len(idx) > 0 {
		return idx[0]
	}
	return -1
}

// Lookup finds the first view, in name order, holding a sample in the
// category and returns it with the sample index.
func (d Dict) Lookup(header, value string) (*View, int) {
	for _, name := range d.Names() {
		if i := d[name].First(header, value); i >= 0 {
			return d[name], i
		}
	}
	return nil, -1
}
