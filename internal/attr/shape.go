package attr

import (
	"slices"

	"ordview/internal/decomp"
)

// ShapeController assigns plot glyphs by category.
type ShapeController struct {
	*categoryTable
}

var _ Panel = (*ShapeController)(nil)

// NewShapeController is the Factory for KindShape.
func NewShapeController(containerID string, views decomp.Dict) (Controller, error) {
	c := &ShapeController{
		categoryTable: newCategoryTable(KindShape.String()+"-"+containerID, "Shape", "Shape", views),
	}
	c.value = func(header, category string) string {
		g := c.Glyph(header, category)
		return string(rune(g)) + " " + decomp.GlyphName(g)
	}
	c.apply = c.Cycle
	c.refresh()
	return c, nil
}

// Glyph returns the glyph of the category's first sample.
func (c *ShapeController) Glyph(header, category string) decomp.Glyph {
	v, i := c.views.Lookup(header, category)
	if v == nil {
		return decomp.GlyphSphere
	}
	return v.Glyphs[i]
}

// Cycle advances the category to the next glyph in decomp.AllGlyphs.
func (c *ShapeController) Cycle(header, category string) {
	cur := slices.Index(decomp.AllGlyphs, c.Glyph(header, category))
	next := decomp.AllGlyphs[(cur+1)%len(decomp.AllGlyphs)]
	for _, v := range c.views {
		v.SetGlyph(header, category, next)
	}
}
