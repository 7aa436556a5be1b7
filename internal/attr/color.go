package attr

import (
	"ordview/internal/decomp"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	paletteChroma    = 0.6
	paletteLuminance = 0.7
)

// ColorController colors samples by category with an evenly spaced HCL
// palette. Enter on a category rotates the whole palette.
type ColorController struct {
	*categoryTable
	offset float64
}

var _ Panel = (*ColorController)(nil)

// NewColorController is the Factory for KindColor.
func NewColorController(containerID string, views decomp.Dict) (Controller, error) {
	c := &ColorController{
		categoryTable: newCategoryTable(KindColor.String()+"-"+containerID, "Color", "Color", views),
	}
	c.value = c.colorOf
	c.apply = func(string, string) { c.Rotate() }
	c.switched = c.recolor
	c.recolor()
	c.refresh()
	return c, nil
}

// Palette returns n evenly spaced colors starting at hue offset.
func Palette(n int, offset float64) []string {
	out := make([]string, n)
	for i := range out {
		h := offset + float64(i)*360/float64(n)
		for h >= 360 {
			h -= 360
		}
		out[i] = colorful.Hcl(h, paletteChroma, paletteLuminance).Clamped().Hex()
	}
	return out
}

// Rotate shifts the palette by half a step and recolors every sample.
func (c *ColorController) Rotate() {
	n := len(c.Categories())
	if n == 0 {
		return
	}
	c.offset += 180 / float64(n)
	for c.offset >= 360 {
		c.offset -= 360
	}
	c.recolor()
	c.refresh()
}

func (c *ColorController) recolor() {
	header := c.Header()
	cats := c.Categories()
	palette := Palette(len(cats), c.offset)
	for i, cat := range cats {
		for _, v := range c.views {
			v.SetColor(header, cat, palette[i])
		}
	}
}

func (c *ColorController) colorOf(header, category string) string {
	v, i := c.views.Lookup(header, category)
	if v == nil {
		return ""
	}
	return v.Colors[i]
}
