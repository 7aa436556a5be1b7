package surface

import (
	"strings"
	"testing"

	"ordview/internal/geom"

	"github.com/stretchr/testify/assert"
)

func TestSurface_SetClipsToViewport(t *testing.T) {
	s := New(10, 4)
	s.SetViewport(geom.Rect{X: 5, Y: 0, W: 5, H: 2})

	assert.True(t, s.Set(0, 0, 'a', ""))
	assert.True(t, s.Set(4, 1, 'b', ""))
	assert.False(t, s.Set(5, 0, 'c', ""), "x past viewport width")
	assert.False(t, s.Set(0, 2, 'd', ""), "y past viewport height")
	assert.False(t, s.Set(-1, 0, 'e', ""))

	assert.Equal(t, 'a', s.At(5, 0).Ch)
	assert.Equal(t, 'b', s.At(9, 1).Ch)
	assert.Equal(t, ' ', s.At(0, 2).Ch)
}

func TestSurface_ViewportClippedToBounds(t *testing.T) {
	s := New(4, 4)
	s.SetViewport(geom.Rect{X: 2, Y: 2, W: 10, H: 10})
	assert.Equal(t, geom.Rect{X: 2, Y: 2, W: 2, H: 2}, s.Viewport())
}

func TestSurface_ClearOnlyViewport(t *testing.T) {
	s := New(4, 1)
	for x := 0; x < 4; x++ {
		s.Set(x, 0, '#', "")
	}
	s.SetViewport(geom.Rect{X: 0, Y: 0, W: 2, H: 1})
	s.Clear()

	assert.Equal(t, "  ##", s.Plain())
	assert.Equal(t, 1, s.Clears())
}

func TestSurface_SetSizeResetsViewport(t *testing.T) {
	s := New(4, 4)
	s.SetViewport(geom.Rect{X: 1, Y: 1, W: 1, H: 1})
	s.SetSize(6, 3)

	assert.Equal(t, geom.Rect{W: 6, H: 3}, s.Viewport())
	w, h := s.Size()
	assert.Equal(t, 6, w)
	assert.Equal(t, 3, h)
	assert.Len(t, strings.Split(s.Plain(), "\n"), 3)
}

func TestSurface_StringContainsGlyphs(t *testing.T) {
	s := New(3, 1)
	s.Set(1, 0, '●', "#ff0000")
	assert.Contains(t, s.String(), "●")
}

func TestSurface_ZeroSize(t *testing.T) {
	s := New(0, 0)
	s.Clear()
	assert.False(t, s.Set(0, 0, 'x', ""))
	assert.Equal(t, "", s.Plain())
}
