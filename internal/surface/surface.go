// Package surface implements the shared drawing surface that every scene view
// renders into. It is a grid of terminal cells with a current viewport: all
// drawing calls use viewport-local coordinates and are clipped to it.
package surface

import (
	"strings"

	"ordview/internal/geom"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one character cell. An empty Color means the default foreground.
type Cell struct {
	Ch    rune
	Color string
}

var blank = Cell{Ch: ' '}

// Surface is a resizable cell canvas. It is not safe for concurrent use.
type Surface struct {
	width, height int
	cells         []Cell
	viewport      geom.Rect
	background    string
	clears        int
}

// New returns a surface of the given size with the viewport covering it.
func New(width, height int) *Surface {
	s := &Surface{}
	s.SetSize(width, height)
	return s
}

// SetBackground sets the background color used by String. Empty disables it.
func (s *Surface) SetBackground(color string) {
	s.background = color
}

// SetSize reallocates the cell grid. Contents are discarded and the viewport
// is reset to the full surface.
func (s *Surface) SetSize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width == s.width && height == s.height && s.cells != nil {
		s.viewport = s.Bounds()
		return
	}
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	for i := range s.cells {
		s.cells[i] = blank
	}
	s.viewport = s.Bounds()
}

// Size returns the surface dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Bounds returns the full surface rect.
func (s *Surface) Bounds() geom.Rect {
	return geom.Rect{W: s.width, H: s.height}
}

// SetViewport sets the region drawing calls are mapped into, clipped to the
// surface bounds.
func (s *Surface) SetViewport(r geom.Rect) {
	s.viewport = s.Bounds().Intersect(r)
	if s.viewport.Empty() {
		// Keep the origin so local coordinates stay meaningful.
		s.viewport = geom.Rect{X: r.X, Y: r.Y}
	}
}

// Viewport returns the current viewport.
func (s *Surface) Viewport() geom.Rect {
	return s.viewport
}

// Clear blanks every cell inside the current viewport.
func (s *Surface) Clear() {
	s.clears++
	v := s.viewport
	for y := v.Y; y < v.Bottom(); y++ {
		for x := v.X; x < v.Right(); x++ {
			s.cells[y*s.width+x] = blank
		}
	}
}

// Clears returns how many times Clear has been called.
func (s *Surface) Clears() int {
	return s.clears
}

// Set writes a cell at viewport-local (x, y). Writes outside the viewport
// are dropped and report false.
func (s *Surface) Set(x, y int, ch rune, color string) bool {
	ax, ay := s.viewport.X+x, s.viewport.Y+y
	if x < 0 || y < 0 || !s.viewport.Contains(ax, ay) {
		return false
	}
	s.cells[ay*s.width+ax] = Cell{Ch: ch, Color: color}
	return true
}

// At returns the cell at absolute surface coordinates.
func (s *Surface) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return blank
	}
	return s.cells[y*s.width+x]
}

// String renders the surface row by row, styling runs of equal color.
func (s *Surface) String() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := s.cells[y*s.width : (y+1)*s.width]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Color == row[start].Color {
				continue
			}
			b.WriteString(s.renderRun(row[start:x]))
			start = x
		}
	}
	return b.String()
}

func (s *Surface) renderRun(run []Cell) string {
	if len(run) == 0 {
		return ""
	}
	runes := make([]rune, len(run))
	for i, c := range run {
		runes[i] = c.Ch
	}
	text := string(runes)
	if run[0].Color == "" && s.background == "" {
		return text
	}
	style := lipgloss.NewStyle()
	if run[0].Color != "" {
		style = style.Foreground(lipgloss.Color(run[0].Color))
	}
	if s.background != "" {
		style = style.Background(lipgloss.Color(s.background))
	}
	return style.Render(text)
}

// Plain returns the surface text without styling, one line per row.
func (s *Surface) Plain() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < s.width; x++ {
			b.WriteRune(s.cells[y*s.width+x].Ch)
		}
	}
	return b.String()
}
