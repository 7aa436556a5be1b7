package ui

import "github.com/charmbracelet/lipgloss"

// Overlay is a popup drawn over the layout until its dismiss key is pressed.
type Overlay struct {
	Title   string
	Render  func(width, height int) string
	Dismiss string // Key that dismisses (e.g. "esc")
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// View renders the overlay body boxed and centered in a width x height area.
func (o *Overlay) View(width, height int) string {
	innerW := max(width-4, 0)
	innerH := max(height-4, 0)
	body := ""
	if o.Render != nil {
		body = o.Render(innerW, max(innerH-1, 0))
	}
	box := Styles.Overlay.Width(innerW).MaxHeight(height).Render(
		lipgloss.JoinVertical(lipgloss.Left, Styles.Title.Render(o.Title), body))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}
