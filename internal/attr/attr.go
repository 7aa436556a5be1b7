// Package attr provides attribute controllers: tab panels that edit one
// presentation property (color, visibility, shape) of the samples in a
// shared decomposition dictionary.
package attr

import (
	"errors"
	"fmt"

	"ordview/internal/decomp"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnknownKind is returned for a controller kind outside the closed set.
var ErrUnknownKind = errors.New("unknown controller kind")

// Controller is the contract the layout needs from a tab panel.
type Controller interface {
	Identifier() string
	Title() string
	Resize(width, height int)
}

// Panel is a Controller that can also draw itself and take keys.
type Panel interface {
	Controller
	View() string
	Update(msg tea.KeyMsg) tea.Cmd
}

// Factory builds a controller inside the container with the given id.
type Factory func(containerID string, views decomp.Dict) (Controller, error)

// Kind names a controller slot.
type Kind int

const (
	KindColor Kind = iota
	KindVisibility
	KindShape
)

// Kinds lists every kind in tab order.
var Kinds = []Kind{KindColor, KindVisibility, KindShape}

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindVisibility:
		return "visibility"
	case KindShape:
		return "shape"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	return k >= KindColor && k <= KindShape
}

// ParseKind maps a name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("parse kind %q: %w", s, ErrUnknownKind)
}

// DefaultFactory returns the built-in constructor for k.
func DefaultFactory(k Kind) (Factory, error) {
	switch k {
	case KindColor:
		return NewColorController, nil
	case KindVisibility:
		return NewVisibilityController, nil
	case KindShape:
		return NewShapeController, nil
	default:
		return nil, fmt.Errorf("factory for %d: %w", int(k), ErrUnknownKind)
	}
}
