package ui

import (
	"errors"
	"fmt"

	"ordview/internal/attr"
	"ordview/internal/decomp"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateControllerKey is returned when a kind is registered twice.
	ErrDuplicateControllerKey = errors.New("duplicate controller key")
	// ErrNoSuchTab is returned when activating a tab index that does not exist.
	ErrNoSuchTab = errors.New("no such tab")
)

// Registry tracks the attribute controllers shown in the menu, one per kind,
// together with their panels and tabs. A present kind always has exactly
// one panel and one tab.
type Registry struct {
	controllers map[attr.Kind]attr.Controller
	kinds       []attr.Kind // registration order, parallel to tabs
	tabs        []Tab
	panels      map[string]*Panel
	active      int

	menuWidth    int
	menuHeight   int
	tabBarHeight int

	newID func() string
}

// NewRegistry returns an empty registry with no active tab.
func NewRegistry() *Registry {
	return &Registry{
		controllers: make(map[attr.Kind]attr.Controller),
		panels:      make(map[string]*Panel),
		active:      -1,
		newID:       func() string { return "panel-" + uuid.NewString() },
	}
}

// SetMenu records the menu geometry used to size new panels. Visible panels
// take the menu width; hidden ones keep the width they last had, like a
// layout engine that skips invisible elements.
func (r *Registry) SetMenu(width, height, tabBarHeight int) {
	r.menuWidth = width
	r.menuHeight = height
	r.tabBarHeight = tabBarHeight
	for _, p := range r.panels {
		if p.Visible {
			p.Width = width
		}
	}
}

// Register builds the controller for kind with factory, bound to views, in a
// freshly named panel, and appends its tab. Nothing is stored when the kind
// is already present or the factory fails.
func (r *Registry) Register(kind attr.Kind, factory attr.Factory, views decomp.Dict) (attr.Controller, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("register %d: %w", int(kind), attr.ErrUnknownKind)
	}
	if _, ok := r.controllers[kind]; ok {
		return nil, fmt.Errorf("register %s: %w", kind, ErrDuplicateControllerKey)
	}
	if factory == nil {
		return nil, fmt.Errorf("register %s: nil factory", kind)
	}

	panel := &Panel{
		ID:     r.newID(),
		Height: max(r.menuHeight-r.tabBarHeight, 0),
	}
	c, err := factory(panel.ID, views)
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", kind, err)
	}
	if c == nil {
		return nil, fmt.Errorf("register %s: factory returned no controller", kind)
	}

	// The controller may pick its own identifier; the panel follows it.
	panel.ID = c.Identifier()
	if _, taken := r.panels[panel.ID]; taken {
		return nil, fmt.Errorf("register %s: panel %q already exists", kind, panel.ID)
	}
	panel.Controller = c

	r.panels[panel.ID] = panel
	r.tabs = append(r.tabs, Tab{Label: c.Title(), Target: c.Identifier()})
	r.kinds = append(r.kinds, kind)
	r.controllers[kind] = c
	return c, nil
}

// ResizeAll gives every present controller the supplied height and its
// panel's current width.
func (r *Registry) ResizeAll(height int) {
	for _, kind := range r.kinds {
		c := r.controllers[kind]
		if c == nil {
			continue
		}
		p := r.panels[c.Identifier()]
		if p == nil {
			continue
		}
		p.Height = height
		c.Resize(p.Width, p.Height)
	}
}

// Activate marks tab i as the visible one. Its panel takes the menu width
// immediately; controllers are resized by the caller's next layout pass.
func (r *Registry) Activate(i int) error {
	if i < 0 || i >= len(r.tabs) {
		return fmt.Errorf("activate tab %d of %d: %w", i, len(r.tabs), ErrNoSuchTab)
	}
	r.active = i
	p := r.panels[r.tabs[i].Target]
	p.Visible = true
	p.Width = r.menuWidth
	return nil
}

// Get returns the controller registered for kind.
func (r *Registry) Get(kind attr.Kind) (attr.Controller, bool) {
	c, ok := r.controllers[kind]
	return c, ok
}

// Panel returns the panel with the given id, or nil.
func (r *Registry) Panel(id string) *Panel {
	return r.panels[id]
}

// Tabs returns the tab list in registration order. The slice must not be modified.
func (r *Registry) Tabs() []Tab {
	return r.tabs
}

// Len returns the number of registered controllers.
func (r *Registry) Len() int {
	return len(r.controllers)
}

// Active returns the active tab index, or -1 before any activation.
func (r *Registry) Active() int {
	return r.active
}

// ActivePanel returns the panel of the active tab, or nil.
func (r *Registry) ActivePanel() *Panel {
	if r.active < 0 {
		return nil
	}
	return r.panels[r.tabs[r.active].Target]
}
