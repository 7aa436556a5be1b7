package ui

import "ordview/internal/attr"

// Panel is the container a controller lives in inside the menu. Width is
// set by the layout from the menu width; Height by the resize cascade.
type Panel struct {
	ID         string
	Controller attr.Controller
	Width      int
	Height     int
	// Visible is false until the panel's tab has been activated once.
	Visible bool
}

// Tab is one entry of the tab bar: its label and the panel it shows.
type Tab struct {
	Label  string
	Target string
}
