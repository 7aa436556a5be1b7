package ui

import "time"

// frameMsg is one tick of the render clock.
type frameMsg time.Time

// AddViewMsg adds a scene view (SPC v a).
type AddViewMsg struct{}

// ResetCameraMsg restores the default camera of every view (SPC v r).
type ResetCameraMsg struct{}

// NextViewMsg moves camera focus to the next scene view (SPC v n).
type NextViewMsg struct{}

// NextTabMsg activates the next tab (tab).
type NextTabMsg struct{}

// PrevTabMsg activates the previous tab (shift+tab).
type PrevTabMsg struct{}

// ToggleAreaMsg moves key focus between the plot and the menu (SPC f).
type ToggleAreaMsg struct{}

// OrbitMsg rotates the focused view's camera, in radians.
type OrbitMsg struct {
	DYaw, DPitch float32
}

// ZoomMsg scales the focused view's camera.
type ZoomMsg struct {
	Factor float32
}

// ShowHelpMsg opens the keybinding overlay (?).
type ShowHelpMsg struct{}
