// Package ui composes the viewer screen with Bubble Tea.
//
// Core pieces:
//   - Controller: owns the plotting area and the menu, and runs the resize
//     cascade (scene view layout, then controller panels)
//   - ViewSet: the ordered, bounded set of scene views
//   - Registry: attribute controllers keyed by kind, with their panels and tabs
//   - RenderLoop: clears the shared surface once and renders every view
//   - App: the tea.Model that feeds window, clock and key events to the Controller
//   - KeybindRegistry/KeyHandler: leader-key (SPC) bindings, filtered by Area
//   - OverlayStack: popups such as the keybinding listing (?)
package ui
