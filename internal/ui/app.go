package ui

import (
	"fmt"
	"log"
	"time"

	"ordview/internal/attr"
	"ordview/internal/scene"
	"ordview/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusLines is the height reserved under the layout for the status line.
const statusLines = 1

const (
	orbitStep = 0.15
	zoomStep  = 1.2
)

// App is the root model: it feeds host events into the Controller and
// drives its render clock.
type App struct {
	Controller *Controller
	KeyHandler *KeyHandler
	Area       Area
	ViewFocus  FocusRing
	TabFocus   FocusRing
	Overlays   OverlayStack

	err      error
	frameErr error
	width    int
}

// Ensure App can be used as tea.Model via adapter.
var _ tea.Model = (*appAdapter)(nil)

// appAdapter wraps App to implement tea.Model.
type appAdapter struct {
	*App
}

// NewApp wires the default keybindings around c.
func NewApp(c *Controller) *App {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("tab", msgCmd(NextTabMsg{}), "Next tab")
	reg.BindWithDesc("shift+tab", msgCmd(PrevTabMsg{}), "Previous tab")
	reg.BindWithDesc("SPC v a", msgCmd(AddViewMsg{}), "Add view")
	reg.BindWithDesc("SPC v r", msgCmd(ResetCameraMsg{}), "Reset cameras")
	reg.BindWithDesc("SPC v n", msgCmd(NextViewMsg{}), "Next view")
	reg.BindWithDesc("SPC f", msgCmd(ToggleAreaMsg{}), "Focus plot/menu")
	reg.BindWithDesc("?", msgCmd(ShowHelpMsg{}), "Keybindings")
	plot := []Area{AreaPlot}
	reg.BindForArea("left", msgCmd(OrbitMsg{DYaw: -orbitStep}), "Orbit left", plot)
	reg.BindForArea("right", msgCmd(OrbitMsg{DYaw: orbitStep}), "Orbit right", plot)
	reg.BindForArea("up", msgCmd(OrbitMsg{DPitch: orbitStep}), "Orbit up", plot)
	reg.BindForArea("down", msgCmd(OrbitMsg{DPitch: -orbitStep}), "Orbit down", plot)
	reg.BindForArea("+", msgCmd(ZoomMsg{Factor: zoomStep}), "Zoom in", plot)
	reg.BindForArea("-", msgCmd(ZoomMsg{Factor: 1 / zoomStep}), "Zoom out", plot)

	a := &App{
		Controller: c,
		KeyHandler: NewKeyHandler(reg),
		Area:       AreaPlot,
		ViewFocus:  FocusRing{Count: len(c.Views())},
		TabFocus:   FocusRing{Count: len(c.Registry().Tabs()), Current: c.Registry().Active()},
	}
	a.TabFocus.OnChange = func(_, to int) {
		a.setErr(a.Controller.ActivateTab(to))
	}
	return a
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *App) AsTeaModel() tea.Model {
	return &appAdapter{App: a}
}

// Err returns the error shown in the status line: the last failed
// operation, else the last frame's render error.
func (a *App) Err() error {
	if a.err != nil {
		return a.err
	}
	return a.frameErr
}

func (a *App) setErr(err error) {
	if err != nil {
		log.Printf("ui: %v", err)
	}
	a.err = err
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.Controller.Config().FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init implements tea.Model.
func (a *appAdapter) Init() tea.Cmd {
	return a.tick()
}

// Update implements tea.Model.
func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.setErr(a.Controller.Resize(msg.Width, max(msg.Height-statusLines, 0)))
		return a, nil
	case frameMsg:
		a.frameErr = a.Controller.Render()
		if a.frameErr != nil {
			log.Printf("ui: %v", a.frameErr)
		}
		return a, a.tick()
	case AddViewMsg:
		if err := a.Controller.AddView(); err != nil {
			a.setErr(err)
			return a, nil
		}
		a.ViewFocus.Count = len(a.Controller.Views())
		a.ViewFocus.SetFocus(a.ViewFocus.Count - 1)
		a.err = nil
		return a, nil
	case NextViewMsg:
		a.ViewFocus.Next()
		return a, nil
	case ResetCameraMsg:
		for _, v := range a.Controller.Views() {
			if pv, ok := v.(*scene.PlotView); ok {
				pv.Reset()
			}
		}
		return a, nil
	case OrbitMsg:
		if pv := a.focusedPlot(); pv != nil {
			pv.Camera.Orbit(msg.DYaw, msg.DPitch)
		}
		return a, nil
	case ZoomMsg:
		if pv := a.focusedPlot(); pv != nil {
			pv.Camera.Scale(msg.Factor)
		}
		return a, nil
	case NextTabMsg:
		a.syncTabs()
		a.TabFocus.Next()
		a.Area = AreaMenu
		return a, nil
	case PrevTabMsg:
		a.syncTabs()
		a.TabFocus.Prev()
		a.Area = AreaMenu
		return a, nil
	case ToggleAreaMsg:
		if a.Area == AreaPlot {
			a.Area = AreaMenu
		} else {
			a.Area = AreaPlot
		}
		return a, nil
	case ShowHelpMsg:
		reg, area := a.KeyHandler.Registry, a.Area
		a.Overlays.Push(Overlay{
			Title:   "Keybindings · " + area.String(),
			Dismiss: "esc",
			Render: func(width, _ int) string {
				return RenderKeybindList(reg, area, width)
			},
		})
		return a, nil
	case tea.KeyMsg:
		if top, ok := a.Overlays.Peek(); ok {
			switch {
			case msg.String() == "ctrl+c":
				return a, tea.Quit
			case top.IsDismissKey(msg.String()):
				a.Overlays.Pop()
			}
			return a, nil
		}
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Area); consumed {
			return a, cmd
		}
		if a.Area == AreaMenu {
			if p := a.Controller.Registry().ActivePanel(); p != nil {
				if body, ok := p.Controller.(attr.Panel); ok {
					return a, body.Update(msg)
				}
			}
		}
	}
	return a, nil
}

// syncTabs picks up tabs registered after the app was built.
func (a *App) syncTabs() {
	a.TabFocus.Count = len(a.Controller.Registry().Tabs())
	a.TabFocus.Current = a.Controller.Registry().Active()
}

func (a *App) focusedPlot() *scene.PlotView {
	v := a.Controller.Views()
	if a.ViewFocus.Current < 0 || a.ViewFocus.Current >= len(v) {
		return nil
	}
	pv, _ := v[a.ViewFocus.Current].(*scene.PlotView)
	return pv
}

// View implements tea.Model.
func (a *appAdapter) View() string {
	body := a.Controller.Compose()
	if top, ok := a.Overlays.Peek(); ok {
		w, h := a.Controller.Size()
		body = top.View(w, h)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusLine())
}

func (a *App) statusLine() string {
	if help := RenderKeybindHelp(a.KeyHandler, a.Area, a.width); help != "" {
		return help
	}
	if err := a.Err(); err != nil {
		return Styles.Error.Render(textutil.PadRightVisual(err.Error(), a.width))
	}
	line := fmt.Sprintf("view %d/%d · %s · SPC commands · tab panels · q quit",
		a.ViewFocus.Current+1, len(a.Controller.Views()), a.Area)
	return Styles.Hint.Render(textutil.PadRightVisual(line, a.width))
}
