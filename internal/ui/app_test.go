package ui

import (
	"errors"
	"testing"

	"ordview/internal/attr"
	"ordview/internal/decomp"
	"ordview/internal/scene"
	"ordview/internal/surface"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, tea.Model) {
	t.Helper()
	c, err := NewController(DefaultConfig(), decomp.Demo())
	require.NoError(t, err)
	require.NoError(t, c.RegisterDefaultTabs())
	a := NewApp(c)
	return a, a.AsTeaModel()
}

func TestApp_WindowSizeReservesStatusLine(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 41})

	w, h := a.Controller.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)

	view := m.View()
	assert.Equal(t, 41, lipgloss.Height(view))
}

func TestApp_FrameRendersAndReschedules(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	_, cmd := m.Update(frameMsg{})
	assert.NotNil(t, cmd, "next tick is scheduled")
	assert.Equal(t, 1, a.Controller.Frames())
	assert.Contains(t, a.Controller.Surface().Plain(), string(rune(decomp.GlyphSphere)))
}

func TestApp_AddViewUntilLimit(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	for i := 0; i < 3; i++ {
		m.Update(AddViewMsg{})
		require.NoError(t, a.Err())
	}
	assert.Len(t, a.Controller.Views(), 4)
	assert.Equal(t, 3, a.ViewFocus.Current, "focus follows the new view")

	m.Update(AddViewMsg{})
	assert.ErrorIs(t, a.Err(), ErrViewLimitExceeded)
	assert.Len(t, a.Controller.Views(), 4)
	assert.Contains(t, m.View(), "view limit exceeded")
}

func TestApp_LeaderAddsView(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(keyMsg(" "))
	m.Update(keyMsg("v"))
	_, cmd := m.Update(keyMsg("a"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Len(t, a.Controller.Views(), 2)
}

func TestApp_TabCyclesAndActivates(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 0, a.Controller.Registry().Active())

	_, cmd := m.Update(keyMsg("tab"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 1, a.Controller.Registry().Active())
	assert.Equal(t, AreaMenu, a.Area)

	vis, ok := a.Controller.Registry().Get(attr.KindVisibility)
	require.True(t, ok)
	p := a.Controller.Registry().Panel(vis.Identifier())
	assert.Equal(t, 40, p.Width, "activated panel gets the menu width")

	m.Update(PrevTabMsg{})
	assert.Equal(t, 0, a.Controller.Registry().Active())
}

func TestApp_MenuKeysReachActiveController(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(ToggleAreaMsg{})
	require.Equal(t, AreaMenu, a.Area)

	// Visibility tab, first category of the first column.
	m.Update(NextTabMsg{})
	vis, _ := a.Controller.Registry().Get(attr.KindVisibility)
	vc := vis.(*attr.VisibilityController)
	header := vc.Header()
	cat := vc.Categories()[0]
	require.True(t, vc.Visible(header, cat))

	m.Update(keyMsg("enter"))
	assert.False(t, vc.Visible(header, cat))
}

func TestApp_OrbitAndZoomFocusedView(t *testing.T) {
	a, m := newTestApp(t)
	pv := a.Controller.Views()[0].(*scene.PlotView)
	before := pv.Camera

	_, cmd := m.Update(keyMsg("left"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Less(t, pv.Camera.Yaw, before.Yaw)

	m.Update(ZoomMsg{Factor: 2})
	assert.InDelta(t, 2, pv.Camera.Zoom, 1e-6)

	m.Update(ResetCameraMsg{})
	assert.Equal(t, scene.DefaultCamera(), pv.Camera)
}

func TestApp_QuitKeys(t *testing.T) {
	_, m := newTestApp(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestApp_HelpOverlay(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 31})

	_, cmd := m.Update(keyMsg("?"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.Equal(t, 1, a.Overlays.Len())

	view := m.View()
	assert.Contains(t, view, "Keybindings")
	assert.Contains(t, view, "Orbit left", "plot bindings are listed from the plot")
	assert.Equal(t, 31, lipgloss.Height(view))

	// Keys other than the dismiss key are swallowed.
	before := a.Controller.Views()[0].(*scene.PlotView).Camera
	m.Update(keyMsg("left"))
	assert.Equal(t, before, a.Controller.Views()[0].(*scene.PlotView).Camera)

	m.Update(keyMsg("esc"))
	assert.Equal(t, 0, a.Overlays.Len())
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Peek()
	assert.False(t, ok)

	s.Push(Overlay{Title: "a", Dismiss: "esc"})
	s.Push(Overlay{Title: "b", Dismiss: "q"})
	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", top.Title)
	assert.True(t, top.IsDismissKey("q"))
	assert.False(t, top.IsDismissKey("esc"))

	top, _ = s.Pop()
	assert.Equal(t, "b", top.Title)
	assert.Equal(t, 1, s.Len())
	s.Pop()
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestKeybindRegistry_Described(t *testing.T) {
	r := NewKeybindRegistry()
	r.BindWithDesc("q", tea.Quit, "Quit")
	r.Bind("x", tea.Quit)
	r.BindForArea("left", tea.Quit, "Orbit", []Area{AreaPlot})

	assert.Equal(t, []string{"left", "q"}, r.Described(AreaPlot))
	assert.Equal(t, []string{"q"}, r.Described(AreaMenu))
	assert.Equal(t, "Orbit", r.Description("left"))
}

func TestApp_FrameErrorClearsOnRecovery(t *testing.T) {
	var view *fakeView
	c, err := NewController(DefaultConfig(), decomp.Dict{}, WithViewFactory(func(*surface.Surface, decomp.Dict) SceneView {
		view = &fakeView{err: errors.New("boom")}
		return view
	}))
	require.NoError(t, err)
	a := NewApp(c)
	m := a.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(frameMsg{})
	require.Error(t, a.Err())
	assert.Contains(t, m.View(), "boom")

	view.err = nil
	m.Update(frameMsg{})
	assert.NoError(t, a.Err())
	assert.NotContains(t, m.View(), "boom")
}

func TestApp_OperationErrorOutlivesFrames(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	for i := 0; i < 4; i++ {
		m.Update(AddViewMsg{})
	}
	require.ErrorIs(t, a.Err(), ErrViewLimitExceeded)

	m.Update(frameMsg{})
	assert.ErrorIs(t, a.Err(), ErrViewLimitExceeded)
}
