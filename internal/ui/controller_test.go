package ui

import (
	"errors"
	"testing"

	"ordview/internal/attr"
	"ordview/internal/geom"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController_StartsWithOneView(t *testing.T) {
	c, views := newTestController(t, DefaultConfig())
	require.Len(t, c.Views(), 1)
	require.Len(t, *views, 1)
	assert.Equal(t, 1, (*views)[0].resizes, "first view is laid out on creation")
}

func TestNewController_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridScale = 0
	_, err := NewController(cfg, nil)
	assert.Error(t, err)
}

func TestController_ResizeSplitsPlotAndMenu(t *testing.T) {
	c, views := newTestController(t, DefaultConfig())
	require.NoError(t, c.Resize(120, 60))

	assert.Equal(t, geom.Rect{W: 80, H: 60}, c.PlotArea())
	assert.Equal(t, geom.Rect{X: 80, W: 40, H: 60}, c.MenuArea())
	assert.Equal(t, geom.Rect{W: 80, H: 60}, (*views)[0].rect)

	w, h := c.Surface().Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 60, h)
}

func TestController_NarrowHostGivesMenuEverything(t *testing.T) {
	c, views := newTestController(t, DefaultConfig())
	require.NoError(t, c.Resize(30, 10))
	assert.Equal(t, 0, c.PlotArea().W)
	assert.Equal(t, 30, c.MenuArea().W)
	assert.True(t, (*views)[0].rect.Empty())
}

func TestController_ResizeRejectsNegative(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())
	assert.ErrorIs(t, c.Resize(-1, 10), geom.ErrInvalidSize)
	assert.ErrorIs(t, c.Resize(10, -1), geom.ErrInvalidSize)
}

func TestController_AddViewRelayouts(t *testing.T) {
	c, views := newTestController(t, DefaultConfig())
	require.NoError(t, c.Resize(120, 60))
	require.NoError(t, c.AddView())
	require.NoError(t, c.AddView())

	want := []geom.Rect{
		{X: 0, Y: 0, W: 40, H: 30},
		{X: 40, Y: 0, W: 40, H: 30},
		{X: 0, Y: 30, W: 80, H: 30},
	}
	require.Len(t, *views, 3)
	for i, v := range *views {
		assert.Equal(t, want[i], v.rect, "view %d", i)
	}
	assert.Equal(t, want, c.Viewports())
}

func TestController_AddViewLimit(t *testing.T) {
	c, views := newTestController(t, DefaultConfig())
	require.NoError(t, c.Resize(100, 50))
	for i := 0; i < 3; i++ {
		require.NoError(t, c.AddView())
	}
	require.Len(t, c.Views(), 4)

	err := c.AddView()
	assert.ErrorIs(t, err, ErrViewLimitExceeded)
	assert.Len(t, c.Views(), 4)
	assert.Len(t, *views, 4, "no view is built past the limit")
}

func TestController_ConfiguredLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxViews = 2
	c, _ := newTestController(t, cfg)
	require.NoError(t, c.AddView())
	assert.ErrorIs(t, c.AddView(), ErrViewLimitExceeded)
}

func TestController_PanelHeightSubtractsTabBar(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())
	_, err := c.RegisterControllerTab(attr.KindColor, fakeFactory("Color"))
	require.NoError(t, err)
	_, err = c.RegisterControllerTab(attr.KindVisibility, fakeFactory("Visibility"))
	require.NoError(t, err)
	require.NoError(t, c.Resize(120, 60))

	bar := TabBarHeight(c.Registry().Tabs(), 40)
	assert.Equal(t, 2, bar, "one row of tabs plus the rule")
	height := 60
	assert.Equal(t, int(float64(height)*c.Config().GridScale)-bar, c.PanelHeight())
	assert.Equal(t, 58-bar, c.PanelHeight())
}

func TestController_ActivationGivesHiddenPanelsWidth(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())
	color, err := c.RegisterControllerTab(attr.KindColor, fakeFactory("Color"))
	require.NoError(t, err)
	vis, err := c.RegisterControllerTab(attr.KindVisibility, fakeFactory("Visibility"))
	require.NoError(t, err)
	require.NoError(t, c.Resize(120, 60))

	fc := color.(*fakeController)
	fv := vis.(*fakeController)
	assert.Equal(t, 0, fc.w, "inert until activated")

	require.NoError(t, c.ActivateTab(0))
	assert.Equal(t, 40, fc.w)
	assert.Equal(t, c.PanelHeight(), fc.h)
	assert.Equal(t, 0, fv.w)

	require.NoError(t, c.ActivateTab(1))
	assert.Equal(t, 40, fv.w)

	assert.ErrorIs(t, c.ActivateTab(5), ErrNoSuchTab)
}

func TestController_ResizeIdempotent(t *testing.T) {
	c, views := newTestController(t, DefaultConfig())
	require.NoError(t, c.AddView())
	require.NoError(t, c.AddView())
	ctrl, err := c.RegisterControllerTab(attr.KindColor, fakeFactory("Color"))
	require.NoError(t, err)
	require.NoError(t, c.ActivateTab(0))

	snapshot := func() ([]geom.Rect, [2]int) {
		var rects []geom.Rect
		for _, v := range *views {
			rects = append(rects, v.rect)
		}
		fc := ctrl.(*fakeController)
		return rects, [2]int{fc.w, fc.h}
	}

	require.NoError(t, c.Resize(133, 47))
	r1, d1 := snapshot()
	require.NoError(t, c.Resize(133, 47))
	r2, d2 := snapshot()

	assert.Equal(t, r1, r2)
	assert.Equal(t, d1, d2)
}

func TestController_RenderClearsOnceInOrder(t *testing.T) {
	c, views := newTestController(t, DefaultConfig())
	require.NoError(t, c.AddView())
	require.NoError(t, c.AddView())
	require.NoError(t, c.Resize(100, 40))

	var order []string
	for i, v := range *views {
		v.name = string(rune('a' + i))
		v.log = &order
	}
	clears := c.Surface().Clears()

	require.NoError(t, c.Render())
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, clears+1, c.Surface().Clears())
	assert.Equal(t, 1, c.Frames())
}

func TestController_RenderErrorAbortsFrame(t *testing.T) {
	c, views := newTestController(t, DefaultConfig())
	require.NoError(t, c.AddView())
	require.NoError(t, c.AddView())
	boom := errors.New("boom")
	(*views)[1].err = boom

	err := c.Render()
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "view 1")
	assert.Equal(t, 1, (*views)[0].renders)
	assert.Equal(t, 1, (*views)[1].renders)
	assert.Equal(t, 0, (*views)[2].renders, "later views are skipped")
	assert.Equal(t, 0, c.Frames())
}

func TestController_RenderNotReentrant(t *testing.T) {
	c, views := newTestController(t, DefaultConfig())
	var inner error
	(*views)[0].onRender = func() { inner = c.Render() }

	require.NoError(t, c.Render())
	assert.ErrorIs(t, inner, ErrRenderInProgress)
}

func TestController_ComposeFillsHost(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())
	require.NoError(t, c.RegisterDefaultTabs())
	require.NoError(t, c.Resize(100, 30))
	require.NoError(t, c.Render())

	out := c.Compose()
	assert.Equal(t, 30, lipgloss.Height(out))
	assert.Equal(t, 100, lipgloss.Width(out))
	assert.Contains(t, out, "Color")
}

func TestController_RegisterDefaultTabs(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig())
	require.NoError(t, c.RegisterDefaultTabs())
	assert.Equal(t, len(attr.Kinds), c.Registry().Len())
	assert.Equal(t, 0, c.Registry().Active())
	assert.ErrorIs(t, c.RegisterDefaultTabs(), ErrDuplicateControllerKey)
}
