package ui

import (
	"ordview/internal/attr"
	"ordview/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Compose renders the plotting area and the menu side by side at the size of
// the last Resize.
func (c *Controller) Compose() string {
	plot := textutil.Block(c.surface.String(), c.plot.W, c.plot.H)
	menu := textutil.Block(c.composeMenu(), c.menu.W, c.menu.H)
	switch {
	case plot == "":
		return menu
	case menu == "":
		return plot
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, plot, menu)
}

func (c *Controller) composeMenu() string {
	tabs := c.registry.Tabs()
	if len(tabs) == 0 {
		return Styles.Empty.Render("no controllers")
	}
	bar := RenderTabBar(tabs, c.registry.Active(), c.menu.W)
	p := c.registry.ActivePanel()
	if p == nil {
		return bar + "\n" + Styles.Empty.Render("press tab to open a panel")
	}
	body, ok := p.Controller.(attr.Panel)
	if !ok {
		return bar + "\n" + Styles.Title.Render(p.Controller.Title())
	}
	return bar + "\n" + textutil.Block(body.View(), p.Width, max(p.Height, 1))
}
