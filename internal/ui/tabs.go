package ui

import (
	"strings"

	"ordview/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const tabGap = " "

// RenderTabBar lays tab labels left to right, wrapping to a new line when a
// label would overflow width, and closes the bar with a rule. Returns "" for
// no tabs or no width.
func RenderTabBar(tabs []Tab, active, width int) string {
	if len(tabs) == 0 || width <= 0 {
		return ""
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for i, t := range tabs {
		label := textutil.Truncate(" "+t.Label+" ", width)
		w := textutil.VisualWidth(label)
		if lineWidth > 0 && lineWidth+len(tabGap)+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString(tabGap)
			lineWidth += len(tabGap)
		}
		style := Styles.Tab
		if i == active {
			style = Styles.TabActive
		}
		line.WriteString(style.Render(label))
		lineWidth += w
	}
	lines = append(lines, line.String())
	lines = append(lines, Styles.Muted.Render(strings.Repeat("─", width)))
	return strings.Join(lines, "\n")
}

// TabBarHeight returns the number of lines RenderTabBar produces.
func TabBarHeight(tabs []Tab, width int) int {
	bar := RenderTabBar(tabs, -1, width)
	if bar == "" {
		return 0
	}
	return lipgloss.Height(bar)
}
