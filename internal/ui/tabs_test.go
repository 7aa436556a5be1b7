package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderTabBar_SingleRow(t *testing.T) {
	tabs := []Tab{{Label: "Color"}, {Label: "Shape"}}
	bar := RenderTabBar(tabs, 0, 40)
	assert.Equal(t, 2, lipgloss.Height(bar))
	assert.Contains(t, bar, "Color")
	assert.Contains(t, bar, "Shape")
	assert.Equal(t, 2, TabBarHeight(tabs, 40))
}

func TestRenderTabBar_Wraps(t *testing.T) {
	tabs := []Tab{{Label: "Color"}, {Label: "Visibility"}, {Label: "Shape"}}
	// " Color " is 7 wide, " Visibility " 12: each needs its own row at 12.
	assert.Equal(t, 4, TabBarHeight(tabs, 12))
	for _, line := range []string{RenderTabBar(tabs, 1, 12)} {
		assert.LessOrEqual(t, lipgloss.Width(line), 12)
	}
}

func TestRenderTabBar_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTabBar(nil, 0, 40))
	assert.Equal(t, "", RenderTabBar([]Tab{{Label: "x"}}, 0, 0))
	assert.Equal(t, 0, TabBarHeight(nil, 40))
}
