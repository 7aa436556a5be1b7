package attr

import "ordview/internal/decomp"

// VisibilityController shows and hides samples by category.
type VisibilityController struct {
	*categoryTable
}

var _ Panel = (*VisibilityController)(nil)

// NewVisibilityController is the Factory for KindVisibility.
func NewVisibilityController(containerID string, views decomp.Dict) (Controller, error) {
	c := &VisibilityController{
		categoryTable: newCategoryTable(KindVisibility.String()+"-"+containerID, "Visibility", "Visible", views),
	}
	c.value = func(header, category string) string {
		if c.Visible(header, category) {
			return "[x]"
		}
		return "[ ]"
	}
	c.apply = c.Toggle
	c.refresh()
	return c, nil
}

// Visible reports whether the category's first sample is shown.
func (c *VisibilityController) Visible(header, category string) bool {
	v, i := c.views.Lookup(header, category)
	return v != nil && v.Visible[i]
}

// Toggle flips the visibility of every sample in the category.
func (c *VisibilityController) Toggle(header, category string) {
	show := !c.Visible(header, category)
	for _, v := range c.views {
		v.SetVisible(header, category, show)
	}
}
