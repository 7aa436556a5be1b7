package attr

import (
	"fmt"
	"strings"

	"ordview/internal/decomp"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// headerLines is the height of the metadata selector drawn above the table.
const headerLines = 2

var (
	selectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// categoryTable is the shared body of every built-in controller: a table of
// the categories in the selected metadata column and their current value.
type categoryTable struct {
	id     string
	title  string
	views  decomp.Dict
	header int // index into headers
	table  table.Model

	headers []string
	width   int
	height  int

	// value renders the current value of a category.
	value func(header, category string) string
	// apply changes the value of a category.
	apply func(header, category string)
	// switched, when set, runs after the metadata column changes.
	switched func()
}

func newCategoryTable(id, title, valueTitle string, views decomp.Dict) *categoryTable {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Category", Width: 12},
			{Title: valueTitle, Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(5),
	)
	return &categoryTable{
		id:      id,
		title:   title,
		views:   views,
		table:   t,
		headers: views.Headers(),
	}
}

func (c *categoryTable) Identifier() string { return c.id }
func (c *categoryTable) Title() string      { return c.title }

// Size returns the last size passed to Resize.
func (c *categoryTable) Size() (width, height int) {
	return c.width, c.height
}

// Resize fits the table into width x height cells.
func (c *categoryTable) Resize(width, height int) {
	c.width, c.height = width, height
	left := width / 2
	c.table.SetColumns([]table.Column{
		{Title: "Category", Width: max(left-2, 0)},
		{Title: c.table.Columns()[1].Title, Width: max(width-left-2, 0)},
	})
	c.table.SetWidth(width)
	c.table.SetHeight(max(height-headerLines, 1))
}

// Header returns the selected metadata column, or "" when there is none.
func (c *categoryTable) Header() string {
	if len(c.headers) == 0 {
		return ""
	}
	return c.headers[c.header]
}

// Categories returns the categories of the selected column.
func (c *categoryTable) Categories() []string {
	return c.views.Categories(c.Header())
}

func (c *categoryTable) selectHeader(i int) {
	c.header = i
	c.table.SetCursor(0)
	if c.switched != nil {
		c.switched()
	}
	c.refresh()
}

func (c *categoryTable) refresh() {
	header := c.Header()
	cats := c.Categories()
	rows := make([]table.Row, len(cats))
	for i, cat := range cats {
		rows[i] = table.Row{cat, c.value(header, cat)}
	}
	c.table.SetRows(rows)
}

// Update handles left/right to switch column and enter to change the
// selected category; everything else moves the table cursor.
func (c *categoryTable) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		if len(c.headers) > 0 {
			c.selectHeader((c.header - 1 + len(c.headers)) % len(c.headers))
		}
		return nil
	case "right", "l":
		if len(c.headers) > 0 {
			c.selectHeader((c.header + 1) % len(c.headers))
		}
		return nil
	case "enter":
		if row := c.table.SelectedRow(); row != nil {
			c.apply(c.Header(), row[0])
			c.refresh()
		}
		return nil
	}
	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	return cmd
}

// View renders the column selector and the table.
func (c *categoryTable) View() string {
	var b strings.Builder
	header := c.Header()
	if header == "" {
		header = "(no metadata)"
	}
	b.WriteString(selectorStyle.Render(fmt.Sprintf("‹ %s ›", header)))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter: change"))
	b.WriteString("\n")
	b.WriteString(c.table.View())
	return b.String()
}
