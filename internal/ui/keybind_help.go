package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the leader hints for the current sequence as a
// single help line, or "" when the handler is not waiting on the leader.
func RenderKeybindHelp(h *KeyHandler, area Area, width int) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	hints := h.Registry.LeaderHints(h.Sequence(), area)

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	m := help.New()
	m.Width = max(width-lipgloss.Width(h.Sequence())-1, 0)
	m.Styles.ShortKey = Styles.Focus
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint

	return Styles.Muted.Render(h.Sequence()) + " " + m.ShortHelpView(bindings)
}

// helpColumnRows is the number of bindings per column in the full listing.
const helpColumnRows = 8

// RenderKeybindList renders every described binding that applies to area as
// bubbles/help columns.
func RenderKeybindList(r *KeybindRegistry, area Area, width int) string {
	seqs := r.Described(area)
	var columns [][]key.Binding
	for i := 0; i < len(seqs); i += helpColumnRows {
		end := min(i+helpColumnRows, len(seqs))
		col := make([]key.Binding, 0, end-i)
		for _, seq := range seqs[i:end] {
			col = append(col, key.NewBinding(key.WithKeys(seq), key.WithHelp(seq, r.Description(seq))))
		}
		columns = append(columns, col)
	}

	m := help.New()
	m.Width = width
	m.Styles.FullKey = Styles.Focus
	m.Styles.FullDesc = Styles.Hint
	m.Styles.FullSeparator = Styles.Hint
	return m.FullHelpView(columns)
}
