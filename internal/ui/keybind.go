package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC v a" is space, then v, then a.
// Single keys use tea.KeyMsg.String() form: "q", "tab", "ctrl+c", "left".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	areaFilter   map[string][]Area // nil/empty = applies to every area
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		areaFilter:   make(map[string][]Area),
	}
}

// Bind registers a key sequence to a command, replacing any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help line.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindForArea(seq, cmd, desc, nil)
}

// BindForArea registers a binding that only fires while one of areas has
// focus. Nil or empty areas means everywhere.
func (r *KeybindRegistry) BindForArea(seq string, cmd tea.Cmd, desc string, areas []Area) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(areas) > 0 {
		r.areaFilter[n] = areas
	}
}

// Lookup returns the command for a key sequence in area, or nil.
func (r *KeybindRegistry) Lookup(seq string, area Area) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, area) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel names first-level leader keys that open a submenu.
var submenuLabel = map[string]string{
	"v": "View",
}

// LeaderHints returns the next key of every leader binding continuing
// currentSeq ("" for the top level) that applies to area, mapped to its
// description.
func (r *KeybindRegistry) LeaderHints(currentSeq string, area Area) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesTo(seq, area) {
			continue
		}
		rest := strings.Fields(strings.TrimPrefix(seq, prefix))
		if len(rest) == 0 {
			continue
		}
		k := rest[0]
		if len(rest) > 1 {
			if label, ok := submenuLabel[k]; ok {
				out[k] = label
			} else {
				out[k] = k + "…"
			}
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[k] = d
		} else {
			out[k] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, area Area) bool {
	areas, ok := r.areaFilter[seq]
	if !ok || len(areas) == 0 {
		return true
	}
	for _, a := range areas {
		if a == area {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to the canonical form ("SPC" for space).
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks leader-key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() of the leader (" " for space)
	LeaderWaiting bool     // true after the leader until a sequence completes
	Buffer        []string // sequence typed so far in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
	}
}

// Handle processes a key in area. Returns whether the key was consumed and
// the command to run, if any. Unconsumed keys belong to the focused area.
func (h *KeyHandler) Handle(msg tea.KeyMsg, area Area) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{"SPC"}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, normalizeSeq(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq, area); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.Lookup(s, area); c != nil {
		return true, c
	}
	return false, nil
}

// Sequence returns the leader sequence typed so far, or "".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Described returns the sequences with a description that apply to area,
// sorted.
func (r *KeybindRegistry) Described(area Area) []string {
	out := make([]string, 0, len(r.descriptions))
	for seq := range r.descriptions {
		if r.bindings[seq] != nil && r.appliesTo(seq, area) {
			out = append(out, seq)
		}
	}
	sort.Strings(out)
	return out
}

// Description returns the help text bound to seq.
func (r *KeybindRegistry) Description(seq string) string {
	return r.descriptions[normalizeSeq(seq)]
}
