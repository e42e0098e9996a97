package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps tea key strings ("ctrl+s", "tab", "d") to commands.
// A binding may be limited to some panes, so plain letters can act as
// commands on the notes list while still typing into the draft.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	paneFilter   map[string][]Pane // nil/empty = applies to all panes
	order        []string          // registration order, for help display
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		paneFilter:   make(map[string][]Pane),
	}
}

// Bind registers a key for every pane. Overwrites any existing binding.
func (r *KeybindRegistry) Bind(key string, cmd tea.Cmd, desc string) {
	r.BindForPane(key, cmd, desc, nil)
}

// BindForPane registers a key that only fires while one of panes is focused.
// An empty desc keeps the binding out of the help bar.
func (r *KeybindRegistry) BindForPane(key string, cmd tea.Cmd, desc string, panes []Pane) {
	key = normalizeKey(key)
	if _, ok := r.bindings[key]; !ok {
		r.order = append(r.order, key)
	}
	r.bindings[key] = cmd
	if desc != "" {
		r.descriptions[key] = desc
	} else {
		delete(r.descriptions, key)
	}
	if len(panes) > 0 {
		r.paneFilter[key] = panes
	} else {
		delete(r.paneFilter, key)
	}
}

// Lookup returns the command for key in pane, or nil if not bound there.
func (r *KeybindRegistry) Lookup(key string, pane Pane) tea.Cmd {
	key = normalizeKey(key)
	if !r.appliesToPane(key, pane) {
		return nil
	}
	return r.bindings[key]
}

// Hint is a described binding for the help bar.
type Hint struct {
	Keys []string
	Desc string
}

// Hints returns the described bindings active in pane. Keys sharing a
// description are grouped, in registration order.
func (r *KeybindRegistry) Hints(pane Pane) []Hint {
	var hints []Hint
	index := make(map[string]int)
	for _, key := range r.order {
		desc, ok := r.descriptions[key]
		if !ok || r.bindings[key] == nil || !r.appliesToPane(key, pane) {
			continue
		}
		if i, seen := index[desc]; seen {
			hints[i].Keys = append(hints[i].Keys, key)
			continue
		}
		index[desc] = len(hints)
		hints = append(hints, Hint{Keys: []string{key}, Desc: desc})
	}
	return hints
}

func (r *KeybindRegistry) appliesToPane(key string, pane Pane) bool {
	panes, ok := r.paneFilter[key]
	if !ok || len(panes) == 0 {
		return true
	}
	for _, p := range panes {
		if p == pane {
			return true
		}
	}
	return false
}

// normalizeKey maps Bubble Tea's " " for space to "space".
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "space"
	}
	return key
}

// KeyHandler dispatches key presses to the registry for the focused pane.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. If consumed is true the key was a command and
// must not reach the views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, pane Pane) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String(), pane); c != nil {
		return true, c
	}
	return false, nil
}
