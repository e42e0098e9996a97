package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap implements help.KeyMap over the registry for the focused pane.
type KeyMap struct {
	registry *KeybindRegistry
	pane     Pane
}

var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap creates a KeyMap for reg filtered to pane.
func NewKeyMap(reg *KeybindRegistry, pane Pane) *KeyMap {
	return &KeyMap{registry: reg, pane: pane}
}

// ShortHelp returns one binding per described action.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.Hints(km.pane)
	bindings := make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(h.Keys...),
			key.WithHelp(strings.Join(h.Keys, "/"), h.Desc),
		))
	}
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

// newHelpModel returns a help.Model styled with the page theme.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder))
	return h
}

// RenderKeybindHelp renders the help bar for the focused pane.
func RenderKeybindHelp(reg *KeybindRegistry, pane Pane, width int) string {
	km := NewKeyMap(reg, pane)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	h := newHelpModel()
	h.Width = width
	return h.ShortHelpView(bindings)
}
