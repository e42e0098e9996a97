package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_LookupRespectsPane(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+s", tea.Quit, "salvar")
	reg.BindForPane("d", tea.Quit, "excluir", []Pane{PaneNotes})

	if reg.Lookup("ctrl+s", PaneDraft) == nil || reg.Lookup("ctrl+s", PaneNotes) == nil {
		t.Error("expected ctrl+s bound in every pane")
	}
	if reg.Lookup("d", PaneDraft) != nil {
		t.Error("d must not be bound while typing the draft")
	}
	if reg.Lookup("d", PaneNotes) == nil {
		t.Error("expected d bound in the notes pane")
	}
	if reg.Lookup("unknown", PaneNotes) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_RebindClearsPaneFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForPane("q", tea.Quit, "sair", []Pane{PaneNotes})
	reg.Bind("q", tea.Quit, "sair")

	if reg.Lookup("q", PaneDraft) == nil {
		t.Error("rebinding without panes should apply everywhere")
	}
	if got := reg.Hints(PaneDraft); len(got) != 1 || len(got[0].Keys) != 1 {
		t.Errorf("expected q listed once, got %+v", got)
	}
}

func TestKeybindRegistry_SpaceNormalized(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("space", tea.Quit, "")
	if reg.Lookup(" ", PaneDraft) == nil {
		t.Error(`expected " " to resolve to the space binding`)
	}
}

func TestKeybindRegistry_HintsGroupByDescription(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+s", tea.Quit, "salvar")
	reg.BindForPane("d", tea.Quit, "excluir", []Pane{PaneNotes})
	reg.BindForPane("x", tea.Quit, "excluir", []Pane{PaneNotes})
	reg.Bind("shift+tab", tea.Quit, "")

	draft := reg.Hints(PaneDraft)
	if len(draft) != 1 || draft[0].Desc != "salvar" {
		t.Errorf("draft hints: got %+v", draft)
	}

	notes := reg.Hints(PaneNotes)
	if len(notes) != 2 {
		t.Fatalf("notes hints: expected 2, got %+v", notes)
	}
	if notes[1].Desc != "excluir" || len(notes[1].Keys) != 2 || notes[1].Keys[0] != "d" || notes[1].Keys[1] != "x" {
		t.Errorf("expected d/x grouped under excluir, got %+v", notes[1])
	}
}

func TestKeyHandler_DispatchesForPane(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.BindForPane("x", func() tea.Msg {
		executed = true
		return nil
	}, "", []Pane{PaneNotes})
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("x"), PaneDraft)
	if consumed {
		t.Error("x in the draft pane should fall through to the editor")
	}

	consumed, cmd := h.Handle(keyMsg("x"), PaneNotes)
	if !consumed || cmd == nil {
		t.Fatalf("x in notes pane: consumed=%v cmd=%v", consumed, cmd)
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_NilSafe(t *testing.T) {
	var h *KeyHandler
	if consumed, cmd := h.Handle(keyMsg("q"), PaneNotes); consumed || cmd != nil {
		t.Errorf("nil handler: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestRenderKeybindHelp_FiltersByPane(t *testing.T) {
	reg := DefaultKeybinds()

	draft := RenderKeybindHelp(reg, PaneDraft, 200)
	notes := RenderKeybindHelp(reg, PaneNotes, 200)

	if !containsAll(draft, "ctrl+s", "salvar", "tab") {
		t.Errorf("draft help missing entries: %q", draft)
	}
	if contains(draft, "excluir") {
		t.Errorf("draft help should not offer delete: %q", draft)
	}
	if !containsAll(notes, "d/x/delete", "excluir") {
		t.Errorf("notes help missing delete: %q", notes)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
