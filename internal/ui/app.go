package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"paodiario/internal/notebook"
)

// ScrollDevotionalMsg scrolls the devotional card by Lines (pgup/pgdown).
type ScrollDevotionalMsg struct {
	Lines int
}

// ScrollNoteMsg scrolls the selected note in the reader by Lines (J/K).
type ScrollNoteMsg struct {
	Lines int
}

// Options configures NewAppModel.
type Options struct {
	Notebook      *notebook.Notebook // nil creates an empty one
	Now           func() time.Time   // nil uses time.Now
	ToastDuration time.Duration      // <= 0 uses DefaultToastDuration
}

// AppModel is the root model: the page composed of the devotional card,
// the notebook card, toasts and the key-help bar.
type AppModel struct {
	Devotional *DevotionalView
	Notebook   *NotebookView
	Toasts     *ToastStack
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Now        func() time.Time
	width      int
	height     int
	focusCmd   tea.Cmd // set by Focus.OnChange, returned by the next Update
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Devotional.Init(), a.Notebook.Init(), a.Toasts.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Focus.Current); consumed {
			return a, cmd
		}
	case SaveDraftMsg:
		return a, a.Notebook.Save()
	case DeleteSelectedMsg:
		cmd := a.Notebook.DeleteSelected()
		if cmd != nil && a.Notebook.Notebook.Len() == 0 {
			// The notes pane is hidden once empty.
			a.Focus.SetFocus(PaneDraft)
		}
		return a, tea.Batch(cmd, a.takeFocusCmd())
	case FocusNextMsg:
		a.Focus.Next()
		return a, a.takeFocusCmd()
	case FocusPrevMsg:
		a.Focus.Prev()
		return a, a.takeFocusCmd()
	case ScrollDevotionalMsg:
		a.Devotional.Scroll(msg.Lines)
		return a, nil
	case ScrollNoteMsg:
		a.Notebook.ScrollReader(msg.Lines)
		return a, nil
	case ShowToastMsg, dismissToastMsg:
		_, cmd := a.Toasts.Update(msg)
		return a, cmd
	}

	_, cmd := a.Notebook.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.renderPage()
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	focus := NewFocusManager()
	m := &AppModel{
		Devotional: NewDevotionalView(now),
		Notebook:   NewNotebookView(opts.Notebook),
		Toasts:     NewToastStack(opts.ToastDuration),
		Focus:      focus,
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
		Now:        now,
	}
	focus.OnChange = func(_, to Pane) {
		m.focusCmd = m.Notebook.SetFocus(to)
	}
	return m
}

// takeFocusCmd returns and clears the command left by the last focus change.
func (m *AppModel) takeFocusCmd() tea.Cmd {
	cmd := m.focusCmd
	m.focusCmd = nil
	return cmd
}

// DefaultKeybinds returns the page's key bindings.
func DefaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+s", func() tea.Msg { return SaveDraftMsg{} }, "salvar")
	reg.Bind("tab", func() tea.Msg { return FocusNextMsg{} }, "alternar")
	reg.BindForPane("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "", nil)
	notes := []Pane{PaneNotes}
	for _, k := range []string{"d", "x", "delete"} {
		reg.BindForPane(k, func() tea.Msg { return DeleteSelectedMsg{} }, "excluir", notes)
	}
	reg.BindForPane("J", func() tea.Msg { return ScrollNoteMsg{Lines: 1} }, "ler reflexão", notes)
	reg.BindForPane("K", func() tea.Msg { return ScrollNoteMsg{Lines: -1} }, "ler reflexão", notes)
	reg.Bind("pgup", func() tea.Msg { return ScrollDevotionalMsg{Lines: -3} }, "rolar devocional")
	reg.Bind("pgdown", func() tea.Msg { return ScrollDevotionalMsg{Lines: 3} }, "rolar devocional")
	reg.BindForPane("q", tea.Quit, "sair", notes)
	reg.Bind("ctrl+c", tea.Quit, "sair")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
