package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paodiario/internal/notebook"
	"paodiario/internal/ui/textutil"
)

const (
	draftPlaceholder = "O que Deus falou com você hoje?..."
	draftHeight      = 5
	defaultListRows  = 9 // three notes at three rows each
	defaultReadRows  = 6

	minListRows  = 3
	minReadRows  = 2
	minNotesRows = minListRows + minReadRows
)

// noteItem implements list.DefaultItem for a saved note.
type noteItem struct {
	note  notebook.Note
	width int
}

func (i noteItem) FilterValue() string { return i.note.Content }
func (i noteItem) Title() string       { return textutil.Preview(i.note.Content, i.width) }
func (i noteItem) Description() string { return i.note.Date }

// NotebookView is the notebook card: the draft editor, the saved notes and
// a reader showing the selected note in full.
// All state lives in the wrapped Notebook; the view only mirrors it.
type NotebookView struct {
	Notebook *notebook.Notebook
	draft    textarea.Model
	list     list.Model
	reader   viewport.Model
	readID   string // note currently loaded in the reader
	pane     Pane
	width    int
}

// Ensure NotebookView implements View.
var _ View = (*NotebookView)(nil)

// NewNotebookView creates the notebook card over nb, focused on the draft.
func NewNotebookView(nb *notebook.Notebook) *NotebookView {
	if nb == nil {
		nb = notebook.New()
	}

	ta := textarea.New()
	ta.Placeholder = draftPlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(draftHeight)
	ta.SetWidth(60)
	ta.SetValue(nb.Draft())
	ta.Focus()

	l := list.New(nil, NewNoteListDelegate(), 60, defaultListRows)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	v := &NotebookView{
		Notebook: nb,
		draft:    ta,
		list:     l,
		reader:   viewport.New(60, defaultReadRows),
		pane:     PaneDraft,
		width:    80,
	}
	v.reader.Width = v.innerWidth()
	v.refresh()
	return v
}

// Pane returns the focused pane.
func (v *NotebookView) Pane() Pane {
	return v.pane
}

// SetFocus moves keyboard focus to p.
func (v *NotebookView) SetFocus(p Pane) tea.Cmd {
	v.pane = p
	if p == PaneDraft {
		return v.draft.Focus()
	}
	v.draft.Blur()
	return nil
}

// SetSize sets the outer card width and the rows shared by the note list and
// the reader. Zero rows keeps the current heights.
func (v *NotebookView) SetSize(width, notesRows int) {
	v.width = width
	inner := v.innerWidth()
	v.draft.SetWidth(inner)
	v.list.SetWidth(inner)
	v.reader.Width = inner
	if notesRows > 0 {
		listRows := max(minListRows, notesRows/2)
		v.list.SetHeight(listRows)
		v.reader.Height = max(minReadRows, notesRows-listRows)
	}
	v.readID = ""
	v.refresh()
}

// ChromeHeight is the card height with the notes section shown but the
// list and reader given no rows.
func (v *NotebookView) ChromeHeight() int {
	// The two empty parts still take a line each.
	return lipgloss.Height(v.render("", "", true)) - 2
}

func (v *NotebookView) innerWidth() int {
	inner := v.width - Styles.Card.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}
	return inner
}

// Selected returns the index of the selected note.
func (v *NotebookView) Selected() int {
	return v.list.Index()
}

// SelectedNote returns the note under the cursor in the notes pane.
func (v *NotebookView) SelectedNote() (notebook.Note, bool) {
	item, ok := v.list.SelectedItem().(noteItem)
	if !ok {
		return notebook.Note{}, false
	}
	return item.note, true
}

// Save saves the draft and returns the toast command for the outcome.
func (v *NotebookView) Save() tea.Cmd {
	// The textarea is the source of truth for what was typed.
	v.Notebook.UpdateDraft(v.draft.Value())
	_, notif, err := v.Notebook.SaveDraft()
	if err == nil {
		v.draft.Reset()
		v.refresh()
		v.list.Select(0)
		v.syncReader()
	}
	return toastCmd(notif)
}

// DeleteSelected deletes the note under the cursor.
func (v *NotebookView) DeleteSelected() tea.Cmd {
	note, ok := v.SelectedNote()
	if !ok {
		return nil
	}
	return v.Delete(note.ID)
}

// Delete removes the note with id. No toast is shown when nothing matched.
func (v *NotebookView) Delete(id string) tea.Cmd {
	notif, ok := v.Notebook.DeleteNote(id)
	if !ok {
		return nil
	}
	idx := v.list.Index()
	v.refresh()
	if n := len(v.list.Items()); idx >= n && n > 0 {
		v.list.Select(n - 1)
		v.syncReader()
	}
	return toastCmd(notif)
}

func toastCmd(n notebook.Notification) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Notification: n} }
}

// refresh rebuilds the list items from the notebook.
func (v *NotebookView) refresh() {
	notes := v.Notebook.Notes()
	items := make([]list.Item, len(notes))
	for i, n := range notes {
		items[i] = noteItem{note: n, width: v.innerWidth() - 2}
	}
	v.list.SetItems(items)
	v.syncReader()
}

// syncReader loads the selected note into the reader, wrapped to the card,
// with line breaks kept. The scroll position resets when the note changes.
func (v *NotebookView) syncReader() {
	note, ok := v.SelectedNote()
	if !ok {
		v.readID = ""
		v.reader.SetContent("")
		return
	}
	v.reader.SetContent(Styles.Body.Width(v.innerWidth()).Render(note.Content))
	if note.ID != v.readID {
		v.readID = note.ID
		v.reader.GotoTop()
	}
}

// ScrollReader scrolls the selected note by n lines (negative scrolls up).
func (v *NotebookView) ScrollReader(n int) {
	v.reader.SetYOffset(v.reader.YOffset + n)
}

// ReaderOffset returns the reader's scroll offset.
func (v *NotebookView) ReaderOffset() int {
	return v.reader.YOffset
}

// Init implements View.
func (v *NotebookView) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements View.
func (v *NotebookView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.(type) {
	case tea.KeyMsg:
		if v.pane == PaneNotes {
			// list.Model handles j/k/up/down/g/G and paging.
			v.list, cmd = v.list.Update(msg)
			v.syncReader()
			return v, cmd
		}
		v.draft, cmd = v.draft.Update(msg)
		v.Notebook.UpdateDraft(v.draft.Value())
		return v, cmd
	}
	v.draft, cmd = v.draft.Update(msg)
	return v, cmd
}

// View implements View.
func (v *NotebookView) View() string {
	if v.Notebook.Len() == 0 {
		return v.render("", "", false)
	}
	return v.render(v.list.View(), v.reader.View(), true)
}

func (v *NotebookView) render(notes, reader string, showNotes bool) string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render("✎ Meu Caderno") + "\n\n")
	b.WriteString(Styles.Label.Render("Escreva sua reflexão pessoal") + "\n")
	b.WriteString(v.draft.View() + "\n")
	b.WriteString(Styles.Muted.Render("[ctrl+s] Salvar Reflexão"))

	if showNotes {
		title := "Minhas Reflexões"
		if v.pane == PaneNotes {
			title = Styles.Selected.Render(title)
		} else {
			title = Styles.Section.Render(title)
		}
		b.WriteString("\n\n" + title + "\n")
		b.WriteString(notes + "\n")
		b.WriteString(reader)
	}

	card := Styles.Card
	if v.pane == PaneNotes {
		card = Styles.CardFocused
	}
	return card.Width(v.innerWidth() + card.GetHorizontalPadding()).Render(b.String())
}
