package notebook

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

// newTestNotebook returns a notebook with a fixed clock and sequential IDs.
func newTestNotebook(opts ...Option) *Notebook {
	seq := 0
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("note-%d", seq)
		}),
	}
	return New(append(base, opts...)...)
}

func save(t *testing.T, n *Notebook, text string) Note {
	t.Helper()
	n.UpdateDraft(text)
	note, _, err := n.SaveDraft()
	require.NoError(t, err)
	return note
}

func contents(notes []Note) []string {
	out := make([]string, len(notes))
	for i, note := range notes {
		out[i] = note.Content
	}
	return out
}

func TestNew_Empty(t *testing.T) {
	n := New()
	assert.Equal(t, 0, n.Len())
	assert.Empty(t, n.Notes())
	assert.Equal(t, "", n.Draft())
}

func TestUpdateDraft_ReplacesDraft(t *testing.T) {
	n := newTestNotebook()
	n.UpdateDraft("first")
	n.UpdateDraft("second")
	assert.Equal(t, "second", n.Draft())
}

func TestSaveDraft_NewestFirst(t *testing.T) {
	n := newTestNotebook()
	for i := 1; i <= 5; i++ {
		save(t, n, fmt.Sprintf("reflexão %d", i))
	}

	require.Equal(t, 5, n.Len())
	assert.Equal(t, []string{
		"reflexão 5", "reflexão 4", "reflexão 3", "reflexão 2", "reflexão 1",
	}, contents(n.Notes()))
}

func TestSaveDraft_BuildsNote(t *testing.T) {
	n := newTestNotebook()
	n.UpdateDraft("  Grato hoje  \n")

	note, notif, err := n.SaveDraft()
	require.NoError(t, err)

	assert.Equal(t, "note-1", note.ID)
	assert.Equal(t, "  Grato hoje  \n", note.Content, "content is stored untrimmed")
	assert.Equal(t, "16/10/2026", note.Date)
	assert.Equal(t, fixedNow, note.CreatedAt)
	assert.Equal(t, LevelSuccess, notif.Level)
	assert.Equal(t, "Reflexão salva!", notif.Title)
	assert.Equal(t, "", n.Draft())
}

func TestSaveDraft_RejectsBlank(t *testing.T) {
	for _, draft := range []string{"", "   ", "\n\t "} {
		t.Run(fmt.Sprintf("%q", draft), func(t *testing.T) {
			n := newTestNotebook()
			save(t, n, "existente")
			n.UpdateDraft(draft)

			note, notif, err := n.SaveDraft()

			assert.True(t, errors.Is(err, ErrEmptyDraft))
			assert.Equal(t, Note{}, note)
			assert.Equal(t, LevelWarning, notif.Level)
			assert.Equal(t, "Atenção", notif.Title)
			assert.Equal(t, "Escreva algo antes de salvar.", notif.Description)
			assert.Equal(t, 1, n.Len())
			assert.Equal(t, draft, n.Draft(), "draft is left as typed")
		})
	}
}

func TestSaveDraft_DateFixedAtCreation(t *testing.T) {
	now := fixedNow
	n := New(WithClock(func() time.Time { return now }))
	first := save(t, n, "ontem")

	now = now.Add(48 * time.Hour)
	save(t, n, "hoje")

	notes := n.Notes()
	assert.Equal(t, "18/10/2026", notes[0].Date)
	assert.Equal(t, first.Date, notes[1].Date)
	assert.Equal(t, "16/10/2026", notes[1].Date)
}

func TestSaveDraft_DefaultIDsAreUnique(t *testing.T) {
	n := New(WithClock(func() time.Time { return fixedNow }))
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		note := save(t, n, "mesmo instante")
		require.False(t, seen[note.ID], "duplicate id %q", note.ID)
		seen[note.ID] = true
	}
}

func TestDeleteNote_RemovesMatchPreservesOrder(t *testing.T) {
	n := newTestNotebook()
	save(t, n, "a")
	b := save(t, n, "b")
	save(t, n, "c")

	notif, ok := n.DeleteNote(b.ID)

	require.True(t, ok)
	assert.Equal(t, "Reflexão excluída", notif.Title)
	assert.Equal(t, "A reflexão foi removida do caderno.", notif.Description)
	assert.Equal(t, []string{"c", "a"}, contents(n.Notes()))
	_, found := n.Note(b.ID)
	assert.False(t, found)
}

func TestDeleteNote_UnknownIDIsNoOp(t *testing.T) {
	n := newTestNotebook()
	save(t, n, "a")
	save(t, n, "b")
	before := n.Notes()

	notif, ok := n.DeleteNote("missing")

	assert.False(t, ok)
	assert.Equal(t, Notification{}, notif)
	assert.Equal(t, before, n.Notes())
}

func TestNotes_ReturnsCopy(t *testing.T) {
	n := newTestNotebook()
	save(t, n, "a")

	notes := n.Notes()
	notes[0].Content = "mutated"

	assert.Equal(t, "a", n.Notes()[0].Content)
}

func TestEndToEndScenario(t *testing.T) {
	n := newTestNotebook()

	n.UpdateDraft("Grateful today")
	_, _, err := n.SaveDraft()
	require.NoError(t, err)
	require.Len(t, n.Notes(), 1)
	assert.Equal(t, "Grateful today", n.Notes()[0].Content)
	assert.Equal(t, "16/10/2026", n.Notes()[0].Date)

	n.UpdateDraft("Second thought")
	_, _, err = n.SaveDraft()
	require.NoError(t, err)
	assert.Equal(t, []string{"Second thought", "Grateful today"}, contents(n.Notes()))

	grateful := n.Notes()[1].ID
	_, ok := n.DeleteNote(grateful)
	require.True(t, ok)
	assert.Equal(t, []string{"Second thought"}, contents(n.Notes()))
}

type recordingObserver struct {
	NoopObserver
	events []string
}

func (r *recordingObserver) OnNoteSaved(note Note)        { r.events = append(r.events, "saved:"+note.ID) }
func (r *recordingObserver) OnDraftRejected(draft string) { r.events = append(r.events, "rejected") }
func (r *recordingObserver) OnNoteDeleted(note Note)      { r.events = append(r.events, "deleted:"+note.ID) }
func (r *recordingObserver) OnDeleteMissed(id string)     { r.events = append(r.events, "missed:"+id) }
func (r *recordingObserver) OnStoreError(err error)       { r.events = append(r.events, "store:"+err.Error()) }

func TestObserver_SeesEveryTransition(t *testing.T) {
	obs := &recordingObserver{}
	n := newTestNotebook(WithObserver(obs))

	n.UpdateDraft(" ")
	_, _, _ = n.SaveDraft()
	note := save(t, n, "a")
	n.DeleteNote("nope")
	n.DeleteNote(note.ID)

	assert.Equal(t, []string{"rejected", "saved:note-1", "missed:nope", "deleted:note-1"}, obs.events)
}

func TestWithObserver_NilFallsBackToNoop(t *testing.T) {
	n := newTestNotebook(WithObserver(nil))
	assert.NotPanics(t, func() {
		save(t, n, "a")
	})
}

func TestStore_LoadsInitialNotesAndSavesEachChange(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save([]Note{{ID: "old", Content: "anterior", Date: "15/10/2026"}}))

	n := newTestNotebook(WithStore(store))
	require.Equal(t, 1, n.Len())

	note := save(t, n, "nova")
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"nova", "anterior"}, contents(stored))

	n.DeleteNote(note.ID)
	stored, _ = store.Load()
	assert.Equal(t, []string{"anterior"}, contents(stored))

	n.UpdateDraft("")
	_, _, _ = n.SaveDraft()
	n.DeleteNote("missing")
	assert.Equal(t, 3, store.Saves(), "rejected and missed transitions do not save")
}

type failingStore struct{}

func (failingStore) Load() ([]Note, error) { return nil, errors.New("boom") }
func (failingStore) Save([]Note) error      { return errors.New("disk full") }

func TestStore_ErrorsAreReportedNotFatal(t *testing.T) {
	obs := &recordingObserver{}
	n := newTestNotebook(WithObserver(obs), WithStore(failingStore{}))

	note := save(t, n, "ainda salva")

	assert.Equal(t, 1, n.Len())
	assert.Equal(t, []string{
		"store:load notes: boom",
		"saved:" + note.ID,
		"store:save notes: disk full",
	}, obs.events)
}
