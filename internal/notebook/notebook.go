// Package notebook holds the session notebook: an ordered, newest-first
// collection of saved reflections plus the draft being composed.
//
// A Notebook is owned by a single caller and is not safe for concurrent use;
// the UI event loop serializes every transition.
package notebook

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"paodiario/internal/ptbr"
)

// ErrEmptyDraft is returned by SaveDraft when the draft is empty or whitespace.
var ErrEmptyDraft = errors.New("notebook: draft is empty")

// Notebook owns the saved notes and the current draft.
type Notebook struct {
	notes []Note // newest first
	draft string

	now        func() time.Time
	newID      func() string
	formatDate func(time.Time) string
	observer   Observer
	store      Store
}

// Option configures a Notebook.
type Option func(*Notebook)

// WithClock sets the time source used to stamp new notes.
func WithClock(now func() time.Time) Option {
	return func(n *Notebook) { n.now = now }
}

// WithIDGenerator sets the function that produces note IDs.
func WithIDGenerator(newID func() string) Option {
	return func(n *Notebook) { n.newID = newID }
}

// WithDateFormat sets how a note's display date is derived from its creation time.
func WithDateFormat(format func(time.Time) string) Option {
	return func(n *Notebook) { n.formatDate = format }
}

// WithObserver sets the observer notified of every transition.
func WithObserver(obs Observer) Option {
	return func(n *Notebook) { n.observer = obs }
}

// WithStore sets the store the notebook loads from and saves to.
func WithStore(s Store) Option {
	return func(n *Notebook) { n.store = s }
}

// New creates an empty notebook. If a store is configured its notes become
// the initial collection; a failing load leaves the notebook empty.
func New(opts ...Option) *Notebook {
	n := &Notebook{
		now:        time.Now,
		newID:      uuid.NewString,
		formatDate: ptbr.ShortDate,
		observer:   NoopObserver{},
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.observer == nil {
		n.observer = NoopObserver{}
	}
	if n.store != nil {
		notes, err := n.store.Load()
		if err != nil {
			n.observer.OnStoreError(fmt.Errorf("load notes: %w", err))
		} else {
			n.notes = notes
		}
	}
	return n
}

// Draft returns the text currently being composed.
func (n *Notebook) Draft() string {
	return n.draft
}

// UpdateDraft replaces the draft.
func (n *Notebook) UpdateDraft(text string) {
	n.draft = text
}

// Notes returns a copy of the saved notes, newest first.
func (n *Notebook) Notes() []Note {
	return append([]Note(nil), n.notes...)
}

// Len returns the number of saved notes.
func (n *Notebook) Len() int {
	return len(n.notes)
}

// Note returns the note with the given ID.
func (n *Notebook) Note(id string) (Note, bool) {
	for _, note := range n.notes {
		if note.ID == id {
			return note, true
		}
	}
	return Note{}, false
}

// SaveDraft turns the draft into a note at the head of the collection and
// clears the draft. The stored content is the draft as typed, untrimmed.
//
// A blank draft is rejected with ErrEmptyDraft and a warning notification;
// nothing changes in that case.
func (n *Notebook) SaveDraft() (Note, Notification, error) {
	if strings.TrimSpace(n.draft) == "" {
		n.observer.OnDraftRejected(n.draft)
		return Note{}, emptyDraftNotification, ErrEmptyDraft
	}

	created := n.now()
	note := Note{
		ID:        n.newID(),
		Content:   n.draft,
		Date:      n.formatDate(created),
		CreatedAt: created,
	}

	notes := make([]Note, 0, len(n.notes)+1)
	notes = append(notes, note)
	n.notes = append(notes, n.notes...)
	n.draft = ""

	n.observer.OnNoteSaved(note)
	n.persist()
	return note, savedNotification, nil
}

// DeleteNote removes the note with the given ID, keeping the order of the
// rest. It reports false, with no notification, when no note matches.
func (n *Notebook) DeleteNote(id string) (Notification, bool) {
	idx := -1
	for i, note := range n.notes {
		if note.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		n.observer.OnDeleteMissed(id)
		return Notification{}, false
	}

	removed := n.notes[idx]
	notes := make([]Note, 0, len(n.notes)-1)
	notes = append(notes, n.notes[:idx]...)
	n.notes = append(notes, n.notes[idx+1:]...)

	n.observer.OnNoteDeleted(removed)
	n.persist()
	return deletedNotification, true
}

func (n *Notebook) persist() {
	if n.store == nil {
		return
	}
	if err := n.store.Save(n.Notes()); err != nil {
		n.observer.OnStoreError(fmt.Errorf("save notes: %w", err))
	}
}
