package notebook

// Observer receives notebook transitions. Implementations must not call
// back into the Notebook.
type Observer interface {
	OnNoteSaved(note Note)
	OnDraftRejected(draft string)
	OnNoteDeleted(note Note)
	OnDeleteMissed(id string)
	OnStoreError(err error)
}

// NoopObserver implements Observer with no-ops. Embed it to override a subset.
type NoopObserver struct{}

var _ Observer = NoopObserver{}

func (NoopObserver) OnNoteSaved(Note)       {}
func (NoopObserver) OnDraftRejected(string) {}
func (NoopObserver) OnNoteDeleted(Note)     {}
func (NoopObserver) OnDeleteMissed(string)  {}
func (NoopObserver) OnStoreError(error)     {}

// MultiObserver fans out transitions to multiple observers.
// A panicking observer does not stop the others.
type MultiObserver struct {
	observers []Observer
}

var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver. Nil observers are dropped.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// OnNoteSaved forwards the call to all observers.
func (m *MultiObserver) OnNoteSaved(note Note) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnNoteSaved(note) })
	}
}

// OnDraftRejected forwards the call to all observers.
func (m *MultiObserver) OnDraftRejected(draft string) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnDraftRejected(draft) })
	}
}

// OnNoteDeleted forwards the call to all observers.
func (m *MultiObserver) OnNoteDeleted(note Note) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnNoteDeleted(note) })
	}
}

// OnDeleteMissed forwards the call to all observers.
func (m *MultiObserver) OnDeleteMissed(id string) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnDeleteMissed(id) })
	}
}

// OnStoreError forwards the call to all observers.
func (m *MultiObserver) OnStoreError(err error) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnStoreError(err) })
	}
}
