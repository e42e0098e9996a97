package ui

// Pane identifies a focusable region of the notebook.
type Pane int

const (
	PaneDraft Pane = iota
	PaneNotes
)

func (p Pane) String() string {
	switch p {
	case PaneDraft:
		return "Draft"
	case PaneNotes:
		return "Notes"
	default:
		return "Unknown"
	}
}

// FocusManager tracks and rotates focus across panes.
type FocusManager struct {
	Current  Pane
	Order    []Pane // Tab order for focus rotation
	OnChange func(from, to Pane)
}

// NewFocusManager starts focused on the draft.
func NewFocusManager() *FocusManager {
	return &FocusManager{
		Current: PaneDraft,
		Order:   []Pane{PaneDraft, PaneNotes},
	}
}

// Next advances focus to the next pane in order and returns it.
func (f *FocusManager) Next() Pane {
	return f.step(1)
}

// Prev moves focus to the previous pane in order and returns it.
func (f *FocusManager) Prev() Pane {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) Pane {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := 0
	for i, p := range f.Order {
		if p == f.Current {
			idx = i
			break
		}
	}
	next := (idx + delta + len(f.Order)) % len(f.Order)
	f.set(f.Order[next])
	return f.Current
}

// SetFocus focuses p. Returns false if p is not in the order.
func (f *FocusManager) SetFocus(p Pane) bool {
	for _, o := range f.Order {
		if o == p {
			f.set(p)
			return true
		}
	}
	return false
}

func (f *FocusManager) set(p Pane) {
	from := f.Current
	f.Current = p
	if f.OnChange != nil && from != p {
		f.OnChange(from, p)
	}
}
