package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paodiario/internal/notebook"
)

// DefaultToastDuration is how long a toast stays visible.
const DefaultToastDuration = 3 * time.Second

// maxToasts caps the number of toasts on screen; older ones are dropped.
const maxToasts = 3

// Toast is one visible notification.
type Toast struct {
	ID           int
	Notification notebook.Notification
}

// ToastStack holds the visible toasts, newest last. Toasts dismiss
// themselves after Duration and never block input.
type ToastStack struct {
	Duration time.Duration
	toasts   []Toast
	nextID   int
}

// Ensure ToastStack implements View.
var _ View = (*ToastStack)(nil)

// NewToastStack creates an empty stack. A non-positive d uses DefaultToastDuration.
func NewToastStack(d time.Duration) *ToastStack {
	if d <= 0 {
		d = DefaultToastDuration
	}
	return &ToastStack{Duration: d}
}

// Push shows n and returns the command that dismisses it later.
func (s *ToastStack) Push(n notebook.Notification) tea.Cmd {
	s.nextID++
	id := s.nextID
	s.toasts = append(s.toasts, Toast{ID: id, Notification: n})
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[len(s.toasts)-maxToasts:]
	}
	return tea.Tick(s.Duration, func(time.Time) tea.Msg {
		return dismissToastMsg{ID: id}
	})
}

// Dismiss removes the toast with id, if still visible.
func (s *ToastStack) Dismiss(id int) {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns the visible toasts, oldest first.
func (s *ToastStack) Toasts() []Toast {
	return append([]Toast(nil), s.toasts...)
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// Init implements View.
func (s *ToastStack) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (s *ToastStack) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowToastMsg:
		return s, s.Push(msg.Notification)
	case dismissToastMsg:
		s.Dismiss(msg.ID)
	}
	return s, nil
}

// View implements View.
func (s *ToastStack) View() string {
	if len(s.toasts) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		boxes = append(boxes, renderToast(t.Notification))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

func renderToast(n notebook.Notification) string {
	box := Styles.ToastOK
	icon := "✓"
	if n.Level == notebook.LevelWarning {
		box = Styles.ToastWarn
		icon = "!"
	}
	var b strings.Builder
	b.WriteString(Styles.ToastTitle.Render(icon + " " + n.Title))
	if n.Description != "" {
		b.WriteString("\n" + Styles.Muted.Render(n.Description))
	}
	return box.Render(b.String())
}
