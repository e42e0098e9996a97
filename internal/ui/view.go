package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of page composition; it mirrors tea.Model but returns
// itself as a View so parents can keep the concrete type.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
