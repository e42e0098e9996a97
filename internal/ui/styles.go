package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the page.
const (
	ColorPrimary = "136" // Wheat/gold - header band, verse rule, titles
	ColorAccent  = "180" // Light tan - selected notes, focused borders
	ColorDanger  = "167" // Soft red - warning toasts
	ColorSuccess = "108" // Sage green - confirmation toasts
	ColorMuted   = "244" // Gray - dates, hints, footer
	ColorText    = "252" // Light gray - body text
	ColorBorder  = "239" // Dark gray - unfocused card borders
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Header      lipgloss.Style // Title band
	Subtitle    lipgloss.Style // Line under the title
	Card        lipgloss.Style // Unfocused card border
	CardFocused lipgloss.Style // Card containing the focused pane
	Heading     lipgloss.Style // Card headings
	Section     lipgloss.Style // Sub-headings inside a card
	Reference   lipgloss.Style // Verse reference
	Verse       lipgloss.Style // Quoted verse with a left rule
	Body        lipgloss.Style // Paragraph text
	Muted       lipgloss.Style // Dates and secondary text
	Label       lipgloss.Style // Form labels
	Selected    lipgloss.Style // Highlighted note
	Footer      lipgloss.Style // Page footer
	ToastOK     lipgloss.Style // Confirmation toast box
	ToastWarn   lipgloss.Style // Warning toast box
	ToastTitle  lipgloss.Style // Toast title line
}{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color(ColorPrimary)).
		Padding(0, 2).
		Align(lipgloss.Center),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true).
		Align(lipgloss.Center),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 2),
	CardFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Reference: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)),
	Verse: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorText)).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		PaddingLeft(2),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Align(lipgloss.Center),
	ToastOK: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	ToastWarn: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	ToastTitle: lipgloss.NewStyle().
		Bold(true),
}

// NewNoteListDelegate returns the list delegate used for saved notes: the
// date as description under a one-line preview.
func NewNoteListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(1)
	d.ShowDescription = true
	d.Styles.SelectedTitle = Styles.Selected.
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 0, 0, 1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Bold(false).Foreground(lipgloss.Color(ColorMuted))
	d.Styles.NormalTitle = Styles.Body.Padding(0, 0, 0, 2)
	d.Styles.NormalDesc = Styles.Muted.Padding(0, 0, 0, 2)
	return d
}
