package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"paodiario/internal/ptbr"
)

const (
	pageTitle    = "Pão Diário"
	pageSubtitle = "Alimento espiritual para sua jornada"

	defaultPageWidth = 80
	maxCardWidth     = 100

	minDevotionalRows = 6
)

// renderPage stacks header, devotional, notebook, footer and help, then
// draws the toasts over the bottom-right corner above the footer. Toasts
// never add rows. It reads the clock but changes nothing.
func (a *AppModel) renderPage() string {
	width := a.pageWidth()
	footer := a.renderFooter(width)
	help := a.renderHelp(width)

	page := strings.Join([]string{
		a.renderHeader(width),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, a.Devotional.View()),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, a.Notebook.View()),
		footer,
		help,
	}, "\n")

	if toasts := a.Toasts.View(); toasts != "" {
		below := lipgloss.Height(footer) + lipgloss.Height(help)
		page = overlayBottomRight(page, toasts, width, below)
	}
	return page
}

func (a *AppModel) pageWidth() int {
	if a.width == 0 {
		return defaultPageWidth
	}
	return a.width
}

func (a *AppModel) renderHeader(width int) string {
	title := Styles.Header.Width(width).Render(pageTitle)
	subtitle := Styles.Subtitle.Width(width).Render(pageSubtitle)
	return title + "\n" + subtitle
}

func (a *AppModel) renderFooter(width int) string {
	line := "© " + ptbr.Year(a.Now()) + " " + pageTitle + ". Feito com ❤️ para fortalecer sua fé."
	return Styles.Footer.Width(width).Render(line)
}

func (a *AppModel) renderHelp(width int) string {
	return RenderKeybindHelp(a.KeyHandler.Registry, a.Focus.Current, width)
}

// overlayBottomRight draws top over base, right-aligned to width, with its
// last line sitting above the bottom skip lines of base. Lines of top that
// would fall outside base are dropped.
func overlayBottomRight(base, top string, width, skip int) string {
	lines := strings.Split(base, "\n")
	over := strings.Split(top, "\n")
	w := lipgloss.Width(top)
	col := max(0, width-w)

	start := len(lines) - skip - len(over)
	for i, o := range over {
		row := start + i
		if row < 0 || row >= len(lines) {
			continue
		}
		line := lines[row]
		left := ansi.Truncate(line, col, "")
		if pad := col - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		if pad := w - ansi.StringWidth(o); pad > 0 {
			o += strings.Repeat(" ", pad)
		}
		lines[row] = left + o + ansi.TruncateLeft(line, col+w, "")
	}
	return strings.Join(lines, "\n")
}

// resize splits the terminal between the two cards. Header, footer, help
// and the notebook's editor are measured as rendered; the devotional and the
// notes section share the rest.
func (a *AppModel) resize(width, height int) {
	a.width = width
	a.height = height

	cardWidth := min(width, maxCardWidth)
	a.Devotional.SetWidth(cardWidth)
	a.Notebook.SetSize(cardWidth, 0)

	chrome := lipgloss.Height(a.renderHeader(width)) +
		lipgloss.Height(a.renderFooter(width)) +
		lipgloss.Height(a.renderHelp(width)) +
		a.Notebook.ChromeHeight()

	avail := height - chrome
	notesRows := max(minNotesRows, avail/2)
	devRows := avail - notesRows
	if devRows < minDevotionalRows {
		// Short terminal: give the devotional its minimum back from the notes.
		notesRows = max(minNotesRows, avail-minDevotionalRows)
		devRows = max(1, avail-notesRows)
	}

	a.Devotional.SetHeight(devRows)
	a.Notebook.SetSize(cardWidth, notesRows)
}
