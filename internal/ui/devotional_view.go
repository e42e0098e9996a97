package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paodiario/internal/devotional"
)

// DevotionalView renders the fixed verse and reflection with today's date.
// It holds no content state; the date is read from Now on every render.
// When given a height smaller than the card, it scrolls inside a viewport.
type DevotionalView struct {
	Content devotional.Devotional
	Now     func() time.Time
	width   int
	height  int // 0 = unbounded
	port    viewport.Model
}

// Ensure DevotionalView implements View.
var _ View = (*DevotionalView)(nil)

// NewDevotionalView creates the view for the daily devotional.
func NewDevotionalView(now func() time.Time) *DevotionalView {
	if now == nil {
		now = time.Now
	}
	return &DevotionalView{Content: devotional.Daily(), Now: now, port: viewport.New(0, 0)}
}

// SetWidth sets the outer width of the card.
func (d *DevotionalView) SetWidth(w int) {
	d.width = w
}

// SetHeight bounds the rendered height; 0 removes the bound.
func (d *DevotionalView) SetHeight(h int) {
	if h < 0 {
		h = 0
	}
	d.height = h
}

// Scroll moves the bounded view by n lines (negative scrolls up).
func (d *DevotionalView) Scroll(n int) {
	d.port.SetContent(d.card())
	d.port.Width = d.cardWidth()
	d.port.Height = d.height
	d.port.SetYOffset(d.port.YOffset + n)
}

// Offset returns the current scroll offset.
func (d *DevotionalView) Offset() int {
	return d.port.YOffset
}

// Init implements View.
func (d *DevotionalView) Init() tea.Cmd {
	return nil
}

// Update implements View. Size and scroll are driven by the page.
func (d *DevotionalView) Update(tea.Msg) (View, tea.Cmd) {
	return d, nil
}

// View implements View.
func (d *DevotionalView) View() string {
	card := d.card()
	if d.height == 0 || lipgloss.Height(card) <= d.height {
		return card
	}
	d.port.Width = d.cardWidth()
	d.port.Height = d.height
	d.port.SetContent(card)
	return d.port.View()
}

func (d *DevotionalView) cardWidth() int {
	if d.width == 0 {
		return 80 // default for tests
	}
	return d.width
}

func (d *DevotionalView) card() string {
	card := Styles.Card
	inner := d.cardWidth() - card.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}
	c := d.Content

	var b strings.Builder
	b.WriteString(Styles.Heading.Render("✝ "+c.Heading) + "\n")
	b.WriteString(Styles.Muted.Render(c.DateLine(d.Now())) + "\n\n")
	b.WriteString(Styles.Reference.Render(c.Reference) + "\n")
	verse := Styles.Verse.Width(inner - Styles.Verse.GetHorizontalFrameSize())
	b.WriteString(verse.Render("“"+c.Verse+"”") + "\n\n")
	b.WriteString(Styles.Section.Render(c.ReflectionTitle) + "\n")
	body := Styles.Body.Width(inner)
	for i, p := range c.Reflection {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(body.Render(p))
	}
	return card.Width(inner + card.GetHorizontalPadding()).Render(b.String())
}
