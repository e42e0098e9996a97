// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}

	var b strings.Builder
	width := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if width+w > avail {
			break
		}
		b.WriteRune(r)
		width += w
	}
	return b.String() + Ellipsis
}

// Preview collapses s onto one line (newlines and runs of whitespace become
// single spaces) and truncates it to maxWidth columns.
func Preview(s string, maxWidth int) string {
	return Truncate(strings.Join(strings.Fields(s), " "), maxWidth)
}
