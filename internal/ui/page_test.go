package ui

import (
	"strings"
	"testing"
)

func TestOverlayBottomRight(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
		"footer",
	}, "\n")

	got := overlayBottomRight(base, "XY\nZW", 10, 1)

	want := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbXY",
		"ccccccccZW",
		"footer",
	}, "\n")
	if got != want {
		t.Errorf("overlay:\n%s\nwant:\n%s", got, want)
	}
}

func TestOverlayBottomRight_PadsShortLines(t *testing.T) {
	got := overlayBottomRight("ab\nend", "XY", 6, 1)

	if want := "ab  XY\nend"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestOverlayBottomRight_TallOverlayKeepsHeight(t *testing.T) {
	got := overlayBottomRight("1\n2", "A\nB\nC\nD", 3, 0)

	if want := "1 C\n2 D"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
