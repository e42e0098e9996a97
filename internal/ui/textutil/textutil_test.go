package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "oração", 10, "oração"},
		{"exact", "oração", 6, "oração"},
		{"cut", "reflexão diária", 8, "reflexã…"},
		{"zero width", "abc", 0, ""},
		{"only room for ellipsis", "abc", 1, "…"},
		{"wide runes", "日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
			}
			if VisualWidth(got) > tt.width {
				t.Errorf("Truncate(%q, %d): result %q is %d columns wide", tt.in, tt.width, got, VisualWidth(got))
			}
		})
	}
}

func TestPreview_CollapsesWhitespace(t *testing.T) {
	got := Preview("  Senhor,\n\nobrigado   por hoje\t ", 40)
	if got != "Senhor, obrigado por hoje" {
		t.Errorf("Preview: got %q", got)
	}
}
