package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "hello world", "hello world"},
		{"keeps newlines and tabs", "a\tb\nc", "a\tb\nc"},
		{"drops escape codes", "red\x1b[31m!", "red[31m!"},
		{"drops bell", "ding\a", "ding"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"invalid utf8 dropped", "ok\xffok", "okok"},
		{"wide runes kept", "日本語", "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 6, "hello…"},
		{"zero width", "hello", 0, ""},
		{"wide characters", "日本語テキスト", 7, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	got := TruncateStyled(styled, 6)
	if w := lipgloss.Width(got); w != 6 {
		t.Errorf("width = %d, want 6", w)
	}
	if !strings.Contains(got, Ellipsis) {
		t.Errorf("missing ellipsis in %q", got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hi", 5, "hi   "},
		{"hello", 5, "hello"},
		{"toolong", 3, "toolong"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		if got := Pad(tt.input, tt.width); got != tt.want {
			t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, tt := range []struct {
		input string
		width int
	}{
		{"short", 10},
		{"a much longer message", 10},
		{"", 4},
	} {
		if got := lipgloss.Width(TruncateAndPad(tt.input, tt.width)); got != tt.width {
			t.Errorf("TruncateAndPad(%q, %d) width = %d", tt.input, tt.width, got)
		}
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps", 10)
	if len(lines) < 3 {
		t.Fatalf("Wrap() = %q, want at least 3 lines", lines)
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w > 10 {
			t.Errorf("line %q is %d wide", l, w)
		}
	}

	long := Wrap(strings.Repeat("x", 25), 10)
	if len(long) != 3 {
		t.Errorf("long word wrapped into %d lines, want 3", len(long))
	}

	if got := Wrap("a\nb", 10); len(got) != 2 {
		t.Errorf("newline not kept: %q", got)
	}
	if Wrap("x", 0) != nil {
		t.Error("zero width should produce no lines")
	}
}

func TestClamp(t *testing.T) {
	lines := []string{"one", "two", "three"}

	if got := Clamp(lines, 5, 10); len(got) != 3 {
		t.Errorf("Clamp with room = %q", got)
	}

	got := Clamp(lines, 2, 10)
	if len(got) != 2 || got[1] != "two"+Ellipsis {
		t.Errorf("Clamp(2) = %q", got)
	}
	if lines[1] != "two" {
		t.Error("Clamp modified its input")
	}

	full := Clamp([]string{"abcdef", "ghijkl", "x"}, 2, 6)
	if w := lipgloss.Width(full[1]); w > 6 {
		t.Errorf("clamped line width = %d, want <= 6", w)
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		left, right string
		width       int
		want        string
	}{
		{"left", "right", 15, "left      right"},
		{"left", "right", 5, "left right"},
		{"", "", 3, "   "},
	}

	for _, tt := range tests {
		if got := Row(tt.left, tt.right, tt.width); got != tt.want {
			t.Errorf("Row(%q, %q, %d) = %q, want %q", tt.left, tt.right, tt.width, got, tt.want)
		}
	}
}

func TestWrapStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("bold words here")
	lines := WrapStyled(styled, 6)
	if len(lines) < 3 {
		t.Fatalf("WrapStyled() = %q", lines)
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w > 6 {
			t.Errorf("line width %d > 6", w)
		}
	}
}
