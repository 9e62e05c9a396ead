package toastview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/toasty/internal/ui/styles"
)

func plainLines(t *testing.T, source string, width int) []string {
	t.Helper()
	lines := markdownLines(source, styles.T().FgBase, styles.T().Info, width)
	out := make([]string, len(lines))
	for i, l := range lines {
		if w := lipgloss.Width(l); w > width {
			t.Errorf("line %d is %d cells wide, limit %d: %q", i, w, width, ansi.Strip(l))
		}
		out[i] = strings.TrimRight(ansi.Strip(l), " ")
	}
	return out
}

func TestMarkdownLines(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"plain", "plain text", []string{"plain text"}},
		{"identifiers keep underscores", "snake_case_name and file_name", []string{"snake_case_name and file_name"}},
		{"nested emphasis", "**bold with *nested* italic**", []string{"bold with nested italic"}},
		{"inline code", "run `make test`", []string{"run make test"}},
		{"heading", "# Heading", []string{"Heading"}},
		{"list", "- List item 1\n- List item 2", []string{"• List item 1", "• List item 2"}},
		{"paragraphs", "first\n\nsecond", []string{"first", "", "second"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plainLines(t, tt.source, 30)
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("markdownLines(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestMarkdownLinesWrap(t *testing.T) {
	got := plainLines(t, strings.Repeat("word ", 20), 20)
	if len(got) < 4 {
		t.Errorf("expected the paragraph to wrap, got %q", got)
	}
}

func TestMarkdownLinesCached(t *testing.T) {
	a := markdownLines("cached **once**", styles.T().FgBase, styles.T().Info, 25)
	b := markdownLines("cached **once**", styles.T().FgBase, styles.T().Info, 25)
	if len(a) == 0 || &a[0] != &b[0] {
		t.Error("second render should come from the cache")
	}
}

func TestTrimBlank(t *testing.T) {
	got := trimBlank([]string{"", "  ", "a", "", " ", "b", "", ""})
	want := []string{"a", "", "b"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("trimBlank() = %q, want %q", got, want)
	}
}
