// Package render provides text layout helpers for toast content.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Sanitize removes control characters (except tab) and invalid UTF-8, and
// turns non-breaking spaces into plain spaces. Messages come from callers
// and captured stderr, so they may contain anything.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			// invalid byte
		case r != '\t' && r != '\n' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' && b != '\n' {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens plain text to maxWidth cells, ending with an ellipsis
// when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// TruncateStyled is Truncate for text that already carries ANSI styling.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Wrap breaks text into lines of at most width cells. Words longer than
// the width are split. Existing newlines are kept.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := ansi.Wrap(Sanitize(s), width, "")
	return strings.Split(wrapped, "\n")
}

// Clamp keeps at most n lines, replacing the tail of the last kept line
// with an ellipsis when lines were dropped.
func Clamp(lines []string, n, width int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	last := out[n-1]
	if lipgloss.Width(last) >= width {
		last = ansi.Truncate(last, width-1, "")
	}
	out[n-1] = last + Ellipsis
	return out
}

// Row creates a row with left and right aligned content separated by spaces.
// The total width of the output will be exactly width characters.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// WrapStyled is Wrap for text that already carries ANSI styling. It does
// not sanitize.
func WrapStyled(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}
