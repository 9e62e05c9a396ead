package toastview

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	gansi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/toasty/internal/ui/render"
	"github.com/llehouerou/toasty/internal/ui/styles"
)

// maxCachedMessages bounds the rendered-message cache. It is cleared
// when full.
const maxCachedMessages = 256

type mdKey struct {
	text, accent, source string
	width                int
}

var (
	mdMu    sync.Mutex
	mdCache = make(map[mdKey][]string)
)

// markdownLines renders source as markdown wrapped to width. text colors
// body copy; accent colors headings, strong text and link labels.
func markdownLines(source string, text, accent lipgloss.Color, width int) []string {
	key := mdKey{string(text), string(accent), source, width}

	mdMu.Lock()
	defer mdMu.Unlock()
	if lines, ok := mdCache[key]; ok {
		return lines
	}

	lines, err := renderMarkdown(source, text, accent, width)
	if err != nil {
		lines = render.WrapStyled(lipgloss.NewStyle().Foreground(text).Render(source), width)
	}
	if len(mdCache) >= maxCachedMessages {
		clear(mdCache)
	}
	mdCache[key] = lines
	return lines
}

func renderMarkdown(source string, text, accent lipgloss.Color, width int) ([]string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle(text, accent)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	out, err := r.Render(source)
	if err != nil {
		return nil, err
	}
	return trimBlank(strings.Split(out, "\n")), nil
}

// trimBlank drops blank lines around the document and collapses runs of
// blank lines between blocks to one.
func trimBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	blank := true
	for _, l := range lines {
		if strings.TrimSpace(ansi.Strip(l)) == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, l)
		blank = false
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// markdownStyle is a compact glamour style for a card: no margins, no
// heading markers, theme colors.
func markdownStyle(text, accent lipgloss.Color) gansi.StyleConfig {
	t := styles.T()
	body, acc := string(text), string(accent)
	code, subtle := string(t.Secondary), string(t.FgSubtle)
	yes := true
	var zero uint
	one := uint(1)
	bar := "│ "

	heading := gansi.StyleBlock{StylePrimitive: gansi.StylePrimitive{Color: &acc, Bold: &yes}}
	return gansi.StyleConfig{
		Document:      gansi.StyleBlock{StylePrimitive: gansi.StylePrimitive{Color: &body}, Margin: &zero},
		Paragraph:     gansi.StyleBlock{StylePrimitive: gansi.StylePrimitive{Color: &body}},
		Heading:       heading,
		H1:            heading,
		H2:            heading,
		H3:            heading,
		H4:            heading,
		H5:            heading,
		H6:            heading,
		Text:          gansi.StylePrimitive{Color: &body},
		Strong:        gansi.StylePrimitive{Color: &acc, Bold: &yes},
		Emph:          gansi.StylePrimitive{Italic: &yes},
		Strikethrough: gansi.StylePrimitive{CrossedOut: &yes},
		Code:          gansi.StyleBlock{StylePrimitive: gansi.StylePrimitive{Color: &code}},
		CodeBlock:     gansi.StyleCodeBlock{StyleBlock: gansi.StyleBlock{StylePrimitive: gansi.StylePrimitive{Color: &code}, Margin: &zero}},
		Link:          gansi.StylePrimitive{Color: &subtle, Underline: &yes},
		LinkText:      gansi.StylePrimitive{Color: &acc, Bold: &yes},
		List:          gansi.StyleList{LevelIndent: 2, StyleBlock: gansi.StyleBlock{StylePrimitive: gansi.StylePrimitive{Color: &body}}},
		Item:          gansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration:   gansi.StylePrimitive{BlockPrefix: ". "},
		BlockQuote: gansi.StyleBlock{
			StylePrimitive: gansi.StylePrimitive{Color: &subtle},
			Indent:         &one,
			IndentToken:    &bar,
		},
		HorizontalRule: gansi.StylePrimitive{Color: &subtle, Format: "\n──────\n"},
	}
}
