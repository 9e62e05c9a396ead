package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that cannot be blended, such as ANSI
// palette indexes.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient blends between two colors in HCL space.
type Gradient struct {
	From, To lipgloss.Color
}

// Steps returns n colors evenly spread from g.From to g.To.
func (g Gradient) Steps(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{g.From}
	}
	a, b := blendable(g.From), blendable(g.To)
	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = lipgloss.Color(a.BlendHcl(b, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

// Text colors each grapheme of s along the gradient.
func (g Gradient) Text(s string) string {
	return g.render(s, lipgloss.NewStyle())
}

// BoldText is Text in bold.
func (g Gradient) BoldText(s string) string {
	return g.render(s, lipgloss.NewStyle().Bold(true))
}

func (g Gradient) render(s string, base lipgloss.Style) string {
	var clusters []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	for i, c := range g.Steps(len(clusters)) {
		b.WriteString(base.Foreground(c).Render(clusters[i]))
	}
	return b.String()
}

// Bar draws a width-cell bar with percent (0-100) filled. Each filled
// cell keeps its gradient color as the bar drains.
func (g Gradient) Bar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	filled := int(float64(width)*min(max(percent, 0), 100)/100 + 0.5)

	var b strings.Builder
	for i, c := range g.Steps(width) {
		if i < filled {
			b.WriteString(lipgloss.NewStyle().Foreground(c).Render("━"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(T().FgSubtle).Render("─"))
		}
	}
	return b.String()
}

func blendable(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return neutral
}
