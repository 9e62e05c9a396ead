package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/toasty/internal/ui/render"
	"github.com/llehouerou/toasty/internal/ui/styles"
)

// Box frames popup content with an optional title and footer row.
type Box struct {
	Title   string
	Content string
	Footer  string
	Width   int // content width, 0 = fit
}

// Render draws the box, never wider than maxWidth cells.
func (b Box) Render(maxWidth int) string {
	st := styles.T().S()

	inner := b.Width
	if inner <= 0 {
		inner = max(lipgloss.Width(b.Content), lipgloss.Width(b.Title), lipgloss.Width(b.Footer))
	}
	inner = max(min(inner, maxWidth-4), 1)

	var rows []string
	if b.Title != "" {
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, st.Title.Render(b.Title)), "")
	}
	for line := range strings.SplitSeq(b.Content, "\n") {
		if lipgloss.Width(line) > inner {
			line = render.TruncateStyled(line, inner)
		}
		rows = append(rows, render.Pad(line, inner))
	}
	if b.Footer != "" {
		rows = append(rows, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, st.Subtle.Render(b.Footer)))
	}

	return styles.FrameStyle("", false).Render(strings.Join(rows, "\n"))
}

// Origin returns the top-left cell that centers box on a width x height
// screen.
func Origin(box string, width, height int) (x, y int) {
	return max((width-lipgloss.Width(box))/2, 0), max((height-lipgloss.Height(box))/2, 0)
}
