// Package thumb renders small images as half-block terminal art.
package thumb

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder for notification images
	_ "image/jpeg" // JPEG decoder for notification images
	_ "image/png"  // PNG decoder for notification images
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Thumb is a rendered image, one string per terminal row.
type Thumb struct {
	Lines  []string
	Width  int // cells
	Height int // rows
}

// View joins the rows.
func (t Thumb) View() string {
	return strings.Join(t.Lines, "\n")
}

// Load decodes the image at path and renders it into at most cols x rows
// cells, keeping its aspect ratio.
func Load(path string, cols, rows int) (Thumb, error) {
	f, err := os.Open(path)
	if err != nil {
		return Thumb{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Thumb{}, fmt.Errorf("decode image: %w", err)
	}
	return Render(img, cols, rows), nil
}

// Render scales img into at most cols x rows cells. Each cell shows two
// vertically stacked pixels using the upper half block.
func Render(img image.Image, cols, rows int) Thumb {
	if cols <= 0 || rows <= 0 {
		return Thumb{}
	}

	// Terminal cells are about twice as tall as wide, and every cell holds
	// two pixel rows, so a cols x rows*2 pixel box keeps the aspect.
	resized := resize.Thumbnail(uint(cols), uint(rows*2), img, resize.Lanczos3) //nolint:gosec // small dimensions
	b := resized.Bounds()

	t := Thumb{Width: b.Dx()}
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var line strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hex(resized.At(x, y))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(top))
			if y+1 < b.Max.Y {
				style = style.Background(lipgloss.Color(hex(resized.At(x, y+1))))
			}
			line.WriteString(style.Render("▀"))
		}
		t.Lines = append(t.Lines, line.String())
	}
	t.Height = len(t.Lines)
	return t
}

func hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
