// Package overlay draws rendered blocks on top of a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws block over base with its top-left corner at column x, row
// y. Every cell the block covers replaces the base, spaces included, so a
// toast background stays opaque. Rows outside the base are dropped and
// columns beyond width are cut. The result is ANSI-aware.
func Place(base, block string, x, y, width int) string {
	if block == "" || width <= 0 {
		return base
	}
	baseLines := strings.Split(base, "\n")
	x = max(x, 0)

	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = splice(baseLines[row], line, x, width)
	}

	return strings.Join(baseLines, "\n")
}

// splice replaces the cells [x, x+width(line)) of baseLine with line.
func splice(baseLine, line string, x, width int) string {
	if x >= width {
		return baseLine
	}
	lineWidth := ansi.StringWidth(line)
	end := min(x+lineWidth, width)
	if end < x+lineWidth {
		line = ansi.Truncate(line, end-x, "")
	}

	if w := ansi.StringWidth(baseLine); w < width {
		baseLine += strings.Repeat(" ", width-w)
	}

	// A wide rune cut at the boundary leaves the prefix short; pad it so
	// the block lands on its column.
	prefix := ansi.Cut(baseLine, 0, x)
	if pw := ansi.StringWidth(prefix); pw < x {
		prefix += strings.Repeat(" ", x-pw)
	}

	result := prefix + "\x1b[0m" + line + "\x1b[0m"
	if end < width {
		suffix := ansi.Cut(baseLine, end, width)
		if sw := ansi.StringWidth(suffix); sw < width-end {
			suffix = strings.Repeat(" ", width-end-sw) + suffix
		}
		result += suffix
	}
	return result
}
