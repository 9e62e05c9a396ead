package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - actions, focus, progress end
	Secondary lipgloss.Color // Gold/orange - gradient accents

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase lipgloss.Color // Badge text on colored pills

	// Borders
	Border      lipgloss.Color // Default toast border
	BorderFocus lipgloss.Color // Hovered or dragged toast border

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Badge   lipgloss.Style // Inverted pill (urgent, count)
	Action  lipgloss.Style // Action button label
	Leaving lipgloss.Style // Toast on its way out
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase: lipgloss.Color("#1a1a1a"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	// Status (match the built-in notification types)
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
	Info:    lipgloss.Color("#3b82f6"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// TypeColor returns the status color for a built-in type key, or the
// muted foreground for anything else.
func (t *Theme) TypeColor(typeKey string) lipgloss.Color {
	switch typeKey {
	case "SUCCESS":
		return t.Success
	case "ERROR":
		return t.Error
	case "WARNING":
		return t.Warning
	case "INFO":
		return t.Info
	default:
		return t.FgMuted
	}
}

// TypeStyle colors text for a type key.
func (t *Theme) TypeStyle(typeKey string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TypeColor(typeKey))
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Badge: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.Error).
			Bold(true).
			Padding(0, 1),
		Action: lipgloss.NewStyle().
			Foreground(t.Primary).
			Underline(true),
		Leaving: lipgloss.NewStyle().Foreground(t.FgSubtle).Faint(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
