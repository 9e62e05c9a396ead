package icons

import "strings"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Success string
	Error   string
	Warning string
	Info    string
	Close   string
	Urgent  string
	History string
	Action  string
}

var (
	nerdIcons = Icons{
		Success: "\uf00c",     // nf-fa-check
		Error:   "\uf00d",     // nf-fa-times
		Warning: "\uf071",     // nf-fa-warning
		Info:    "\uf05a",     // nf-fa-info_circle
		Close:   "\U000f0156", // nf-md-close
		Urgent:  "\U000f0026", // nf-md-alert
		History: "\uf1da",     // nf-fa-history
		Action:  "\uf054",     // nf-fa-chevron_right
	}

	unicodeIcons = Icons{
		Success: "✔",
		Error:   "✖",
		Warning: "⚠",
		Info:    "ℹ",
		Close:   "×",
		Urgent:  "‼",
		History: "⟲",
		Action:  "›",
	}

	noneIcons = Icons{
		Success: "[ok]",
		Error:   "[x]",
		Warning: "[!]",
		Info:    "[i]",
		Close:   "x",
		Urgent:  "!!",
		History: "",
		Action:  ">",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// ForType returns the icon of a notification type. Custom types get the
// info icon.
func ForType(typeKey string) string {
	switch strings.ToUpper(typeKey) {
	case "SUCCESS":
		return current.Success
	case "ERROR":
		return current.Error
	case "WARNING":
		return current.Warning
	default:
		return current.Info
	}
}

// Close returns the close-button glyph.
func Close() string {
	return current.Close
}

// Urgent returns the urgent badge glyph.
func Urgent() string {
	return current.Urgent
}

// Action returns the marker drawn before action labels.
func Action() string {
	return current.Action
}

// FormatHistory prefixes a title with the history icon when the style has one.
func FormatHistory(title string) string {
	if current.History == "" {
		return title
	}
	return current.History + " " + title
}
