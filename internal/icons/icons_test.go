//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected the wrong icon set", tt.style)
			}
		})
	}

	Init("none")
}

func TestForType(t *testing.T) {
	tests := []struct {
		style    string
		typeKey  string
		expected string
	}{
		{"none", "SUCCESS", "[ok]"},
		{"none", "error", "[x]"},
		{"none", "WARNING", "[!]"},
		{"none", "INFO", "[i]"},
		{"none", "DEPLOY", "[i]"},
		{"unicode", "SUCCESS", "✔"},
		{"unicode", "ERROR", "✖"},
		{"nerd", "WARNING", ""},
	}

	for _, tt := range tests {
		t.Run(tt.style+"_"+tt.typeKey, func(t *testing.T) {
			Init(tt.style)
			if got := ForType(tt.typeKey); got != tt.expected {
				t.Errorf("ForType(%q) = %q, want %q", tt.typeKey, got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestFormatHistory(t *testing.T) {
	tests := []struct {
		style    string
		expected string
	}{
		{"none", "History"},
		{"unicode", "⟲ History"},
		{"nerd", " History"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatHistory("History"); got != tt.expected {
				t.Errorf("FormatHistory() = %q, want %q", got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestGlyphs(t *testing.T) {
	Init("none")
	if Close() != "x" || Urgent() != "!!" || Action() != ">" {
		t.Errorf("none glyphs = %q %q %q", Close(), Urgent(), Action())
	}
	Init("unicode")
	if Close() != "×" || Urgent() != "‼" {
		t.Errorf("unicode glyphs = %q %q", Close(), Urgent())
	}
	Init("none")
}
