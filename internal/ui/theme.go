package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// DefaultAccent is the accent color used when none is configured.
const DefaultAccent = "#D4A017"

// Theme holds the colors shared by the screen and the plain console.
type Theme struct {
	// Accent as given, e.g. "#D4A017".
	AccentHex string
	Accent    tcell.Color
	Text      tcell.Color
	Dim       tcell.Color
	Warning   tcell.Color
}

// NewTheme builds a theme around an accent color in hex notation.
func NewTheme(accent string) (Theme, error) {
	color, err := ParseHexColor(accent)
	if err != nil {
		return Theme{}, err
	}
	return Theme{
		AccentHex: "#" + strings.TrimPrefix(accent, "#"),
		Accent:    color,
		Text:      tcell.ColorWhite,
		Dim:       tcell.ColorGray,
		Warning:   tcell.ColorIndianRed,
	}, nil
}

// DefaultTheme returns the theme for DefaultAccent.
func DefaultTheme() Theme {
	theme, err := NewTheme(DefaultAccent)
	if err != nil {
		panic(err)
	}
	return theme
}

// LipglossAccent returns the accent for lipgloss styles.
func (t Theme) LipglossAccent() lipgloss.Color {
	return lipgloss.Color(t.AccentHex)
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
