package common

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Tokyo Night palette.
var (
	ColorForeground = lipgloss.Color("#a9b1d6")
	ColorMuted      = lipgloss.Color("#565f89")
	ColorPrimary    = lipgloss.Color("#7aa2f7")
	ColorSecondary  = lipgloss.Color("#bb9af7")
	ColorSuccess    = lipgloss.Color("#9ece6a")
	ColorWarning    = lipgloss.Color("#e0af68")
	ColorError      = lipgloss.Color("#f7768e")
	ColorSelection  = lipgloss.Color("#33467c")
)

// Palette groups the colors a Styles set is built from.
type Palette struct {
	Foreground color.Color
	Muted      color.Color
	Primary    color.Color
	Secondary  color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
	Selection  color.Color
}

// DefaultPalette returns the Tokyo Night palette.
func DefaultPalette() Palette {
	return Palette{
		Foreground: ColorForeground,
		Muted:      ColorMuted,
		Primary:    ColorPrimary,
		Secondary:  ColorSecondary,
		Success:    ColorSuccess,
		Warning:    ColorWarning,
		Error:      ColorError,
		Selection:  ColorSelection,
	}
}
