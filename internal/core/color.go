package core

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Palette is the set of colors used to tell population members apart.
var Palette = []Color{
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightYellow,
	ColorBrightMagenta,
	ColorBrightBlue,
	ColorOrange,
	ColorGreen,
	ColorCyan,
	ColorYellow,
	ColorMagenta,
	ColorBlue,
	ColorWhite,
}

// PaletteColor returns the palette entry for index i, wrapping around.
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
