package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The first eight entries after ColorDefault line up with
// the piece ids 1..7 so a board cell value can be used as a color directly.
const (
	ColorDefault Color = iota
	ColorCyan          // I
	ColorYellow        // O
	ColorMagenta       // T
	ColorGreen         // S
	ColorRed           // Z
	ColorBlue          // J
	ColorOrange        // L
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// PieceColor returns the color of a board cell value (0 = empty, 1..7 = piece id).
func PieceColor(id uint8) Color {
	if id == 0 || id > uint8(ColorOrange) {
		return ColorDefault
	}
	return Color(id)
}
