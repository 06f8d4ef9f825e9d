package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the renderer.
type Color uint8

// Colors used by the board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
