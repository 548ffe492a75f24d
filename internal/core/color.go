package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colors in the platform renderers.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorGray          // border
	ColorBlue          // settled cells
	ColorCyan          // falling piece
	ColorYellow        // HUD text
	ColorRed           // pause / warnings
	ColorWhite
)
