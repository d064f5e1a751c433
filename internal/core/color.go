package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each one to an ANSI 256-color code.
type Color uint8

// Table palette.
const (
	ColorDefault       Color = iota
	ColorRed                 // dead zone edges
	ColorWhite               // menu text
	ColorGray                // markings, idle menu items
	ColorDarkGray            // dead zone band
	ColorBrightGreen         // selected menu item
	ColorBrightYellow        // puck, titles
	ColorBrightMagenta       // top paddle
	ColorBrightCyan          // bottom paddle, frames
	ColorBrightWhite         // goals, HUD
)
