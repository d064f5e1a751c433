package tui

import "github.com/vovakirdan/tui-hockey/internal/core"

// Game is what the terminal program drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the game to a new terminal size without resetting it.
	Resize(cols, rows int)

	// Step advances the simulation by one fixed tick.
	Step(in core.MultiInputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameFactory creates a fresh game, typically one per session.
type GameFactory func() Game
