package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - nudge paddle up / menu up
	ActionDown           // S, Down arrow - nudge paddle down / menu down
	ActionLeft           // A, Left arrow - nudge paddle left
	ActionRight          // D, Right arrow - nudge paddle right
	ActionConfirm        // Enter, Space - confirm selection in menu
	ActionBack           // B, Escape - back out of a menu
	ActionRestart        // R key - back to menu after game over
	ActionQuit           // Q, Ctrl+C - exit session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PlayerID identifies a side of the table.
// Player1 is always the local human at the bottom; Player2 is the CPU or a
// second local player at the top.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "?"
	}
}

// Pointer is a mouse position in screen cells.
type Pointer struct {
	X, Y    int
	Pressed bool // button held while moving
	Clicked bool // button went down this frame
}

// InputFrame represents the input state for a single player during one tick.
type InputFrame struct {
	Actions map[Action]bool
	// Pointer is set when the mouse reported a position this frame.
	Pointer *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}

// MultiInputFrame contains input from both sides of the table for one tick.
// The platform fills Player1 from the keyboard and mouse, and Player2 from the
// second key cluster in local two-player games.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if the player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// Update applies fn to the frame of the given player and stores the result.
func (m *MultiInputFrame) Update(id PlayerID, fn func(*InputFrame)) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	frame := m.Player(id)
	fn(&frame)
	m.ByPlayer[id] = frame
}

// Player1 returns the input frame for the bottom side.
func (m MultiInputFrame) Player1() InputFrame {
	return m.Player(Player1)
}

// Player2 returns the input frame for the top side.
func (m MultiInputFrame) Player2() InputFrame {
	return m.Player(Player2)
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}
