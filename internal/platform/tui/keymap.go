package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hockey/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game actions.
// This centralizes key bindings and makes them testable.
//
// The arrow keys steer Player1 (bottom) and WASD steers Player2 (top).
// Menu keys always belong to Player1.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action and the player it belongs to.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true
	}

	switch key {
	case "up":
		return core.Player1, core.ActionUp, false
	case "down":
		return core.Player1, core.ActionDown, false
	case "left":
		return core.Player1, core.ActionLeft, false
	case "right":
		return core.Player1, core.ActionRight, false
	case "w":
		return core.Player2, core.ActionUp, false
	case "s":
		return core.Player2, core.ActionDown, false
	case "a":
		return core.Player2, core.ActionLeft, false
	case "d":
		return core.Player2, core.ActionRight, false
	case "enter", " ":
		return core.Player1, core.ActionConfirm, false
	case "b", "esc":
		return core.Player1, core.ActionBack, false
	case "p":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	}

	return core.Player1, core.ActionNone, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Update(player, func(f *core.InputFrame) { f.Set(action) })
	}
	return isQuit
}

// MapMouse converts a mouse message to a pointer in screen cells.
// Wheel events are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) *core.Pointer {
	ev := tea.MouseEvent(msg)
	if ev.IsWheel() {
		return nil
	}
	left := ev.Button == tea.MouseButtonLeft
	return &core.Pointer{
		X:       ev.X,
		Y:       ev.Y,
		Pressed: left && ev.Action != tea.MouseActionRelease,
		Clicked: left && ev.Action == tea.MouseActionPress,
	}
}

// MapMouseToMultiFrame stores the latest pointer for Player1. A click
// earlier in the same tick is kept so fast clicks are not lost to motion.
func (km *KeyMapper) MapMouseToMultiFrame(msg tea.MouseMsg, frame *core.MultiInputFrame) {
	ptr := km.MapMouse(msg)
	if ptr == nil {
		return
	}
	frame.Update(core.Player1, func(f *core.InputFrame) {
		if f.Pointer != nil && f.Pointer.Clicked {
			ptr.Clicked = true
		}
		f.Pointer = ptr
	})
}
