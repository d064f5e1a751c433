package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hockey/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    string
		player core.PlayerID
		action core.Action
		quit   bool
	}{
		{"up", core.Player1, core.ActionUp, false},
		{"down", core.Player1, core.ActionDown, false},
		{"left", core.Player1, core.ActionLeft, false},
		{"right", core.Player1, core.ActionRight, false},
		{"w", core.Player2, core.ActionUp, false},
		{"s", core.Player2, core.ActionDown, false},
		{"a", core.Player2, core.ActionLeft, false},
		{"d", core.Player2, core.ActionRight, false},
		{"enter", core.Player1, core.ActionConfirm, false},
		{" ", core.Player1, core.ActionConfirm, false},
		{"esc", core.Player1, core.ActionBack, false},
		{"p", core.Player1, core.ActionPause, false},
		{"r", core.Player1, core.ActionRestart, false},
		{"q", core.Player1, core.ActionQuit, true},
		{"ctrl+c", core.Player1, core.ActionQuit, true},
		{"x", core.Player1, core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			player, action, quit := km.MapKey(keyMsg(tc.key))
			if player != tc.player || action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%s, %s, %v), expected (%s, %s, %v)",
					tc.key, player, action, quit, tc.player, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMultiFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewMultiInputFrame()

	km.MapKeyToMultiFrame(keyMsg("left"), &frame)
	km.MapKeyToMultiFrame(keyMsg("w"), &frame)

	if !frame.Player1().Has(core.ActionLeft) {
		t.Error("arrow keys should reach Player1")
	}
	if !frame.Player2().Has(core.ActionUp) {
		t.Error("WASD should reach Player2")
	}
	if frame.Player1().Has(core.ActionUp) {
		t.Error("WASD should not reach Player1")
	}

	if !km.MapKeyToMultiFrame(keyMsg("q"), &frame) {
		t.Error("q should be a quit request")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	press := km.MapMouse(tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if press == nil || !press.Clicked || !press.Pressed || press.X != 4 || press.Y != 7 {
		t.Errorf("left press = %+v, expected a click at (4, 7)", press)
	}

	motion := km.MapMouse(tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if motion == nil || motion.Clicked || motion.Pressed {
		t.Errorf("hover = %+v, expected an unpressed pointer", motion)
	}

	drag := km.MapMouse(tea.MouseMsg{X: 6, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if drag == nil || drag.Clicked || !drag.Pressed {
		t.Errorf("drag = %+v, expected a pressed pointer without a click", drag)
	}

	release := km.MapMouse(tea.MouseMsg{X: 6, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if release == nil || release.Pressed || release.Clicked {
		t.Errorf("release = %+v, expected an idle pointer", release)
	}

	if wheel := km.MapMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}); wheel != nil {
		t.Errorf("wheel = %+v, expected nil", wheel)
	}
}

func TestMapMouseKeepsClickWithinTick(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewMultiInputFrame()

	km.MapMouseToMultiFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToMultiFrame(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, &frame)

	ptr := frame.Player1().Pointer
	if ptr == nil || ptr.X != 3 || ptr.Y != 2 {
		t.Fatalf("pointer = %+v, expected the latest position (3, 2)", ptr)
	}
	if !ptr.Clicked {
		t.Error("a click earlier in the tick should be kept")
	}
}
