package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("Negative sizes should clamp to zero, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("Empty screen should render empty string, got %q", s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X')

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	s.DrawText(18, 0, "Hello") // only "He" fits
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "●●●", ColorBrightCyan)

	// 3 runes centered in 11 columns start at column 4
	if s.Get(4, 0) != '●' || s.Get(6, 0) != '●' {
		t.Errorf("Centered text misplaced: %q", s.Row(0))
	}
	if s.GetCell(5, 0).Color != ColorBrightCyan {
		t.Error("Centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("Corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("Horizontal edge missing at x=%d", x)
		}
	}
}

func TestScreenFillEllipse(t *testing.T) {
	s := NewScreen(20, 10)
	s.FillEllipse(10, 5, 3, 2, '#', ColorBrightGreen)

	if s.Get(10, 5) != '#' {
		t.Error("Ellipse center should be filled")
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Cells far from the ellipse should stay blank")
	}
	if s.Get(14, 5) != ' ' {
		t.Error("Cells beyond the x radius should stay blank")
	}

	// Degenerate radius draws nothing
	s.Clear()
	s.FillEllipse(10, 5, 0, 2, '#', ColorBrightGreen)
	if strings.ContainsRune(s.String(), '#') {
		t.Error("Zero radius ellipse should draw nothing")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(1); got != "BBBBB" {
		t.Errorf("Row(1) = %q, expected BBBBB", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should clear the buffer")
	}
}

func TestMultiInputFrame(t *testing.T) {
	m := NewMultiInputFrame()

	m.Update(Player2, func(f *InputFrame) { f.Set(ActionLeft) })
	if !m.Player2().Has(ActionLeft) {
		t.Error("Player2 should have ActionLeft")
	}
	if m.Player1().Has(ActionLeft) {
		t.Error("Player1 should not see Player2's input")
	}

	m.Update(Player1, func(f *InputFrame) { f.Pointer = &Pointer{X: 3, Y: 4, Pressed: true} })
	if p := m.Player1().Pointer; p == nil || p.X != 3 {
		t.Errorf("Player1 pointer not stored: %+v", p)
	}

	m.Clear()
	if m.Player2().Has(ActionLeft) || m.Player1().Pointer != nil {
		t.Error("Clear should reset actions and pointers")
	}
}
