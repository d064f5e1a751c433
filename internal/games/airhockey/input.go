package airhockey

import (
	"fmt"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
	"github.com/vovakirdan/tui-hockey/internal/hockey"
)

// toPixel converts a screen cell to the playfield pixel at its centre.
func (g *Game) toPixel(col, row int) core.Vec2 {
	d := g.cfg.Display
	return core.V((float64(col)+0.5)*d.CellWidth, (float64(row-hudRows)+0.5)*d.CellHeight)
}

// toCell converts a playfield pixel to fractional screen cell coordinates.
func (g *Game) toCell(p core.Vec2) (x, y float64) {
	d := g.cfg.Display
	return p.X / d.CellWidth, hudRows + p.Y/d.CellHeight
}

// doubleTapTicks is the double-click window in ticks.
func (g *Game) doubleTapTicks() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.cfg.Display.DoubleTapMs * rate / 1000
}

// doubleClick records a click and reports whether it completes a double-click.
func (g *Game) doubleClick() bool {
	if g.tick-g.lastClick <= g.doubleTapTicks() {
		g.lastClick = -1 << 30
		return true
	}
	g.lastClick = g.tick
	return false
}

// inCentreBand reports whether a screen row lies on the dead zone band.
func (g *Game) inCentreBand(row int) bool {
	d := g.match.Snapshot().Dims
	y := g.toPixel(0, row).Y
	return y >= d.DeadZoneTop-g.cfg.Display.CellHeight/2 && y <= d.DeadZoneBottom+g.cfg.Display.CellHeight/2
}

// handlePlay applies one tick of in-match input.
func (g *Game) handlePlay(p1, p2 core.InputFrame) {
	if p1.Has(core.ActionPause) || p1.Has(core.ActionBack) {
		g.togglePause()
		return
	}

	if g.match.Mode() == hockey.ModeSingle {
		// Both key clusters steer the only human paddle.
		g.nudge(core.Player1, p1)
		g.nudge(core.Player1, p2)
	} else {
		g.nudge(core.Player1, p1)
		g.nudge(core.Player2, p2)
	}

	ptr := p1.Pointer
	if ptr == nil {
		return
	}
	if ptr.Clicked && g.inCentreBand(ptr.Y) && g.doubleClick() {
		g.togglePause()
		return
	}

	// Paddles follow the mouse only while the button is held.
	if !ptr.Pressed {
		return
	}
	pos := g.toPixel(ptr.X, ptr.Y)
	side := core.Player1
	if pos.Y < g.match.Snapshot().Dims.Height/2 {
		if g.match.Mode() == hockey.ModeSingle {
			return
		}
		side = core.Player2
	}
	g.match.SetPaddlePosition(side, pos.X, pos.Y)
}

// nudge moves a paddle one key step per pressed direction.
func (g *Game) nudge(side core.PlayerID, in core.InputFrame) {
	var dir core.Vec2
	if in.Has(core.ActionUp) {
		dir.Y--
	}
	if in.Has(core.ActionDown) {
		dir.Y++
	}
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionRight) {
		dir.X++
	}
	if dir.IsZero() {
		return
	}
	pos := g.match.PaddlePosition(side).Add(dir.Scale(g.cfg.Display.KeyStep))
	g.match.SetPaddlePosition(side, pos.X, pos.Y)
}

func (g *Game) togglePause() {
	if err := g.match.TogglePause(); err != nil {
		g.logger.Debug("pause ignored", "error", err)
	}
}

// menu is an overlay shown outside PLAYING.
type menu struct {
	title string
	lines []string
	items []string
}

// menuFor returns the overlay for the current status.
func (g *Game) menuFor(snap hockey.Snapshot) menu {
	switch snap.Status {
	case hockey.StatusMenu:
		m := menu{
			title: "NEON HOCKEY",
			items: []string{"Single Player", "Multi Player"},
		}
		if snap.HighScore > 0 {
			m.lines = []string{fmt.Sprintf("Best: %d", snap.HighScore)}
		}
		return m
	case hockey.StatusDifficultySelect:
		items := make([]string, 0, len(config.Difficulties)+1)
		for _, d := range config.Difficulties {
			items = append(items, g.cfg.AI.Profiles.Label(d))
		}
		return menu{title: "DIFFICULTY", items: append(items, "Back")}
	case hockey.StatusPaused:
		return menu{title: "PAUSED", items: []string{"Resume", "Restart", "Quit"}}
	case hockey.StatusGameOver:
		return menu{
			title: WinnerBanner(snap.Mode, snap.Winner),
			lines: []string{fmt.Sprintf("%s %d - %d %s", g.sideName(core.Player1), snap.Score1, snap.Score2, g.sideName(core.Player2))},
			items: []string{"Play Again", "Menu"},
		}
	}
	return menu{}
}

// handleMenu applies one tick of menu input.
func (g *Game) handleMenu(m menu, p1, p2 core.InputFrame) {
	n := len(m.items)
	if n == 0 {
		return
	}
	status := g.match.Status()

	switch {
	case p1.Has(core.ActionUp) || p2.Has(core.ActionUp):
		g.cursor = (g.cursor - 1 + n) % n
	case p1.Has(core.ActionDown) || p2.Has(core.ActionDown):
		g.cursor = (g.cursor + 1) % n
	case p1.Has(core.ActionConfirm):
		g.choose(status, g.cursor)
		return
	case p1.Has(core.ActionBack):
		g.back(status)
		return
	case p1.Has(core.ActionPause) && status == hockey.StatusPaused:
		g.togglePause()
		return
	case p1.Has(core.ActionRestart) && status == hockey.StatusGameOver:
		g.choose(status, 0)
		return
	}

	ptr := p1.Pointer
	if ptr == nil {
		return
	}
	if i := g.menuItemAt(m, ptr.X, ptr.Y); i >= 0 {
		g.cursor = i
		if ptr.Clicked {
			g.choose(status, i)
		}
		return
	}
	if ptr.Clicked && status == hockey.StatusPaused && g.inCentreBand(ptr.Y) && g.doubleClick() {
		g.togglePause()
	}
}

// choose activates menu item i of the given status.
func (g *Game) choose(status hockey.Status, i int) {
	var err error
	switch status {
	case hockey.StatusMenu:
		if i == 0 {
			err = g.match.OpenDifficultySelect()
		} else {
			err = g.match.StartMatch(hockey.ModeMulti, config.DifficultyMedium)
		}
	case hockey.StatusDifficultySelect:
		if i < len(config.Difficulties) {
			err = g.match.StartMatch(hockey.ModeSingle, config.Difficulties[i])
		} else {
			g.match.ReturnToMenu()
		}
	case hockey.StatusPaused:
		switch i {
		case 0:
			err = g.match.TogglePause()
		case 1:
			g.match.ReturnToMenu()
		default:
			g.match.Quit()
		}
	case hockey.StatusGameOver:
		if i == 0 {
			err = g.match.StartMatch(g.match.Mode(), g.match.Difficulty())
		} else {
			g.match.ReturnToMenu()
		}
	}
	if err != nil {
		g.logger.Debug("menu choice ignored", "status", status, "item", i, "error", err)
	}
}

// back handles Esc in a menu.
func (g *Game) back(status hockey.Status) {
	switch status {
	case hockey.StatusDifficultySelect, hockey.StatusGameOver:
		g.match.ReturnToMenu()
	case hockey.StatusPaused:
		g.togglePause()
	}
}

// menuRect returns the screen box of a menu overlay.
func (g *Game) menuRect(m menu) core.Rect {
	width := len([]rune(m.title))
	for _, s := range append(append([]string{}, m.lines...), m.items...) {
		width = max(width, len([]rune(s))+2)
	}
	width += 6
	height := len(m.lines) + len(m.items) + 4
	return core.NewRect((g.cols-width)/2, (g.rows-height)/2, width, height)
}

// menuItemRow returns the screen row of item i.
func (g *Game) menuItemRow(m menu, i int) int {
	return g.menuRect(m).Y + 2 + len(m.lines) + i
}

// menuItemAt returns the item under a screen cell, or -1.
func (g *Game) menuItemAt(m menu, col, row int) int {
	r := g.menuRect(m)
	if col <= r.X || col >= r.Right()-1 {
		return -1
	}
	for i := range m.items {
		if g.menuItemRow(m, i) == row {
			return i
		}
	}
	return -1
}
