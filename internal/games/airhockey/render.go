package airhockey

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-hockey/internal/core"
	"github.com/vovakirdan/tui-hockey/internal/hockey"
)

// Visual characters for rendering
const (
	PaddleChar    = '█'
	PuckChar      = '●'
	DeadZoneChar  = '░'
	DashChar      = '╌'
	MarkingChar   = '·'
	GoalTopChar   = '▀'
	GoalBelowChar = '▄'
)

// Colors of the table elements.
const (
	colorP1       = core.ColorBrightCyan
	colorP2       = core.ColorBrightMagenta
	colorPuck     = core.ColorBrightYellow
	colorDeadZone = core.ColorDarkGray
	colorDash     = core.ColorRed
	colorMarking  = core.ColorGray
	colorGoal     = core.ColorBrightWhite
)

// centreCircleRadius is the radius of the painted centre circle, in pixels.
const centreCircleRadius = 40

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	snap := g.match.Snapshot()
	if snap.Dims.Valid() {
		g.drawTable(dst, snap)
		g.drawEntities(dst, snap)
	}
	g.drawHUD(dst, snap)

	if snap.Status == hockey.StatusPlaying {
		if g.flash > 0 {
			dst.DrawTextCentered(hudRows+(g.rows-hudRows)/2, " "+g.flashText+" ", core.ColorBrightWhite)
		}
		return
	}
	g.drawMenu(dst, g.menuFor(snap))
}

// drawTable paints the rink markings.
func (g *Game) drawTable(dst *core.Screen, snap hockey.Snapshot) {
	d := snap.Dims
	fieldRows := g.rows - hudRows

	for row := 0; row < fieldRows; row++ {
		y := g.toPixel(0, row+hudRows).Y
		if d.InDeadZone(y) {
			dst.DrawHLine(0, row+hudRows, g.cols, DeadZoneChar, colorDeadZone)
		}
	}
	for _, edge := range []float64{d.DeadZoneTop, d.DeadZoneBottom} {
		_, row := g.toCell(core.V(0, edge))
		for x := 0; x < g.cols; x += 4 {
			dst.DrawHLine(x, int(row), min(2, g.cols-x), DashChar, colorDash)
		}
	}

	c := d.Center()
	g.drawArc(dst, c, centreCircleRadius, 0, 2*math.Pi)
	cx, cy := g.toCell(c)
	dst.SetColor(int(cx), int(cy), MarkingChar, colorMarking)

	cs := g.cfg.Physics.CornerBlowerSize
	g.drawArc(dst, core.V(0, 0), cs, 0, math.Pi/2)
	g.drawArc(dst, core.V(d.Width, 0), cs, math.Pi/2, math.Pi)
	g.drawArc(dst, core.V(d.Width, d.Height), cs, math.Pi, 1.5*math.Pi)
	g.drawArc(dst, core.V(0, d.Height), cs, 1.5*math.Pi, 2*math.Pi)

	left, _ := g.toCell(core.V(snap.GoalLeft, 0))
	right, _ := g.toCell(core.V(snap.GoalRight, 0))
	for x := int(left); x <= int(right); x++ {
		dst.SetColor(x, hudRows, GoalTopChar, colorGoal)
		dst.SetColor(x, g.rows-1, GoalBelowChar, colorGoal)
	}
}

// drawArc marks the cells along a circle arc given in pixels.
func (g *Game) drawArc(dst *core.Screen, centre core.Vec2, radius, from, to float64) {
	if radius <= 0 {
		return
	}
	step := g.cfg.Display.CellWidth / (2 * radius)
	for a := from; a <= to; a += step {
		x, y := g.toCell(centre.Add(core.V(math.Cos(a)*radius, math.Sin(a)*radius)))
		if int(y) < hudRows {
			continue
		}
		dst.SetColor(int(x), int(y), MarkingChar, colorMarking)
	}
}

// drawEntities paints both paddles and the puck.
func (g *Game) drawEntities(dst *core.Screen, snap hockey.Snapshot) {
	disp := g.cfg.Display
	draw := func(pos core.Vec2, radius float64, ch rune, c core.Color) {
		x, y := g.toCell(pos)
		dst.FillEllipse(x, y, radius/disp.CellWidth, radius/disp.CellHeight, ch, c)
		// Small bodies can fall between cell centres.
		dst.SetColor(int(x), int(y), ch, c)
	}
	draw(snap.P2, snap.PaddleRadius, PaddleChar, colorP2)
	draw(snap.P1, snap.PaddleRadius, PaddleChar, colorP1)
	draw(snap.Puck, snap.PuckRadius, PuckChar, colorPuck)
}

// drawHUD paints the score line.
func (g *Game) drawHUD(dst *core.Screen, snap hockey.Snapshot) {
	dst.DrawHLine(0, 0, g.cols, ' ', core.ColorDefault)
	dst.DrawTextColor(1, 0, fmt.Sprintf("%s %d", g.sideName(core.Player1), snap.Score1), colorP1)

	right := fmt.Sprintf("%d %s", snap.Score2, g.sideName(core.Player2))
	dst.DrawTextColor(g.cols-len([]rune(right))-1, 0, right, colorP2)

	var centre string
	switch {
	case snap.Status == hockey.StatusMenu || snap.Status == hockey.StatusDifficultySelect:
		centre = fmt.Sprintf("BEST %d", snap.HighScore)
	case snap.Mode == hockey.ModeSingle:
		centre = fmt.Sprintf("%s  %s", FormatClock(snap.TimeLeft), g.cfg.AI.Profiles.Label(snap.Difficulty))
	default:
		centre = "FREE PLAY"
	}
	dst.DrawTextCentered(0, centre, core.ColorBrightWhite)
}

// drawMenu paints a menu overlay with the cursor on the selected item.
func (g *Game) drawMenu(dst *core.Screen, m menu) {
	if len(m.items) == 0 {
		return
	}
	r := g.menuRect(m)
	for y := r.Y; y < r.Bottom(); y++ {
		dst.DrawHLine(r.X, y, r.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(r, core.ColorBrightCyan)
	dst.DrawTextColor(r.X+(r.W-len([]rune(m.title)))/2, r.Y+1, m.title, core.ColorBrightYellow)

	for i, line := range m.lines {
		dst.DrawTextColor(r.X+(r.W-len([]rune(line)))/2, r.Y+2+i, line, core.ColorWhite)
	}
	for i, item := range m.items {
		row := g.menuItemRow(m, i)
		if i == g.cursor {
			dst.DrawTextColor(r.X+2, row, "> "+item, core.ColorBrightGreen)
		} else {
			dst.DrawTextColor(r.X+2, row, "  "+item, core.ColorGray)
		}
	}
}

// FormatClock renders seconds as m:ss.
func FormatClock(secs int) string {
	secs = max(secs, 0)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
