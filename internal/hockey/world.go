// Package hockey implements the air hockey simulation: the world state, the
// collision and motion resolver, the computer opponent and the match state
// machine that sequences them once per tick.
//
// All positions are playfield pixels with the origin in the top-left corner.
// Player 1 defends the bottom goal, Player 2 (the computer in single-player)
// defends the top goal.
package hockey

import (
	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
)

// Rand is the source of randomness for perception error and puck jitter.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Puck is the single free body on the table.
type Puck struct {
	Pos core.Vec2
	Vel core.Vec2
}

// Speed returns the magnitude of the puck velocity.
func (p Puck) Speed() float64 {
	return p.Vel.Len()
}

// Paddle is a mallet driven by a player or the opponent controller.
// Vel is never set directly: it is derived from the position change since the
// previous tick.
type Paddle struct {
	Pos     core.Vec2
	PrevPos core.Vec2
	Vel     core.Vec2
	Score   int
}

// place moves the paddle without producing a velocity on the next tick.
func (p *Paddle) place(pos core.Vec2) {
	p.Pos = pos
	p.PrevPos = pos
	p.Vel = core.Vec2{}
}

// deriveVelocity sets Vel from the last position change and snaps PrevPos.
func (p *Paddle) deriveVelocity() {
	p.Vel = p.Pos.Sub(p.PrevPos)
	p.PrevPos = p.Pos
}

// Dimensions describes the playfield. The dead zone is a horizontal band
// centred on mid-height.
type Dimensions struct {
	Width          float64
	Height         float64
	DeadZoneTop    float64
	DeadZoneBottom float64
}

// NewDimensions computes the dead zone band for a playfield size.
func NewDimensions(width, height, deadZonePct float64) Dimensions {
	if width <= 0 || height <= 0 {
		return Dimensions{}
	}
	zone := height * deadZonePct
	return Dimensions{
		Width:          width,
		Height:         height,
		DeadZoneTop:    height/2 - zone/2,
		DeadZoneBottom: height/2 + zone/2,
	}
}

// Valid reports whether the playfield has a usable size.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Center returns the centre of the playfield.
func (d Dimensions) Center() core.Vec2 {
	return core.V(d.Width/2, d.Height/2)
}

// InDeadZone reports whether y lies strictly inside the dead zone band.
func (d Dimensions) InDeadZone(y float64) bool {
	return y > d.DeadZoneTop && y < d.DeadZoneBottom
}

// AIState is the opponent controller's private memory.
type AIState struct {
	Behavior          Behavior
	SmoothTarget      core.Vec2
	StuckTimer        int
	ReactionTimer     int
	LastPerceivedPuck core.Vec2
	PerceptionOffset  float64
}

// World is the mutable simulation substrate shared by the resolver, the
// opponent controller and the match controller.
type World struct {
	Dims  Dimensions
	Table config.TableConfig

	Puck Puck
	P1   Paddle
	P2   Paddle
	AI   AIState
}

// NewWorld creates a world with the given table geometry and no size.
// Call Resize before advancing it.
func NewWorld(table config.TableConfig) *World {
	return &World{Table: table}
}

// Resize recomputes the playfield dimensions. Entities are not moved.
func (w *World) Resize(width, height float64) {
	w.Dims = NewDimensions(width, height, w.Table.DeadZonePct)
}

// HomeY is the defensive post of the top paddle, measured from the top edge.
// Small tables pull it in to a quarter of the height.
func (w *World) HomeY() float64 {
	return min(w.Table.HomeOffset, w.Dims.Height/4)
}

// GoalBounds returns the inclusive x range of both goal mouths.
func (w *World) GoalBounds() (left, right float64) {
	goalW := w.Dims.Width * w.Table.GoalSizeRatio
	return w.Dims.Width/2 - goalW/2, w.Dims.Width/2 + goalW/2
}

// InGoalMouth reports whether x lies within the goal mouths.
func (w *World) InGoalMouth(x float64) bool {
	left, right := w.GoalBounds()
	return x >= left && x <= right
}

// ResetPositions puts the puck on the centre spot, both paddles on their
// posts and clears the opponent's memory. Scores are untouched.
func (w *World) ResetPositions() {
	if !w.Dims.Valid() {
		return
	}
	c := w.Dims.Center()
	home := w.HomeY()

	w.Puck = Puck{Pos: c}
	w.P1.place(core.V(c.X, w.Dims.Height-home))
	w.P2.place(core.V(c.X, home))

	w.AI = AIState{
		Behavior:          BehaviorIdle,
		SmoothTarget:      core.V(c.X, home),
		LastPerceivedPuck: c,
	}
}

// ServePuck places the puck after a goal, offset from the centre toward the
// half of the player who conceded, and restarts the opponent's timers.
func (w *World) ServePuck(scorer core.PlayerID) {
	c := w.Dims.Center()
	w.Puck.Vel = core.Vec2{}
	w.Puck.Pos.X = c.X
	if scorer == core.Player1 {
		w.Puck.Pos.Y = c.Y - w.Table.ServeOffset
	} else {
		w.Puck.Pos.Y = c.Y + w.Table.ServeOffset
	}
	w.AI.StuckTimer = 0
	w.AI.ReactionTimer = 0
}

// DeriveVelocities computes both paddle velocities from their movement since
// the previous tick.
func (w *World) DeriveVelocities() {
	w.P1.deriveVelocity()
	w.P2.deriveVelocity()
}

// ClampPaddle bounds a requested paddle position to the legal area of a side:
// inside the table and behind that side's dead zone line.
func (w *World) ClampPaddle(side core.PlayerID, pos core.Vec2) core.Vec2 {
	r := w.Table.PaddleRadius
	d := w.Dims
	x := core.ClampF(pos.X, r, d.Width-r)
	var y float64
	if side == core.Player2 {
		y = core.ClampF(pos.Y, r, d.DeadZoneTop-r)
	} else {
		y = core.ClampF(pos.Y, d.DeadZoneBottom+r, d.Height-r)
	}
	return core.V(x, y)
}

// ClampPaddles pulls both paddles back into their legal areas, e.g. after the
// table shrank. A paddle that moves is re-placed so the snap does not count
// as a drag on the next tick.
func (w *World) ClampPaddles() {
	if !w.Dims.Valid() {
		return
	}
	for _, side := range []core.PlayerID{core.Player1, core.Player2} {
		pad := w.Paddle(side)
		if pos := w.ClampPaddle(side, pad.Pos); pos != pad.Pos {
			pad.place(pos)
		}
	}
}

// Paddle returns the paddle of a side.
func (w *World) Paddle(side core.PlayerID) *Paddle {
	if side == core.Player2 {
		return &w.P2
	}
	return &w.P1
}
