package hockey

import (
	"math"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
)

// separationSlop keeps a resolved puck strictly outside the paddle.
const separationSlop = 1e-6

// Advance moves the puck through one tick of SubSteps sub-steps, resolving
// walls, goals and paddle hits, then applies the once-per-tick ambient forces.
//
// Paddle velocities must already be derived for this tick.
// Returns the player who scored, or 0 if no goal was registered.
func Advance(w *World, p config.PhysicsConfig, rng Rand) core.PlayerID {
	if !w.Dims.Valid() {
		return 0
	}

	steps := max(p.SubSteps, 1)
	scorer := core.PlayerID(0)
	for i := 0; i < steps && scorer == 0; i++ {
		scorer = subStep(w, p, steps)
	}

	applyAmbientForces(w, p, rng)
	containPuck(w, p)
	return scorer
}

// subStep integrates one slice of the tick. A goal ends the slice early and
// skips paddle resolution.
func subStep(w *World, p config.PhysicsConfig, steps int) core.PlayerID {
	puck := &w.Puck
	r := w.Table.PuckRadius
	d := w.Dims

	puck.Pos = puck.Pos.Add(puck.Vel.Scale(1 / float64(steps)))

	if puck.Pos.X < r {
		puck.Pos.X = r
		puck.Vel.X = math.Abs(puck.Vel.X)
	} else if puck.Pos.X > d.Width-r {
		puck.Pos.X = d.Width - r
		puck.Vel.X = -math.Abs(puck.Vel.X)
	}

	switch {
	case puck.Pos.Y < r:
		if w.InGoalMouth(puck.Pos.X) {
			w.P1.Score++
			w.ServePuck(core.Player1)
			return core.Player1
		}
		puck.Pos.Y = r
		puck.Vel.Y = math.Abs(puck.Vel.Y)
	case puck.Pos.Y > d.Height-r:
		if w.InGoalMouth(puck.Pos.X) {
			w.P2.Score++
			w.ServePuck(core.Player2)
			return core.Player2
		}
		puck.Pos.Y = d.Height - r
		puck.Vel.Y = -math.Abs(puck.Vel.Y)
	}

	resolvePaddle(w, core.Player1, p)
	resolvePaddle(w, core.Player2, p)
	return 0
}

// resolvePaddle separates the puck from one paddle and transfers the
// paddle's drag velocity into it. Reports whether they collided.
func resolvePaddle(w *World, side core.PlayerID, p config.PhysicsConfig) bool {
	pad := w.Paddle(side)
	puck := &w.Puck
	minDist := w.Table.PaddleRadius + w.Table.PuckRadius

	delta := puck.Pos.Sub(pad.Pos)
	dist := delta.Len()
	if dist >= minDist {
		return false
	}

	n := delta.Normalize()
	if n.IsZero() {
		n = fallbackNormal(side)
	}
	puck.Pos = pad.Pos.Add(n.Scale(minDist + separationSlop))

	puck.Vel = puck.Vel.Scale(p.HitRetain).Add(pad.Vel.Scale(p.HitForce))

	// A still paddle has no drag velocity to give, so bounce off it instead.
	if math.Abs(pad.Vel.X) < p.StaticThreshold && math.Abs(pad.Vel.Y) < p.StaticThreshold {
		puck.Vel = puck.Vel.Add(n.Scale(puck.Speed() * p.StaticBounce))
	}

	puck.Vel = puck.Vel.ClampLen(p.MaxSpeed)
	w.AI.StuckTimer = 0
	return true
}

// fallbackNormal is used when the centres coincide: push toward the
// opponent's goal.
func fallbackNormal(side core.PlayerID) core.Vec2 {
	if side == core.Player2 {
		return core.V(0, 1)
	}
	return core.V(0, -1)
}

// applyAmbientForces runs once per tick after the sub-steps.
func applyAmbientForces(w *World, p config.PhysicsConfig, rng Rand) {
	puck := &w.Puck
	d := w.Dims

	puck.Vel = puck.Vel.Scale(p.Friction)

	// Jitter breaks up perfectly vertical rallies.
	if math.Abs(puck.Vel.Y) > p.JitterThreshold {
		puck.Vel.X += (rng.Float64() - 0.5) * p.Jitter
	}

	if d.InDeadZone(puck.Pos.Y) {
		if puck.Pos.Y < d.Height/2 {
			puck.Vel.Y -= p.DeadZoneSlope
		} else {
			puck.Vel.Y += p.DeadZoneSlope
		}
	}

	cs, f := p.CornerBlowerSize, p.CornerBlowerForce
	x, y := puck.Pos.X, puck.Pos.Y
	left, right := x < cs, x > d.Width-cs
	top, bottom := y < cs, y > d.Height-cs
	switch {
	case left && top:
		puck.Vel = puck.Vel.Add(core.V(f, f))
	case right && top:
		puck.Vel = puck.Vel.Add(core.V(-f, f))
	case left && bottom:
		puck.Vel = puck.Vel.Add(core.V(f, -f))
	case right && bottom:
		puck.Vel = puck.Vel.Add(core.V(-f, -f))
	}
}

// containPuck enforces the end-of-tick bounds: speed cap, and position inside
// the table except across a goal mouth.
func containPuck(w *World, p config.PhysicsConfig) {
	puck := &w.Puck
	r := w.Table.PuckRadius
	d := w.Dims

	puck.Vel = puck.Vel.ClampLen(p.MaxSpeed)
	puck.Pos.X = core.ClampF(puck.Pos.X, r, d.Width-r)
	if !w.InGoalMouth(puck.Pos.X) {
		puck.Pos.Y = core.ClampF(puck.Pos.Y, r, d.Height-r)
	}
}
