package hockey

import (
	"math"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
)

// Behavior is the opponent's current plan.
type Behavior int

const (
	BehaviorIdle      Behavior = iota // puck in the human half: hold the post and shadow it
	BehaviorIntercept                 // meet the puck a little short of it
	BehaviorShot                      // puck close: drive through it
	BehaviorRetreat                   // puck got behind the paddle: run home
	BehaviorRecover                   // puck stalled on our side: go and fetch it
)

func (b Behavior) String() string {
	switch b {
	case BehaviorIdle:
		return "idle"
	case BehaviorIntercept:
		return "intercept"
	case BehaviorShot:
		return "shot"
	case BehaviorRetreat:
		return "retreat"
	case BehaviorRecover:
		return "recover"
	default:
		return "unknown"
	}
}

// Decision is what the opponent wants to do this tick.
type Decision struct {
	Behavior    Behavior
	Target      core.Vec2
	SpeedFactor float64 // fraction of the remaining distance covered per tick
	YLimit      float64 // deepest y the paddle may reach
}

// Perceived returns where the opponent believes the puck is.
func (a AIState) Perceived() core.Vec2 {
	return core.V(a.LastPerceivedPuck.X+a.PerceptionOffset, a.LastPerceivedPuck.Y)
}

// Classify picks the opponent behavior from the current world without
// modifying it. Perception and stuck timers must be updated first.
func Classify(w *World, t config.AIConfig, prof config.Profile) Decision {
	d := w.Dims
	r := w.Table.PaddleRadius
	seen := w.AI.Perceived()
	home := core.V(d.Width/2, w.HomeY())

	shallow := d.DeadZoneTop - r
	deep := d.Height/2 - r

	if w.AI.StuckTimer > t.StuckTicks {
		return Decision{
			Behavior:    BehaviorRecover,
			Target:      seen,
			SpeedFactor: prof.BaseSpeed * t.StuckApproach,
			YLimit:      deep,
		}
	}

	// Threat is judged on the real puck, the response on the perceived one.
	if w.Puck.Pos.Y < d.Height/2 {
		limit := shallow
		if seen.Y < d.Height/2 {
			limit = deep
		}

		if seen.Y < w.P2.Pos.Y {
			return Decision{
				Behavior:    BehaviorRetreat,
				Target:      home,
				SpeedFactor: prof.BaseSpeed * t.RetreatBoost,
				YLimit:      limit,
			}
		}

		x := seen.X + w.Puck.Vel.X*t.Lookahead
		if math.Abs(seen.Y-w.P2.Pos.Y) < t.ShotRange {
			return Decision{
				Behavior:    BehaviorShot,
				Target:      core.V(x, seen.Y+t.FollowThrough),
				SpeedFactor: prof.ShotSpeed,
				YLimit:      limit,
			}
		}
		return Decision{
			Behavior:    BehaviorIntercept,
			Target:      core.V(x, seen.Y-t.AimShort),
			SpeedFactor: prof.BaseSpeed,
			YLimit:      limit,
		}
	}

	return Decision{
		Behavior:    BehaviorIdle,
		Target:      core.V((d.Width/2+seen.X)/2, home.Y),
		SpeedFactor: prof.BaseSpeed,
		YLimit:      shallow,
	}
}

// ComputeAIMove runs one tick of the opponent: it refreshes perception when
// the reaction timer runs out, classifies, and eases P2 toward the target.
func ComputeAIMove(w *World, t config.AIConfig, prof config.Profile, rng Rand) Decision {
	if !w.Dims.Valid() {
		return Decision{}
	}
	ai := &w.AI
	d := w.Dims

	if w.Puck.Speed() < t.StuckSpeed && w.Puck.Pos.Y < d.Height/2+t.StuckMargin {
		ai.StuckTimer++
	} else {
		ai.StuckTimer = 0
	}

	ai.ReactionTimer--
	if ai.ReactionTimer <= 0 {
		perceive(w, t, prof, rng)
	}

	dec := Classify(w, t, prof)
	ai.Behavior = dec.Behavior

	ai.SmoothTarget = ai.SmoothTarget.Lerp(dec.Target, t.Smoothing)
	pos := w.P2.Pos.Lerp(ai.SmoothTarget, dec.SpeedFactor)

	r := w.Table.PaddleRadius
	pos.X = core.ClampF(pos.X, r, d.Width-r)
	pos.Y = core.ClampF(pos.Y, r, dec.YLimit)
	w.P2.Pos = pos
	return dec
}

// perceive snapshots the puck with a fresh aiming error and schedules the
// next look. Closer pucks are looked at sooner.
func perceive(w *World, t config.AIConfig, prof config.Profile, rng Rand) {
	ai := &w.AI
	ai.LastPerceivedPuck = w.Puck.Pos
	ai.PerceptionOffset = (rng.Float64() - 0.5) * prof.ErrorMargin

	dist := math.Abs(w.Puck.Pos.Y - w.P2.Pos.Y)
	urgency := core.ClampF(1-dist/(w.Dims.Height/2), 0, 1)
	delay := int(math.Floor(float64(prof.ReactionBase) - urgency*t.UrgencyFrames))
	ai.ReactionTimer = max(t.ReactionFloor, delay)
}
