package config

import (
	"errors"
	"fmt"
)

// Validate checks that the tuning describes a playable table.
// All problems are reported together.
func (c HockeyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	t := c.Table
	check(t.PaddleRadius > 0, "table.paddle_radius must be positive, got %g", t.PaddleRadius)
	check(t.PuckRadius > 0, "table.puck_radius must be positive, got %g", t.PuckRadius)
	check(t.GoalSizeRatio > 0 && t.GoalSizeRatio <= 1, "table.goal_size_ratio must be in (0, 1], got %g", t.GoalSizeRatio)
	check(t.DeadZonePct >= 0 && t.DeadZonePct < 1, "table.dead_zone_pct must be in [0, 1), got %g", t.DeadZonePct)
	check(t.HomeOffset > 0, "table.home_offset must be positive, got %g", t.HomeOffset)
	check(t.ServeOffset >= 0, "table.serve_offset must not be negative, got %g", t.ServeOffset)

	p := c.Physics
	check(p.SubSteps >= 1, "physics.sub_steps must be at least 1, got %d", p.SubSteps)
	check(p.MaxSpeed > 0, "physics.max_speed must be positive, got %g", p.MaxSpeed)
	check(p.Friction > 0 && p.Friction < 1, "physics.friction must be in (0, 1), got %g", p.Friction)
	check(p.HitRetain >= 0, "physics.hit_retain must not be negative, got %g", p.HitRetain)
	check(p.HitForce >= 0, "physics.hit_force must not be negative, got %g", p.HitForce)
	check(p.CornerBlowerSize >= 0, "physics.corner_blower_size must not be negative, got %g", p.CornerBlowerSize)

	a := c.AI
	check(a.Smoothing > 0 && a.Smoothing <= 1, "ai.smoothing must be in (0, 1], got %g", a.Smoothing)
	check(a.ReactionFloor >= 1, "ai.reaction_floor must be at least 1, got %d", a.ReactionFloor)
	check(a.StuckTicks >= 0, "ai.stuck_ticks must not be negative, got %d", a.StuckTicks)
	for _, d := range Difficulties {
		prof, _ := a.Profiles.Profile(d)
		check(prof.BaseSpeed > 0 && prof.BaseSpeed <= 1, "ai.profiles.%s.base_speed must be in (0, 1], got %g", d, prof.BaseSpeed)
		check(prof.ShotSpeed > 0 && prof.ShotSpeed <= 1, "ai.profiles.%s.shot_speed must be in (0, 1], got %g", d, prof.ShotSpeed)
		check(prof.ReactionBase >= 0, "ai.profiles.%s.reaction_base must not be negative, got %d", d, prof.ReactionBase)
		check(prof.ErrorMargin >= 0, "ai.profiles.%s.error_margin must not be negative, got %g", d, prof.ErrorMargin)
	}

	check(c.Match.DurationSecs > 0, "match.duration_secs must be positive, got %d", c.Match.DurationSecs)

	d := c.Display
	check(d.CellWidth > 0 && d.CellHeight > 0, "display cell size must be positive, got %gx%g", d.CellWidth, d.CellHeight)
	check(d.KeyStep > 0, "display.key_step must be positive, got %g", d.KeyStep)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid hockey config: %w", errors.Join(errs...))
	}
	return nil
}
