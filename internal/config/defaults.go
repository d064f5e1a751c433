package config

import (
	_ "embed"
)

//go:embed defaults/hockey.yaml
var defaultHockeyYAML []byte

// DefaultHockeyConfig returns the built-in table tuning.
// It mirrors defaults/hockey.yaml and is used when the embedded file cannot be parsed.
func DefaultHockeyConfig() HockeyConfig {
	return HockeyConfig{
		Table: TableConfig{
			PaddleRadius:  35,
			PuckRadius:    20,
			GoalSizeRatio: 0.35,
			DeadZonePct:   0.10,
			HomeOffset:    150,
			ServeOffset:   40,
		},
		Physics: PhysicsConfig{
			SubSteps:          5,
			MaxSpeed:          25,
			Friction:          0.99,
			HitRetain:         0.4,
			HitForce:          1.15,
			StaticThreshold:   1.0,
			StaticBounce:      0.6,
			Jitter:            0.05,
			JitterThreshold:   0.5,
			DeadZoneSlope:     0.02,
			CornerBlowerSize:  60,
			CornerBlowerForce: 0.3,
		},
		AI: AIConfig{
			Smoothing:     0.15,
			ReactionFloor: 3,
			UrgencyFrames: 5,
			StuckSpeed:    1.0,
			StuckTicks:    60,
			StuckMargin:   50,
			StuckApproach: 0.8,
			RetreatBoost:  2.0,
			Lookahead:     10,
			AimShort:      30,
			ShotRange:     100,
			FollowThrough: 60,
			Profiles: Profiles{
				Easy:   Profile{Label: "Easy", BaseSpeed: 0.035, ShotSpeed: 0.15, ReactionBase: 25, ErrorMargin: 35},
				Medium: Profile{Label: "Medium", BaseSpeed: 0.07, ShotSpeed: 0.22, ReactionBase: 18, ErrorMargin: 12},
				Hard:   Profile{Label: "Hard", BaseSpeed: 0.12, ShotSpeed: 0.30, ReactionBase: 8, ErrorMargin: 2},
			},
		},
		Match: MatchConfig{
			DurationSecs: 90,
		},
		Display: DisplayConfig{
			CellWidth:   12,
			CellHeight:  24,
			KeyStep:     18,
			DoubleTapMs: 400,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHockeyYAML
}
