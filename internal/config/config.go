// Package config provides YAML-based table tuning and the difficulty
// profile table for the hockey engine.
package config

// HockeyConfig contains every tunable of the air hockey table.
type HockeyConfig struct {
	Table   TableConfig   `yaml:"table"`
	Physics PhysicsConfig `yaml:"physics"`
	AI      AIConfig      `yaml:"ai"`
	Match   MatchConfig   `yaml:"match"`
	Display DisplayConfig `yaml:"display"`
}

// TableConfig defines the static geometry of the table.
type TableConfig struct {
	PaddleRadius  float64 `yaml:"paddle_radius"`
	PuckRadius    float64 `yaml:"puck_radius"`
	GoalSizeRatio float64 `yaml:"goal_size_ratio"` // goal mouth width as a fraction of table width
	DeadZonePct   float64 `yaml:"dead_zone_pct"`   // dead zone height as a fraction of table height
	HomeOffset    float64 `yaml:"home_offset"`     // paddle start distance from its own goal line
	ServeOffset   float64 `yaml:"serve_offset"`    // puck distance from center after a goal
}

// PhysicsConfig defines puck dynamics and ambient forces.
type PhysicsConfig struct {
	SubSteps          int     `yaml:"sub_steps"`
	MaxSpeed          float64 `yaml:"max_speed"`
	Friction          float64 `yaml:"friction"`
	HitRetain         float64 `yaml:"hit_retain"`       // share of puck velocity kept on a hit
	HitForce          float64 `yaml:"hit_force"`        // multiplier on paddle velocity on a hit
	StaticThreshold   float64 `yaml:"static_threshold"` // paddle axis speed below which it counts as still
	StaticBounce      float64 `yaml:"static_bounce"`
	Jitter            float64 `yaml:"jitter"`
	JitterThreshold   float64 `yaml:"jitter_threshold"`
	DeadZoneSlope     float64 `yaml:"dead_zone_slope"`
	CornerBlowerSize  float64 `yaml:"corner_blower_size"`
	CornerBlowerForce float64 `yaml:"corner_blower_force"`
}

// AIConfig defines the opponent controller heuristics shared by all tiers.
type AIConfig struct {
	Smoothing     float64  `yaml:"smoothing"`
	ReactionFloor int      `yaml:"reaction_floor"`
	UrgencyFrames float64  `yaml:"urgency_frames"`
	StuckSpeed    float64  `yaml:"stuck_speed"`
	StuckTicks    int      `yaml:"stuck_ticks"`
	StuckMargin   float64  `yaml:"stuck_margin"`
	StuckApproach float64  `yaml:"stuck_approach"`
	RetreatBoost  float64  `yaml:"retreat_boost"`
	Lookahead     float64  `yaml:"lookahead"`
	AimShort      float64  `yaml:"aim_short"`
	ShotRange     float64  `yaml:"shot_range"`
	FollowThrough float64  `yaml:"follow_through"`
	Profiles      Profiles `yaml:"profiles"`
}

// Profiles is the difficulty profile table.
type Profiles struct {
	Easy   Profile `yaml:"easy"`
	Medium Profile `yaml:"medium"`
	Hard   Profile `yaml:"hard"`
}

// Profile holds the per-difficulty tuning of the opponent.
type Profile struct {
	Label        string  `yaml:"label"`
	BaseSpeed    float64 `yaml:"base_speed"`    // easing factor while tracking
	ShotSpeed    float64 `yaml:"shot_speed"`    // easing factor while shooting
	ReactionBase int     `yaml:"reaction_base"` // ticks between perception refreshes
	ErrorMargin  float64 `yaml:"error_margin"`  // max perceived x error, pixels
}

// MatchConfig defines match rules.
type MatchConfig struct {
	DurationSecs int `yaml:"duration_secs"`
}

// DisplayConfig maps the pixel playfield onto terminal cells.
type DisplayConfig struct {
	CellWidth   float64 `yaml:"cell_width"`    // playfield pixels per column
	CellHeight  float64 `yaml:"cell_height"`   // playfield pixels per row
	KeyStep     float64 `yaml:"key_step"`      // paddle nudge per key press, pixels
	DoubleTapMs int     `yaml:"double_tap_ms"` // window for the pause double-tap
}
