package hockey

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
)

// GameID is the key under which the single-player best is stored.
const GameID = "airhockey"

var (
	// ErrMatchInProgress is returned when starting a match over a running one.
	ErrMatchInProgress = errors.New("hockey: match in progress")
	// ErrInvalidTransition is returned for a state change the current status does not allow.
	ErrInvalidTransition = errors.New("hockey: invalid transition")
)

// Status is the top-level match state.
type Status int

const (
	StatusMenu Status = iota
	StatusDifficultySelect
	StatusPlaying
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "MENU"
	case StatusDifficultySelect:
		return "DIFFICULTY_SELECT"
	case StatusPlaying:
		return "PLAYING"
	case StatusPaused:
		return "PAUSED"
	case StatusGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Mode selects who controls the top paddle.
type Mode int

const (
	ModeSingle Mode = iota // computer opponent, timed
	ModeMulti              // two local players, untimed
)

func (m Mode) String() string {
	if m == ModeMulti {
		return "multi"
	}
	return "single"
}

// ParseMode converts a CLI mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "single", "1":
		return ModeSingle, nil
	case "multi", "2":
		return ModeMulti, nil
	default:
		return ModeSingle, fmt.Errorf("hockey: unknown mode %q (want single or multi)", s)
	}
}

// Winner is the outcome of a finished match.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerP1
	WinnerP2
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerP1:
		return "P1"
	case WinnerP2:
		return "P2"
	case WinnerDraw:
		return "DRAW"
	default:
		return ""
	}
}

// Clock supplies wall-clock time for the countdown.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Event is something that happened during a tick.
type Event int

const (
	EventGoalP1 Event = iota + 1
	EventGoalP2
	EventSecond   // countdown dropped by one second
	EventGameOver // match ended this tick
)

// TickResult lists the events of one tick in the order they happened.
type TickResult struct {
	Events []Event
}

// Has reports whether the tick produced an event.
func (r TickResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}

func (r *TickResult) add(e Event) {
	r.Events = append(r.Events, e)
}

// Snapshot is the read-only view of a match handed to renderers.
type Snapshot struct {
	Dims         Dimensions
	PaddleRadius float64
	PuckRadius   float64
	GoalLeft     float64
	GoalRight    float64

	Puck core.Vec2
	P1   core.Vec2
	P2   core.Vec2

	Score1     int
	Score2     int
	TimeLeft   int
	Status     Status
	Mode       Mode
	Difficulty config.Difficulty
	Winner     Winner
	HighScore  int
	Behavior   Behavior
	Ticks      uint64
}

// Option configures a Match.
type Option func(*Match)

// WithClock replaces the wall clock used by the countdown.
func WithClock(c Clock) Option {
	return func(m *Match) { m.clock = c }
}

// WithRand replaces the random source used for perception error and jitter.
func WithRand(r Rand) Option {
	return func(m *Match) { m.rng = r }
}

// WithLogger sets the match logger. Matches are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) { m.logger = l }
}

// WithHighScores connects the persistence collaborator for the
// single-player best. The stored value is read immediately.
func WithHighScores(s core.HighScoreStore) Option {
	return func(m *Match) { m.store = s }
}

// Match sequences the simulation and owns the top-level status.
// It is not safe for concurrent use; one goroutine drives it.
type Match struct {
	cfg   config.HockeyConfig
	world *World

	status     Status
	mode       Mode
	difficulty config.Difficulty
	profile    config.Profile
	timeLeft   int
	winner     Winner
	highScore  int
	ticks      uint64

	anchor    time.Time // last countdown decrement or resume
	startedAt time.Time
	pausedAt  time.Time
	paused    time.Duration // total time spent paused this match
	endedAt   time.Time

	ticking bool

	clock  Clock
	rng    Rand
	store  core.HighScoreStore
	logger *log.Logger
}

// NewMatch creates a match controller sitting in the menu.
func NewMatch(cfg config.HockeyConfig, opts ...Option) *Match {
	m := &Match{
		cfg:        cfg,
		world:      NewWorld(cfg.Table),
		status:     StatusMenu,
		difficulty: config.DifficultyMedium,
		profile:    cfg.AI.Profiles.Medium,
		timeLeft:   cfg.Match.DurationSecs,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = systemClock{}
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}

	if m.store != nil {
		best, err := m.store.HighScore(GameID)
		if err != nil {
			m.logger.Warn("could not load high score", "error", err)
		} else {
			m.highScore = best
		}
	}
	return m
}

// Status returns the current match status.
func (m *Match) Status() Status { return m.status }

// Mode returns the mode of the current or last match.
func (m *Match) Mode() Mode { return m.mode }

// Difficulty returns the difficulty of the current or last match.
func (m *Match) Difficulty() config.Difficulty { return m.difficulty }

// Config returns the tuning the match runs with.
func (m *Match) Config() config.HockeyConfig { return m.cfg }

// SetViewport resizes the playfield. Entities are only reset in the menu so
// a running match is never restarted; otherwise the paddles are clamped into
// the new bounds.
func (m *Match) SetViewport(width, height float64) {
	m.world.Resize(width, height)
	if m.status == StatusMenu {
		m.world.ResetPositions()
		return
	}
	m.world.ClampPaddles()
}

// SetPaddlePosition is the input path into a paddle. The position is clamped
// to the side's half. In single-player the top paddle belongs to the
// computer and writes to it are ignored.
func (m *Match) SetPaddlePosition(side core.PlayerID, x, y float64) {
	if m.status != StatusPlaying || !m.world.Dims.Valid() {
		return
	}
	if side == core.Player2 && m.mode == ModeSingle {
		return
	}
	m.world.Paddle(side).Pos = m.world.ClampPaddle(side, core.V(x, y))
}

// PaddlePosition returns the current position of a paddle.
func (m *Match) PaddlePosition(side core.PlayerID) core.Vec2 {
	return m.world.Paddle(side).Pos
}

// OpenDifficultySelect moves from the menu to the difficulty picker.
func (m *Match) OpenDifficultySelect() error {
	if m.status != StatusMenu {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.status, StatusDifficultySelect)
	}
	m.status = StatusDifficultySelect
	return nil
}

// StartMatch resets scores, clock and positions and starts playing.
func (m *Match) StartMatch(mode Mode, difficulty config.Difficulty) error {
	if m.status == StatusPlaying || m.status == StatusPaused {
		return ErrMatchInProgress
	}
	prof, err := m.cfg.AI.Profiles.Profile(difficulty)
	if err != nil {
		return err
	}

	m.mode = mode
	m.difficulty = difficulty
	m.profile = prof
	m.world.P1.Score = 0
	m.world.P2.Score = 0
	m.timeLeft = m.cfg.Match.DurationSecs
	m.winner = WinnerNone
	m.ticks = 0
	m.world.ResetPositions()

	now := m.clock.Now()
	m.anchor = now
	m.startedAt = now
	m.paused = 0
	m.status = StatusPlaying

	m.logger.Info("match started", "mode", mode, "difficulty", difficulty)
	return nil
}

// Tick advances the match by one frame. Outside PLAYING it does nothing.
func (m *Match) Tick() TickResult {
	var res TickResult
	if m.status != StatusPlaying || m.ticking {
		return res
	}
	m.ticking = true
	defer func() { m.ticking = false }()

	if m.mode == ModeSingle {
		now := m.clock.Now()
		if now.Sub(m.anchor) >= time.Second {
			m.timeLeft--
			m.anchor = now
			res.add(EventSecond)
			if m.timeLeft <= 0 {
				m.timeLeft = 0
				m.EndMatch()
				res.add(EventGameOver)
				return res
			}
		}
		ComputeAIMove(m.world, m.cfg.AI, m.profile, m.rng)
	}

	m.world.DeriveVelocities()
	switch Advance(m.world, m.cfg.Physics, m.rng) {
	case core.Player1:
		res.add(EventGoalP1)
		m.logger.Debug("goal", "scorer", core.Player1, "score", m.score())
	case core.Player2:
		res.add(EventGoalP2)
		m.logger.Debug("goal", "scorer", core.Player2, "score", m.score())
	}
	m.ticks++
	return res
}

func (m *Match) score() string {
	return fmt.Sprintf("%d-%d", m.world.P1.Score, m.world.P2.Score)
}

// TogglePause switches between PLAYING and PAUSED. Resuming re-anchors the
// countdown so paused time is not charged.
func (m *Match) TogglePause() error {
	now := m.clock.Now()
	switch m.status {
	case StatusPlaying:
		m.status = StatusPaused
		m.pausedAt = now
		m.logger.Debug("paused", "time_left", m.timeLeft)
	case StatusPaused:
		m.status = StatusPlaying
		m.anchor = now
		m.paused += now.Sub(m.pausedAt)
		m.logger.Debug("resumed", "time_left", m.timeLeft)
	default:
		return fmt.Errorf("%w: cannot pause from %s", ErrInvalidTransition, m.status)
	}
	return nil
}

// EndMatch finishes the current match, decides the winner and records a
// new single-player best. It is a no-op unless a match is running.
func (m *Match) EndMatch() Winner {
	if m.status != StatusPlaying && m.status != StatusPaused {
		return m.winner
	}
	now := m.clock.Now()
	if m.status == StatusPaused {
		m.paused += now.Sub(m.pausedAt)
	}
	m.endedAt = now
	m.status = StatusGameOver

	s1, s2 := m.world.P1.Score, m.world.P2.Score
	switch {
	case s1 > s2:
		m.winner = WinnerP1
	case s2 > s1:
		m.winner = WinnerP2
	default:
		m.winner = WinnerDraw
	}

	if m.mode == ModeSingle && s1 > m.highScore {
		m.highScore = s1
		if m.store != nil {
			if err := m.store.SetHighScore(GameID, s1); err != nil {
				m.logger.Warn("could not save high score", "error", err)
			}
		}
		m.logger.Info("new high score", "score", s1)
	}

	m.logger.Info("match over", "winner", m.winner, "score", m.score())
	return m.winner
}

// ReturnToMenu goes back to the menu, leaving the table as it is.
func (m *Match) ReturnToMenu() {
	if m.status == StatusPlaying || m.status == StatusPaused {
		m.logger.Debug("match abandoned", "score", m.score())
	}
	m.status = StatusMenu
}

// Quit goes back to the menu and clears the table.
func (m *Match) Quit() {
	m.ReturnToMenu()
	m.world.ResetPositions()
}

// Summary describes the last finished match. ok is false until a match has
// reached GAME_OVER.
func (m *Match) Summary() (core.MatchSummary, bool) {
	if m.winner == WinnerNone {
		return core.MatchSummary{}, false
	}
	played := m.endedAt.Sub(m.startedAt) - m.paused
	return core.MatchSummary{
		Mode:         m.mode.String(),
		Difficulty:   m.difficulty.String(),
		Score1:       m.world.P1.Score,
		Score2:       m.world.P2.Score,
		Winner:       m.winner.String(),
		DurationSecs: int(max(played, 0).Seconds()),
	}, true
}

// Snapshot returns the state renderers need.
func (m *Match) Snapshot() Snapshot {
	w := m.world
	left, right := w.GoalBounds()
	return Snapshot{
		Dims:         w.Dims,
		PaddleRadius: w.Table.PaddleRadius,
		PuckRadius:   w.Table.PuckRadius,
		GoalLeft:     left,
		GoalRight:    right,
		Puck:         w.Puck.Pos,
		P1:           w.P1.Pos,
		P2:           w.P2.Pos,
		Score1:       w.P1.Score,
		Score2:       w.P2.Score,
		TimeLeft:     m.timeLeft,
		Status:       m.status,
		Mode:         m.mode,
		Difficulty:   m.difficulty,
		Winner:       m.winner,
		HighScore:    m.highScore,
		Behavior:     w.AI.Behavior,
		Ticks:        m.ticks,
	}
}
