// Package airhockey adapts the hockey engine to the terminal platform.
// It owns the mapping between screen cells and playfield pixels, turns
// keyboard and mouse input into paddle positions and menu choices, and draws
// engine snapshots into a core.Screen.
package airhockey

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
	"github.com/vovakirdan/tui-hockey/internal/hockey"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// goalFlashTicks is how long the GOAL banner stays up.
const goalFlashTicks = 45

// Game implements the air hockey game for the terminal platform.
type Game struct {
	cfg     config.HockeyConfig
	match   *hockey.Match
	runtime core.RuntimeConfig
	logger  *log.Logger
	clock   hockey.Clock
	start   *autoStart

	cols int
	rows int

	// Menu cursor, reset whenever the status changes.
	cursor     int
	lastStatus hockey.Status

	tick      int
	lastClick int // tick of the previous click, for double-click pause

	flash     int
	flashText string
}

type autoStart struct {
	mode       hockey.Mode
	difficulty config.Difficulty
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes engine logs to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClock replaces the wall clock of the match countdown.
func WithClock(c hockey.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithStart skips the menu and starts a match on every Reset.
func WithStart(mode hockey.Mode, difficulty config.Difficulty) Option {
	return func(g *Game) { g.start = &autoStart{mode: mode, difficulty: difficulty} }
}

// New creates a new game with the given table tuning.
func New(cfg config.HockeyConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return hockey.GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Hockey"
}

// Reset builds a fresh match sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	opts := []hockey.Option{
		hockey.WithRand(rand.New(rand.NewSource(runtime.Seed))),
		hockey.WithLogger(g.logger),
	}
	if runtime.HighScores != nil {
		opts = append(opts, hockey.WithHighScores(runtime.HighScores))
	}
	if g.clock != nil {
		opts = append(opts, hockey.WithClock(g.clock))
	}
	g.match = hockey.NewMatch(g.cfg, opts...)

	g.cursor = 0
	g.lastStatus = hockey.StatusMenu
	g.tick = 0
	g.lastClick = -1 << 30
	g.flash = 0

	g.Resize(runtime.ScreenW, runtime.ScreenH)

	if g.start != nil {
		if err := g.match.StartMatch(g.start.mode, g.start.difficulty); err != nil {
			g.logger.Warn("could not start match", "error", err)
		}
	}
}

// Resize maps a new terminal size onto the playfield. A running match keeps
// its positions.
func (g *Game) Resize(cols, rows int) {
	g.cols, g.rows = cols, rows
	w := float64(max(cols, 0)) * g.cfg.Display.CellWidth
	h := float64(max(rows-hudRows, 0)) * g.cfg.Display.CellHeight
	g.match.SetViewport(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.tick++

	status := g.match.Status()
	if status != g.lastStatus {
		g.cursor = 0
		g.lastStatus = status
	}

	if status == hockey.StatusPlaying {
		g.handlePlay(in.Player1(), in.Player2())
	} else {
		g.handleMenu(g.menuFor(g.match.Snapshot()), in.Player1(), in.Player2())
	}

	res := g.match.Tick()
	switch {
	case res.Has(hockey.EventGoalP1):
		g.showFlash(g.sideName(core.Player1) + " SCORES")
	case res.Has(hockey.EventGoalP2):
		g.showFlash(g.sideName(core.Player2) + " SCORES")
	}
	if g.flash > 0 {
		g.flash--
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) showFlash(text string) {
	g.flash = goalFlashTicks
	g.flashText = "GOAL! " + text
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.match.Snapshot()
	st := core.GameState{
		Score:    snap.Score1,
		GameOver: snap.Status == hockey.StatusGameOver,
		Paused:   snap.Status == hockey.StatusPaused,
		Ranked:   snap.Mode == hockey.ModeSingle,
	}
	if st.GameOver {
		if sum, ok := g.match.Summary(); ok {
			st.Summary = &sum
		}
	}
	return st
}

// Snapshot exposes the engine view, mainly for tests and headless runs.
func (g *Game) Snapshot() hockey.Snapshot {
	return g.match.Snapshot()
}

// sideName is the HUD name of a side in the current mode.
func (g *Game) sideName(side core.PlayerID) string {
	if side == core.Player2 {
		if g.match.Mode() == hockey.ModeSingle {
			return "CPU"
		}
		return "P2"
	}
	if g.match.Mode() == hockey.ModeSingle {
		return "YOU"
	}
	return "P1"
}

// WinnerBanner is the game over headline for a finished match.
func WinnerBanner(mode hockey.Mode, w hockey.Winner) string {
	switch w {
	case hockey.WinnerDraw:
		return "DRAW!"
	case hockey.WinnerP1:
		if mode == hockey.ModeSingle {
			return "YOU WIN!"
		}
		return "P1 WINS"
	case hockey.WinnerP2:
		if mode == hockey.ModeSingle {
			return "COMPUTER WINS"
		}
		return "P2 WINS"
	default:
		return ""
	}
}
