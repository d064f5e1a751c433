package hockey

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
)

func newTestMatch(opts ...Option) (*Match, *fakeClock) {
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock), WithRand(fixedRand(0.5))}, opts...)
	m := NewMatch(config.DefaultHockeyConfig(), opts...)
	m.SetViewport(testWidth, testHeight)
	return m, clock
}

func TestNewMatchStartsInMenu(t *testing.T) {
	store := newMemStore()
	store.scores[GameID] = 7
	m, _ := newTestMatch(WithHighScores(store))

	snap := m.Snapshot()
	if snap.Status != StatusMenu {
		t.Errorf("status = %s, expected MENU", snap.Status)
	}
	if snap.HighScore != 7 {
		t.Errorf("high score = %d, expected the stored 7", snap.HighScore)
	}
	if snap.Puck != core.V(300, 400) || snap.P1 != core.V(300, 650) || snap.P2 != core.V(300, 150) {
		t.Errorf("menu layout wrong: puck %+v p1 %+v p2 %+v", snap.Puck, snap.P1, snap.P2)
	}
}

func TestStartMatch(t *testing.T) {
	m, _ := newTestMatch()
	m.world.P1.Score = 4
	m.world.Puck.Pos = core.V(10, 10)

	if err := m.OpenDifficultySelect(); err != nil {
		t.Fatalf("OpenDifficultySelect() failed: %v", err)
	}
	if err := m.StartMatch(ModeSingle, config.DifficultyHard); err != nil {
		t.Fatalf("StartMatch() failed: %v", err)
	}

	snap := m.Snapshot()
	if snap.Status != StatusPlaying || snap.Mode != ModeSingle || snap.Difficulty != config.DifficultyHard {
		t.Errorf("unexpected state %s/%s/%s", snap.Status, snap.Mode, snap.Difficulty)
	}
	if snap.Score1 != 0 || snap.Score2 != 0 {
		t.Errorf("scores not reset: %d-%d", snap.Score1, snap.Score2)
	}
	if snap.TimeLeft != 90 {
		t.Errorf("time left = %d, expected 90", snap.TimeLeft)
	}
	if snap.Puck != core.V(300, 400) {
		t.Errorf("puck not on the centre spot: %+v", snap.Puck)
	}
}

func TestStartMatchErrors(t *testing.T) {
	m, _ := newTestMatch()

	if err := m.StartMatch(ModeSingle, "impossible"); !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
	if m.Status() != StatusMenu {
		t.Error("a rejected start should not leave the menu")
	}

	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	if err := m.StartMatch(ModeSingle, config.DifficultyEasy); !errors.Is(err, ErrMatchInProgress) {
		t.Errorf("expected ErrMatchInProgress while playing, got %v", err)
	}
	if err := m.TogglePause(); err != nil {
		t.Fatal(err)
	}
	if err := m.StartMatch(ModeSingle, config.DifficultyEasy); !errors.Is(err, ErrMatchInProgress) {
		t.Errorf("expected ErrMatchInProgress while paused, got %v", err)
	}
}

func TestInvalidTransitions(t *testing.T) {
	m, _ := newTestMatch()

	if err := m.TogglePause(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pause from menu: expected ErrInvalidTransition, got %v", err)
	}

	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	if err := m.OpenDifficultySelect(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("difficulty select while playing: expected ErrInvalidTransition, got %v", err)
	}
}

func TestTickIsNoOpOutsidePlaying(t *testing.T) {
	setups := []struct {
		name  string
		setup func(m *Match)
	}{
		{"menu", func(m *Match) {}},
		{"difficulty select", func(m *Match) { m.OpenDifficultySelect() }},
		{"paused", func(m *Match) {
			m.StartMatch(ModeSingle, config.DifficultyMedium)
			m.TogglePause()
		}},
		{"game over", func(m *Match) {
			m.StartMatch(ModeSingle, config.DifficultyMedium)
			m.EndMatch()
		}},
	}

	for _, tc := range setups {
		t.Run(tc.name, func(t *testing.T) {
			m, clock := newTestMatch()
			tc.setup(m)
			m.world.Puck.Vel = core.V(5, -3)
			m.world.P1.Pos = m.world.P1.Pos.Add(core.V(10, 0))
			worldBefore := *m.world
			snapBefore := m.Snapshot()

			clock.Advance(3 * time.Second)
			for i := 0; i < 10; i++ {
				if res := m.Tick(); len(res.Events) != 0 {
					t.Fatalf("tick produced events %v", res.Events)
				}
			}

			if *m.world != worldBefore {
				t.Error("world changed")
			}
			if m.Snapshot() != snapBefore {
				t.Error("snapshot changed")
			}
		})
	}
}

func TestTickScoresGoal(t *testing.T) {
	m, _ := newTestMatch()
	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	m.world.Puck.Pos = core.V(300, 21)
	m.world.Puck.Vel = core.V(0, -5)

	res := m.Tick()

	if !res.Has(EventGoalP1) || res.Has(EventGoalP2) {
		t.Errorf("events = %v, expected a single P1 goal", res.Events)
	}
	snap := m.Snapshot()
	if snap.Score1 != 1 || snap.Score2 != 0 {
		t.Errorf("score = %d-%d, expected 1-0", snap.Score1, snap.Score2)
	}
	if snap.Puck != core.V(300, 360) {
		t.Errorf("puck = %+v, expected the serve spot (300, 360)", snap.Puck)
	}
	if snap.Status != StatusPlaying {
		t.Error("goals do not end the match")
	}
}

func TestTickUsesDraggedPaddleVelocity(t *testing.T) {
	m, _ := newTestMatch()
	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	m.world.Puck.Pos = core.V(300, 560)

	// Drag P1 up into the puck between two ticks.
	m.SetPaddlePosition(core.Player1, 300, 610)
	m.Tick()

	if m.world.Puck.Vel.Y >= 0 {
		t.Errorf("puck vy = %f, a paddle dragged upward should drive it up", m.world.Puck.Vel.Y)
	}
}

func TestCountdown(t *testing.T) {
	m, clock := newTestMatch()
	if err := m.StartMatch(ModeSingle, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}

	clock.Advance(999 * time.Millisecond)
	if res := m.Tick(); res.Has(EventSecond) {
		t.Error("countdown ticked before a full second")
	}

	clock.Advance(time.Millisecond)
	if res := m.Tick(); !res.Has(EventSecond) {
		t.Error("countdown should tick after one second")
	}
	if got := m.Snapshot().TimeLeft; got != 89 {
		t.Errorf("time left = %d, expected 89", got)
	}

	// A long stall only costs one second per tick.
	clock.Advance(10 * time.Second)
	m.Tick()
	if got := m.Snapshot().TimeLeft; got != 88 {
		t.Errorf("time left = %d, expected 88", got)
	}
}

func TestCountdownEndsMatch(t *testing.T) {
	cfg := config.DefaultHockeyConfig()
	cfg.Match.DurationSecs = 3
	clock := newFakeClock()
	m := NewMatch(cfg, WithClock(clock), WithRand(fixedRand(0.5)))
	m.SetViewport(testWidth, testHeight)
	if err := m.StartMatch(ModeSingle, config.DifficultyEasy); err != nil {
		t.Fatal(err)
	}

	var last TickResult
	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		last = m.Tick()
	}

	if !last.Has(EventGameOver) {
		t.Fatalf("events = %v, expected game over", last.Events)
	}
	snap := m.Snapshot()
	if snap.Status != StatusGameOver || snap.TimeLeft != 0 {
		t.Errorf("status %s time %d, expected GAME_OVER at 0", snap.Status, snap.TimeLeft)
	}
	if snap.Winner != WinnerDraw {
		t.Errorf("winner = %s, expected DRAW at 0-0", snap.Winner)
	}
	if snap.Ticks != 2 {
		t.Errorf("ticks = %d, the final tick should not run physics", snap.Ticks)
	}
}

func TestMultiPlayerIsUntimed(t *testing.T) {
	m, clock := newTestMatch()
	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}

	clock.Advance(5 * time.Minute)
	res := m.Tick()

	if res.Has(EventSecond) || m.Snapshot().TimeLeft != 90 {
		t.Error("multi-player should not count down")
	}
	if m.Status() != StatusPlaying {
		t.Error("multi-player runs until quit")
	}
}

func TestPauseDoesNotChargeTime(t *testing.T) {
	m, clock := newTestMatch()
	if err := m.StartMatch(ModeSingle, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}

	if err := m.TogglePause(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(5 * time.Second)
	if err := m.TogglePause(); err != nil {
		t.Fatal(err)
	}

	if got := m.Snapshot().TimeLeft; got != 90 {
		t.Errorf("time left at resume = %d, expected 90", got)
	}
	if res := m.Tick(); res.Has(EventSecond) {
		t.Error("paused time must not catch up after resume")
	}

	clock.Advance(time.Second)
	m.Tick()
	if got := m.Snapshot().TimeLeft; got != 89 {
		t.Errorf("time left = %d, expected 89", got)
	}
}

func TestEndMatchWinnerAndHighScore(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		score1    int
		score2    int
		winner    Winner
		wantBest  int
		wantSaves int
	}{
		{"new best", ModeSingle, 5, 2, WinnerP1, 5, 1},
		{"below best", ModeSingle, 2, 1, WinnerP1, 3, 0},
		{"computer wins", ModeSingle, 1, 4, WinnerP2, 3, 0},
		{"draw", ModeSingle, 2, 2, WinnerDraw, 3, 0},
		{"multi never records", ModeMulti, 9, 0, WinnerP1, 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			store.scores[GameID] = 3
			m, _ := newTestMatch(WithHighScores(store))
			if err := m.StartMatch(tc.mode, config.DifficultyMedium); err != nil {
				t.Fatal(err)
			}
			m.world.P1.Score = tc.score1
			m.world.P2.Score = tc.score2

			if got := m.EndMatch(); got != tc.winner {
				t.Errorf("winner = %s, expected %s", got, tc.winner)
			}
			if m.Status() != StatusGameOver {
				t.Errorf("status = %s, expected GAME_OVER", m.Status())
			}
			if store.scores[GameID] != tc.wantBest || store.sets != tc.wantSaves {
				t.Errorf("store best %d after %d saves, expected %d after %d",
					store.scores[GameID], store.sets, tc.wantBest, tc.wantSaves)
			}
			if m.Snapshot().HighScore != tc.wantBest {
				t.Errorf("snapshot high score = %d, expected %d", m.Snapshot().HighScore, tc.wantBest)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	m, clock := newTestMatch()
	if _, ok := m.Summary(); ok {
		t.Error("no summary before a match ends")
	}

	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	clock.Advance(4 * time.Second)
	m.TogglePause()
	clock.Advance(3 * time.Second)
	m.TogglePause()
	clock.Advance(2 * time.Second)
	m.world.P2.Score = 2
	m.EndMatch()

	sum, ok := m.Summary()
	if !ok {
		t.Fatal("expected a summary after game over")
	}
	want := core.MatchSummary{Mode: "multi", Difficulty: "medium", Score1: 0, Score2: 2, Winner: "P2", DurationSecs: 6}
	if sum != want {
		t.Errorf("summary = %+v, expected %+v", sum, want)
	}
}

func TestSetPaddlePosition(t *testing.T) {
	m, _ := newTestMatch()

	m.SetPaddlePosition(core.Player1, 100, 700)
	if m.PaddlePosition(core.Player1) != core.V(300, 650) {
		t.Error("input outside PLAYING should be ignored")
	}

	if err := m.StartMatch(ModeSingle, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	m.SetPaddlePosition(core.Player1, -50, 100)
	if got := m.PaddlePosition(core.Player1); got != core.V(35, 475) {
		t.Errorf("P1 = %+v, expected clamped to (35, 475)", got)
	}
	m.SetPaddlePosition(core.Player2, 100, 100)
	if got := m.PaddlePosition(core.Player2); got != core.V(300, 150) {
		t.Errorf("single-player P2 belongs to the computer, got %+v", got)
	}

	m.Quit()
	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	m.SetPaddlePosition(core.Player2, 900, 700)
	if got := m.PaddlePosition(core.Player2); got != core.V(565, 325) {
		t.Errorf("P2 = %+v, expected clamped to (565, 325)", got)
	}
}

func TestSetViewport(t *testing.T) {
	m, _ := newTestMatch()
	m.SetViewport(400, 1000)
	if got := m.Snapshot().Puck; got != core.V(200, 500) {
		t.Errorf("menu resize should recentre the puck, got %+v", got)
	}

	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	m.world.Puck.Pos = core.V(100, 100)
	m.SetViewport(500, 900)

	snap := m.Snapshot()
	if snap.Puck != core.V(100, 100) {
		t.Errorf("resize during play moved the puck to %+v", snap.Puck)
	}
	if snap.Dims.Width != 500 || snap.Dims.DeadZoneTop != 405 {
		t.Errorf("dimensions not updated: %+v", snap.Dims)
	}
}

func TestReturnToMenuAndQuit(t *testing.T) {
	m, _ := newTestMatch()
	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	m.world.Puck.Pos = core.V(100, 100)

	m.ReturnToMenu()
	if m.Status() != StatusMenu || m.world.Puck.Pos != core.V(100, 100) {
		t.Error("ReturnToMenu should keep the table as it is")
	}

	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	m.world.Puck.Pos = core.V(100, 100)
	m.Quit()
	if m.Status() != StatusMenu || m.world.Puck.Pos != core.V(300, 400) {
		t.Error("Quit should return to the menu with a fresh table")
	}
}

// reentrantWriter ticks the match from inside its own log output.
type reentrantWriter struct {
	m      *Match
	nested []TickResult
}

func (w *reentrantWriter) Write(p []byte) (int, error) {
	if w.m != nil {
		w.nested = append(w.nested, w.m.Tick())
	}
	return len(p), nil
}

func TestTickIgnoresReentrantCalls(t *testing.T) {
	out := &reentrantWriter{}
	logger := log.NewWithOptions(out, log.Options{Level: log.DebugLevel})
	m, _ := newTestMatch(WithLogger(logger))
	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	out.m = m

	m.world.Puck.Pos = core.V(300, 21)
	m.world.Puck.Vel = core.V(0, -5)
	m.Tick() // the goal is logged mid-tick

	if len(out.nested) == 0 {
		t.Fatal("expected the goal to be logged")
	}
	for _, res := range out.nested {
		if len(res.Events) != 0 {
			t.Errorf("nested tick ran: %v", res.Events)
		}
	}
	if snap := m.Snapshot(); snap.Ticks != 1 || snap.Score1 != 1 {
		t.Errorf("ticks %d score %d, expected exactly one tick and one goal", snap.Ticks, snap.Score1)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"single", ModeSingle, true},
		{"", ModeSingle, true},
		{"multi", ModeMulti, true},
		{"2", ModeMulti, true},
		{"online", ModeSingle, false},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if (err == nil) != tc.ok || (tc.ok && got != tc.want) {
			t.Errorf("ParseMode(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestShrinkMidMatchKeepsPaddlesOnTable(t *testing.T) {
	for _, status := range []Status{StatusPlaying, StatusPaused} {
		t.Run(status.String(), func(t *testing.T) {
			m, _ := newTestMatch()
			if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
				t.Fatal(err)
			}
			if status == StatusPaused {
				m.TogglePause()
			}

			m.SetViewport(300, 400)
			if m.Status() != status {
				t.Fatalf("resize changed status to %s", m.Status())
			}
			if status == StatusPaused {
				m.TogglePause()
			}
			m.Tick()

			w := m.world
			r := w.Table.PaddleRadius
			for _, side := range []core.PlayerID{core.Player1, core.Player2} {
				pad := w.Paddle(side)
				if pad.Pos.X < r || pad.Pos.X > 300-r || pad.Pos.Y < r || pad.Pos.Y > 400-r {
					t.Errorf("%s out of bounds after tick: %+v in 300x400", side, pad.Pos)
				}
				if pad.Pos != w.ClampPaddle(side, pad.Pos) {
					t.Errorf("%s outside its half: %+v", side, pad.Pos)
				}
				if !pad.Vel.IsZero() {
					t.Errorf("%s picked up velocity %+v from the resize", side, pad.Vel)
				}
			}
		})
	}
}

func TestGrowMidMatchLeavesPaddlesAlone(t *testing.T) {
	m, _ := newTestMatch()
	if err := m.StartMatch(ModeMulti, config.DifficultyMedium); err != nil {
		t.Fatal(err)
	}
	p1, p2 := m.PaddlePosition(core.Player1), m.PaddlePosition(core.Player2)

	m.SetViewport(600, 900)

	if m.PaddlePosition(core.Player1) != p1 || m.PaddlePosition(core.Player2) != p2 {
		t.Errorf("paddles moved on a grow: p1 %+v p2 %+v", m.PaddlePosition(core.Player1), m.PaddlePosition(core.Player2))
	}
}
