package hockey

import (
	"time"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
)

const (
	testWidth  = 600
	testHeight = 800
)

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type memStore struct {
	scores map[string]int
	sets   int
}

func newMemStore() *memStore {
	return &memStore{scores: make(map[string]int)}
}

func (s *memStore) HighScore(gameID string) (int, error) {
	return s.scores[gameID], nil
}

func (s *memStore) SetHighScore(gameID string, score int) error {
	s.scores[gameID] = score
	s.sets++
	return nil
}

// newTestWorld returns a 600x800 world with default tuning and everything on
// its starting spot: P2 at (300, 150), P1 at (300, 650), puck at the centre.
// The dead zone spans y 360..440.
func newTestWorld() *World {
	w := NewWorld(config.DefaultHockeyConfig().Table)
	w.Resize(testWidth, testHeight)
	w.ResetPositions()
	return w
}

func testPhysics() config.PhysicsConfig {
	return config.DefaultHockeyConfig().Physics
}

// parkPaddles moves both paddles into the side walls so they cannot touch
// a puck travelling down the middle.
func parkPaddles(w *World) {
	r := w.Table.PaddleRadius
	w.P1.place(core.V(r, w.Dims.Height-r))
	w.P2.place(core.V(r, r))
}
