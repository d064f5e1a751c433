package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// HighScores persists the single-player best. Nil keeps it in memory.
	HighScores HighScoreStore
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// HighScoreStore is the persistence collaborator for best scores.
// Keys are game identifiers; values are plain integers.
type HighScoreStore interface {
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int) error
}

// MatchSummary describes a finished match for the history log.
type MatchSummary struct {
	Mode         string
	Difficulty   string
	Score1       int
	Score2       int
	Winner       string // "P1", "P2" or "DRAW"
	DurationSecs int
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Player 1 score
	GameOver bool // Whether the match has ended
	Paused   bool // Whether the match is paused
	Ranked   bool // Whether Score belongs on the leaderboard

	// Summary is set once the match is over.
	Summary *MatchSummary
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
