// Package storage provides SQLite-based persistence for hockey scores and
// match history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hockey/internal/core"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Store backs the engine's single-player best.
var _ core.HighScoreStore = (*Store)(nil)

// ScoreEntry is one finished single-player match on the leaderboard.
type ScoreEntry struct {
	ID         int64
	GameID     string
	Score      int
	Difficulty string
	CreatedAt  time.Time
}

// MatchRecord is one finished match in the history table.
type MatchRecord struct {
	ID           int64
	Mode         string
	Difficulty   string
	Score1       int
	Score2       int
	Winner       string // "P1", "P2" or "DRAW"
	DurationSecs int
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a single-player result on the leaderboard.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int, difficulty string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, difficulty) VALUES (?, ?, ?)",
		gameID, score, difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game, optionally for
// one difficulty. An empty difficulty covers all of them.
// Results are ordered by score descending, oldest first on ties.
func (s *Store) TopScores(gameID, difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, difficulty, created_at
		 FROM scores
		 WHERE game_id = ? AND (? = '' OR difficulty = ?)
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearScores deletes the leaderboard and the stored best for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE key = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// HighScore returns the stored best for the given key.
// Returns 0 if nothing has been stored yet.
func (s *Store) HighScore(gameID string) (int, error) {
	var value int
	err := s.db.QueryRow(
		"SELECT value FROM high_scores WHERE key = ?",
		gameID,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return value, nil
}

// SetHighScore stores the best for the given key, replacing any previous value.
func (s *Store) SetHighScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m core.MatchSummary) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches (mode, difficulty, score1, score2, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.Mode, m.Difficulty, m.Score1, m.Score2, m.Winner, m.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, difficulty, score1, score2, winner, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Mode,
			&r.Difficulty,
			&r.Score1,
			&r.Score2,
			&r.Winner,
			&r.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// MatchStats aggregates single-player results against the computer.
type MatchStats struct {
	Played       int
	Wins         int
	Losses       int
	Draws        int
	GoalsFor     int
	GoalsAgainst int
}

// SinglePlayerStats summarises the single-player history, optionally for one
// difficulty. An empty difficulty covers all of them.
func (s *Store) SinglePlayerStats(difficulty string) (MatchStats, error) {
	var st MatchStats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'P1'), 0),
		        COALESCE(SUM(winner = 'P2'), 0),
		        COALESCE(SUM(winner = 'DRAW'), 0),
		        COALESCE(SUM(score1), 0),
		        COALESCE(SUM(score2), 0)
		 FROM matches
		 WHERE mode = 'single' AND (? = '' OR difficulty = ?)`,
		difficulty, difficulty,
	).Scan(&st.Played, &st.Wins, &st.Losses, &st.Draws, &st.GoalsFor, &st.GoalsAgainst)
	if err != nil {
		return MatchStats{}, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	return st, nil
}

// parseTime handles both driver-decoded times and raw SQLite datetime text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
