package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned for difficulty names outside the table.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Difficulty represents an opponent tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the tiers in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty converts a user-supplied name to a Difficulty.
// The empty string selects medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e":
		return DifficultyEasy, nil
	case "", "medium", "normal", "m":
		return DifficultyMedium, nil
	case "hard", "h":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w %q (want easy, medium or hard)", ErrUnknownDifficulty, s)
	}
}

// String returns the lowercase name of the tier.
func (d Difficulty) String() string {
	return string(d)
}

// Profile returns the opponent profile for a tier.
func (p Profiles) Profile(d Difficulty) (Profile, error) {
	switch d {
	case DifficultyEasy:
		return p.Easy, nil
	case DifficultyMedium:
		return p.Medium, nil
	case DifficultyHard:
		return p.Hard, nil
	default:
		return Profile{}, fmt.Errorf("%w %q", ErrUnknownDifficulty, string(d))
	}
}

// Label returns the display label of a tier, falling back to its name.
func (p Profiles) Label(d Difficulty) string {
	prof, err := p.Profile(d)
	if err != nil || prof.Label == "" {
		return strings.ToUpper(string(d))
	}
	return prof.Label
}
