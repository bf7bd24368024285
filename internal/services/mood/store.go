// Package mood tracks the player's procrastination level and the active
// difficulty. Finished tasks nudge the value down, failed tasks push it up.
package mood

import (
	"log/slog"
	"math"
)

// Initial is the value a new store starts at
const Initial = 0.5

// MaxDifficulty is the highest supported difficulty
const MaxDifficulty = 2

// Level is a coarse reading of the mood value
type Level int

const (
	LevelUnknown Level = iota
	LevelMin
	LevelMedium
	LevelMax
)

func (l Level) String() string {
	switch l {
	case LevelMin:
		return "min"
	case LevelMedium:
		return "medium"
	case LevelMax:
		return "max"
	default:
		return "unknown"
	}
}

// Store holds the mood value in [0,1] and the difficulty in [0,MaxDifficulty]
type Store struct {
	value      float64
	difficulty int
	logger     *slog.Logger
}

// NewStore creates a store at Initial
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{value: Initial, logger: logger}
}

// Adjust adds delta to the value, clamping to [0,1]
func (s *Store) Adjust(delta float64) {
	prev := s.value
	s.value = clamp(s.value + delta)
	s.logger.Debug("mood adjusted", "delta", delta, "from", prev, "to", s.value)
}

// Set replaces the value, clamping to [0,1]
func (s *Store) Set(v float64) {
	s.value = clamp(v)
	s.logger.Debug("mood set", "value", s.value)
}

// Value returns the current mood value
func (s *Store) Value() float64 {
	return s.value
}

// SetDifficulty sets the difficulty, clamping to [0,MaxDifficulty]
func (s *Store) SetDifficulty(d int) {
	switch {
	case d < 0:
		d = 0
	case d > MaxDifficulty:
		d = MaxDifficulty
	}
	s.difficulty = d
	s.logger.Debug("difficulty set", "difficulty", d)
}

// Difficulty returns the current difficulty
func (s *Store) Difficulty() int {
	return s.difficulty
}

// Level classifies the value. A value within tolerance of 0, 0.5 or 1 maps to
// Min, Medium or Max; anything else is Unknown.
func (s *Store) Level(tolerance float64) Level {
	switch {
	case math.Abs(s.value) <= tolerance:
		return LevelMin
	case math.Abs(s.value-0.5) <= tolerance:
		return LevelMedium
	case math.Abs(s.value-1) <= tolerance:
		return LevelMax
	default:
		return LevelUnknown
	}
}

// DifficultyMultiplier scales task deadlines for a difficulty.
// Harder levels leave less time.
func DifficultyMultiplier(d int) float64 {
	switch d {
	case 1:
		return 0.75
	case 2:
		return 0.5
	default:
		return 1.0
	}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
