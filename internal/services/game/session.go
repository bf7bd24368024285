// Package game wires the orchestrator, notification presenter, mood store and
// level loader into one play session. Both the TUI and the headless simulator
// drive a Session.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/riordanpawley/questlog/internal/config"
	"github.com/riordanpawley/questlog/internal/services/loader"
	"github.com/riordanpawley/questlog/internal/services/mood"
	"github.com/riordanpawley/questlog/internal/services/notify"
	"github.com/riordanpawley/questlog/internal/services/orchestrator"
)

// Session owns the gameplay services for one run of the game
type Session struct {
	ID        string
	Orch      *orchestrator.Orchestrator
	Presenter *notify.Presenter
	Mood      *mood.Store
	Audio     *notify.ClipPlayer

	level  *loader.Level
	runID  string
	clock  time.Duration
	logger *slog.Logger
}

// New creates a session from configuration. The session id is attached to
// every log record.
func New(cfg *config.Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	logger = logger.With("session", id)

	audio := notify.NewClipPlayer()
	presenter := notify.New(cfg.NotifyConfig(), audio, logger.With("component", "notify"))

	store := mood.NewStore(logger.With("component", "mood"))
	store.Set(cfg.Mood.Initial)
	store.SetDifficulty(cfg.Game.Difficulty)

	orch := orchestrator.New(
		orchestrator.WithLogger(logger.With("component", "orchestrator")),
		orchestrator.WithNotifier(presenter),
		orchestrator.WithMoodStore(store),
		orchestrator.WithMoodDeltas(cfg.Mood.CompletedDelta, cfg.Mood.FailedDelta),
	)

	return &Session{
		ID:        id,
		Orch:      orch,
		Presenter: presenter,
		Mood:      store,
		Audio:     audio,
		logger:    logger,
	}
}

// Start clears the orchestrator and adds the level's tasks, scaled by the
// current difficulty
func (s *Session) Start(level *loader.Level) {
	s.Orch.Clear()
	s.level = level
	s.runID = uuid.NewString()

	multiplier := mood.DifficultyMultiplier(s.Mood.Difficulty())
	s.logger.Info("level started",
		"level", level.Name,
		"run", s.runID,
		"tasks", len(level.Tasks),
		"multiplier", multiplier)
	loader.Apply(s.Orch, level, multiplier)
}

// Load resolves a level by name or path and starts it
func (s *Session) Load(ref string) error {
	level, err := loader.Load(ref)
	if err != nil {
		return fmt.Errorf("failed to load level %s: %w", ref, err)
	}
	s.Start(level)
	return nil
}

// HasNext reports whether the current level chains to another
func (s *Session) HasNext() bool {
	return s.level != nil && s.level.Next != ""
}

// Next moves to the following level: the orchestrator is rebound to the new
// surface, the presenter is reset and the next level's tasks are loaded.
// The surface is refreshed once more after loading so statuses latched for
// the previous level's ids are replaced. It returns false when the current
// level is the last one.
func (s *Session) Next(surface orchestrator.Surface) (bool, error) {
	if !s.HasNext() {
		return false, nil
	}
	level, err := loader.Load(s.level.Next)
	if err != nil {
		return false, fmt.Errorf("failed to load level %s: %w", s.level.Next, err)
	}

	s.Orch.Rebind(surface, s.Mood)
	s.Presenter.Hide()
	s.Start(level)
	s.Orch.RefreshUI()
	return true, nil
}

// Tick advances one frame. Timers decay before the presenter animates so a
// failure notification starts in the same frame.
func (s *Session) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.clock += dt
	s.Orch.Tick(dt)
	s.Presenter.Tick(dt)
}

// Clock is the total simulated time since the session was created
func (s *Session) Clock() time.Duration {
	return s.clock
}

// Level returns the running level, or nil before Start
func (s *Session) Level() *loader.Level {
	return s.level
}

// Logger returns the session-scoped logger
func (s *Session) Logger() *slog.Logger {
	return s.logger
}
