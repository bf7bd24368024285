package game

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/questlog/internal/config"
	"github.com/riordanpawley/questlog/internal/domain"
	"github.com/riordanpawley/questlog/internal/services/loader"
	"github.com/riordanpawley/questlog/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T, difficulty int) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Game.Difficulty = difficulty
	return New(cfg, discardLogger())
}

type recordingSurface struct {
	statuses  map[int]domain.UIStatus
	refreshes int
}

func (r *recordingSurface) SetTaskStatus(id int, s domain.UIStatus) {
	if r.statuses == nil {
		r.statuses = make(map[int]domain.UIStatus)
	}
	r.statuses[id] = s
}

func (r *recordingSurface) Refresh() { r.refreshes++ }

func TestSession_New(t *testing.T) {
	s := newTestSession(t, 1)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 0.5, s.Mood.Value())
	assert.Equal(t, 1, s.Mood.Difficulty())
	assert.Nil(t, s.Level())
	assert.False(t, s.HasNext())
}

func TestSession_DistinctIDs(t *testing.T) {
	a := newTestSession(t, 0)
	b := newTestSession(t, 0)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestSession_Load(t *testing.T) {
	s := newTestSession(t, 1)

	require.NoError(t, s.Load("level1"))

	assert.Equal(t, "level1", s.Level().Name)
	assert.Equal(t, 3, s.Orch.Len())
	task, ok := s.Orch.Task(2)
	require.True(t, ok)
	assert.Equal(t, 37500*time.Millisecond, task.TimeRemaining, "normal difficulty scales by 0.75")

	n, ok := s.Presenter.Current()
	require.True(t, ok)
	assert.Equal(t, types.NotificationAssigned, n.Kind)
	assert.Equal(t, 1, n.TaskID)
}

func TestSession_LoadUnknown(t *testing.T) {
	s := newTestSession(t, 0)

	err := s.Load("missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSession_Next(t *testing.T) {
	s := newTestSession(t, 0)
	require.NoError(t, s.Load("intro"))
	s.Orch.CompleteTask(1)

	surface := &recordingSurface{}
	ok, err := s.Next(surface)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "level1", s.Level().Name)
	assert.Equal(t, 2, surface.refreshes, "refreshed on rebind and after loading")
	assert.Equal(t, domain.StatusInProgress, surface.statuses[1], "new level reports to the new surface")
	assert.Equal(t, domain.StatusPending, surface.statuses[2], "nothing carries over from the previous level")
	task, _ := s.Orch.Task(1)
	assert.True(t, task.IsActive(), "tasks come from the new level")

	ok, err = s.Next(surface)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "level2", s.Level().Name)

	ok, err = s.Next(surface)
	require.NoError(t, err)
	assert.False(t, ok, "level2 is the last level")
}

func TestSession_Tick(t *testing.T) {
	s := newTestSession(t, 0)
	require.NoError(t, s.Load("level2"))

	s.Tick(0)
	s.Tick(-time.Second)
	assert.Equal(t, time.Duration(0), s.Clock())

	s.Tick(29900 * time.Millisecond)
	s.Tick(100 * time.Millisecond)
	assert.Equal(t, 30*time.Second, s.Clock())

	task, _ := s.Orch.Task(1)
	assert.True(t, task.Failed)
	n, ok := s.Presenter.Current()
	require.True(t, ok)
	assert.Equal(t, types.NotificationFailed, n.Kind, "failure shows in the same frame")
}

func TestSession_StartResetsBatchEvents(t *testing.T) {
	s := newTestSession(t, 0)
	level, err := loader.LoadBuiltin("intro")
	require.NoError(t, err)

	count := 0
	s.Orch.OnAllTasksCompleted(func() { count++ })

	for round := 0; round < 2; round++ {
		s.Start(level)
		for _, id := range []int{1, 2, 3} {
			s.Orch.CompleteTask(id)
		}
	}

	assert.Equal(t, 2, count)
}
