package domain

import (
	"fmt"
	"math"
	"time"
)

// InfiniteDuration is the time remaining assigned to tasks without a deadline.
// It is a very large finite value so timer math never special-cases it.
const InfiniteDuration = time.Duration(math.MaxInt64)

// Task is a single trackable objective with an optional deadline.
//
// Completed and Failed are never both true. Once either is set the task is
// terminal: its timer stops and it is never re-entered.
type Task struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	Completed     bool          `json:"completed"`
	Failed        bool          `json:"failed"`
	TimeRemaining time.Duration `json:"time_remaining"`
	HasReminder   bool          `json:"has_reminder"`
	InfiniteTime  bool          `json:"infinite_time"`
	Audio         *AudioClip    `json:"audio,omitempty"`
}

// TaskOption configures a Task built by NewTask
type TaskOption func(*Task)

// WithReminder gives the task a deadline
func WithReminder(d time.Duration) TaskOption {
	return func(t *Task) {
		t.HasReminder = true
		if d < 0 {
			d = 0
		}
		t.TimeRemaining = d
	}
}

// WithInfiniteTime marks the task as tracked but never expiring
func WithInfiniteTime() TaskOption {
	return func(t *Task) {
		t.HasReminder = true
		t.SetInfiniteTime(true)
	}
}

// WithAudio attaches the clip played when the task is announced
func WithAudio(clip AudioClip) TaskOption {
	return func(t *Task) {
		t.Audio = &clip
	}
}

// NewTask creates an active task
func NewTask(id int, title, description string, opts ...TaskOption) *Task {
	t := &Task{
		ID:          id,
		Title:       title,
		Description: description,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsActive reports whether the task is neither completed nor failed
func (t *Task) IsActive() bool {
	return !t.Completed && !t.Failed
}

// IsTerminal is the negation of IsActive
func (t *Task) IsTerminal() bool {
	return !t.IsActive()
}

// Decays reports whether UpdateTimer would change the remaining time
func (t *Task) Decays() bool {
	return t.HasReminder && !t.InfiniteTime && t.IsActive()
}

// UpdateTimer subtracts dt from the remaining time, clamped at zero.
// It never transitions the task to failed.
func (t *Task) UpdateTimer(dt time.Duration) {
	if !t.Decays() || dt <= 0 {
		return
	}
	t.TimeRemaining -= dt
	if t.TimeRemaining < 0 {
		t.TimeRemaining = 0
	}
}

// MarkFailed moves an active task to the failed state
func (t *Task) MarkFailed() {
	if t.Completed {
		return
	}
	t.Failed = true
	t.TimeRemaining = 0
}

// MarkCompleted moves an active task to the completed state
func (t *Task) MarkCompleted() {
	if t.Failed {
		return
	}
	t.Completed = true
}

// SetInfiniteTime toggles the no-deadline mode
func (t *Task) SetInfiniteTime(infinite bool) {
	t.InfiniteTime = infinite
	if infinite {
		t.TimeRemaining = InfiniteDuration
	}
}

// TimeRemainingText returns the label shown next to the task in the panel
func (t *Task) TimeRemainingText() string {
	switch {
	case t.Failed:
		return "Failed"
	case t.Completed:
		return "Completed"
	case t.InfiniteTime:
		return "∞"
	case t.HasReminder:
		secs := int(t.TimeRemaining / time.Second)
		return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
	default:
		return "No limit"
	}
}

// State returns the terminal state as a display string
func (t *Task) State() string {
	switch {
	case t.Completed:
		return "completed"
	case t.Failed:
		return "failed"
	default:
		return "active"
	}
}
