// Package orchestrator owns task progression for a play session.
//
// The Orchestrator keeps tasks in insertion order, tracks which one is
// current, runs the current task's countdown and cascades to the next active
// task when the current one completes or fails. Batch events ("all tasks
// completed", "all tasks finished") are edge triggered and fire once until
// ResetCompletionEvents is called.
//
// Invalid input such as unknown ids or out-of-range indexes is ignored and
// logged at debug level. Gameplay never sees an error from this package.
package orchestrator

import (
	"log/slog"
	"time"

	"github.com/riordanpawley/questlog/internal/domain"
)

// Surface is the task panel the orchestrator keeps up to date.
// SetTaskStatus must be safe to call while the surface is not visible.
type Surface interface {
	SetTaskStatus(taskID int, status domain.UIStatus)
	Refresh()
}

// MoodStore receives small signed nudges when tasks finish
type MoodStore interface {
	Adjust(delta float64)
}

// Notifier presents transient task notifications
type Notifier interface {
	ShowAssigned(task domain.Task)
	ShowCompleted(task domain.Task)
	ShowFailed(task domain.Task)
}

// NoCurrent is the current index when no task is current
const NoCurrent = -1

// Orchestrator is the single owner of task state
type Orchestrator struct {
	tasks   []*domain.Task
	current int

	allCompletedFired bool
	allFinishedFired  bool

	surface  Surface
	mood     MoodStore
	notifier Notifier

	completedDelta float64
	failedDelta    float64

	events events
	logger *slog.Logger
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSurface sets the task panel
func WithSurface(s Surface) Option {
	return func(o *Orchestrator) {
		o.surface = s
	}
}

// WithMoodStore sets the mood store
func WithMoodStore(m MoodStore) Option {
	return func(o *Orchestrator) {
		o.mood = m
	}
}

// WithNotifier sets the notification presenter
func WithNotifier(n Notifier) Option {
	return func(o *Orchestrator) {
		o.notifier = n
	}
}

// WithMoodDeltas sets the mood adjustments applied on completion and failure
func WithMoodDeltas(completed, failed float64) Option {
	return func(o *Orchestrator) {
		o.completedDelta = completed
		o.failedDelta = failed
	}
}

// New creates an empty orchestrator
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		current: NoCurrent,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// AddTask appends a task. An active task becomes current when nothing is,
// so the first active task added and a task added after the list drained
// both take focus. Terminal tasks never do.
func (o *Orchestrator) AddTask(task *domain.Task) {
	if task == nil {
		o.ignore("add", 0, domain.ErrNotFound)
		return
	}
	o.tasks = append(o.tasks, task)
	o.logger.Debug("task added", "task_id", task.ID, "title", task.Title, "count", len(o.tasks))

	if o.current == NoCurrent && task.IsActive() {
		o.SetCurrentTask(len(o.tasks) - 1)
	}
}

// CompleteTask marks the task with the given id as completed.
// Unknown ids and tasks that already finished are ignored.
func (o *Orchestrator) CompleteTask(id int) {
	index := o.indexOf(id)
	if index < 0 {
		o.ignore("complete", id, domain.ErrNotFound)
		return
	}
	task := o.tasks[index]
	if task.IsTerminal() {
		o.ignore("complete", id, domain.ErrTerminal)
		return
	}

	task.MarkCompleted()
	o.logger.Info("task completed", "task_id", id, "title", task.Title)

	o.adjustMood(o.completedDelta)
	o.events.taskCompleted(id)
	if o.notifier != nil {
		o.notifier.ShowCompleted(*task)
	}
	o.setStatus(id, domain.StatusCompleted)
	o.checkAllTasksCompletion()

	if index == o.current {
		o.moveToNextIncompleteTask()
	}
}

// SetCurrentTask focuses the task at index. Re-selecting the current index
// does nothing.
func (o *Orchestrator) SetCurrentTask(index int) {
	if index < 0 || index >= len(o.tasks) {
		o.ignore("select", index, domain.ErrOutOfRange)
		return
	}
	if index == o.current {
		return
	}

	// The task losing focus goes back to pending unless it just finished
	if prev := o.currentTask(); prev != nil && prev.IsActive() {
		o.setStatus(prev.ID, domain.StatusPending)
	}

	o.current = index
	task := o.tasks[index]
	if o.notifier != nil {
		o.notifier.ShowAssigned(*task)
	}
	if !task.Completed {
		o.setStatus(task.ID, domain.StatusInProgress)
	}
	o.logger.Info("current task", "task_id", task.ID, "title", task.Title, "index", index)
}

// Tick advances the current task's countdown by dt. Only the current task's
// clock runs. When it reaches zero the task fails and focus moves on.
func (o *Orchestrator) Tick(dt time.Duration) {
	task := o.currentTask()
	if task == nil {
		return
	}
	if !task.Decays() || task.TimeRemaining <= 0 {
		return
	}

	task.UpdateTimer(dt)
	if task.TimeRemaining > 0 {
		return
	}

	task.MarkFailed()
	o.logger.Info("task failed", "task_id", task.ID, "title", task.Title)

	o.adjustMood(o.failedDelta)
	o.events.taskFailed(task.ID)
	if o.notifier != nil {
		o.notifier.ShowFailed(*task)
	}
	o.setStatus(task.ID, domain.StatusIncomplete)
	o.checkAllTasksCompletion()
	o.moveToNextIncompleteTask()
}

// SetTaskIncomplete shows an active task as incomplete on the surface without
// changing its state
func (o *Orchestrator) SetTaskIncomplete(id int) {
	index := o.indexOf(id)
	if index < 0 {
		o.ignore("mark-incomplete", id, domain.ErrNotFound)
		return
	}
	if o.tasks[index].Completed {
		o.ignore("mark-incomplete", id, domain.ErrTerminal)
		return
	}
	o.setStatus(id, domain.StatusIncomplete)
}

// ResetCompletionEvents re-arms the batch events
func (o *Orchestrator) ResetCompletionEvents() {
	o.allCompletedFired = false
	o.allFinishedFired = false
}

// Clear drops every task and re-arms the batch events. Collaborators and
// event handlers are kept.
func (o *Orchestrator) Clear() {
	o.tasks = nil
	o.current = NoCurrent
	o.ResetCompletionEvents()
	o.logger.Debug("tasks cleared")
}

// Rebind swaps the scene-scoped collaborators and pushes the current state to
// the new surface
func (o *Orchestrator) Rebind(surface Surface, mood MoodStore) {
	o.surface = surface
	o.mood = mood
	o.RefreshUI()
	o.logger.Debug("collaborators rebound", "has_surface", surface != nil, "has_mood", mood != nil)
}

// RefreshUI asks the surface to redraw and re-sends every task's status
func (o *Orchestrator) RefreshUI() {
	if o.surface == nil {
		return
	}
	o.surface.Refresh()
	for i, t := range o.tasks {
		o.surface.SetTaskStatus(t.ID, domain.StatusFor(*t, i, o.current))
	}
}

// Tasks returns copies of the tasks in insertion order
func (o *Orchestrator) Tasks() []domain.Task {
	out := make([]domain.Task, len(o.tasks))
	for i, t := range o.tasks {
		out[i] = *t
	}
	return out
}

// Task returns a copy of the task with the given id
func (o *Orchestrator) Task(id int) (domain.Task, bool) {
	index := o.indexOf(id)
	if index < 0 {
		return domain.Task{}, false
	}
	return *o.tasks[index], true
}

// CurrentTask returns a copy of the current task
func (o *Orchestrator) CurrentTask() (domain.Task, bool) {
	task := o.currentTask()
	if task == nil {
		return domain.Task{}, false
	}
	return *task, true
}

// CurrentTaskIndex returns the current index or NoCurrent
func (o *Orchestrator) CurrentTaskIndex() int {
	return o.current
}

// Len returns the number of tasks
func (o *Orchestrator) Len() int {
	return len(o.tasks)
}

// moveToNextIncompleteTask focuses the first active task in insertion order
func (o *Orchestrator) moveToNextIncompleteTask() {
	for i, t := range o.tasks {
		if t.IsActive() {
			o.SetCurrentTask(i)
			return
		}
	}

	o.current = NoCurrent
	o.logger.Info("no active tasks left")
	o.checkAllTasksCompletion()
}

// checkAllTasksCompletion recounts the whole collection and fires the batch
// events that have not fired yet
func (o *Orchestrator) checkAllTasksCompletion() {
	total := len(o.tasks)
	if total == 0 {
		return
	}

	completed, failed := 0, 0
	for _, t := range o.tasks {
		switch {
		case t.Completed:
			completed++
		case t.Failed:
			failed++
		}
	}

	if completed == total && !o.allCompletedFired {
		o.allCompletedFired = true
		o.logger.Info("all tasks completed", "count", total)
		o.events.allCompleted()
	}

	if completed+failed == total && !o.allFinishedFired {
		o.allFinishedFired = true
		o.logger.Info("all tasks finished", "completed", completed, "failed", failed)
		o.events.allFinished()
		if failed > 0 {
			o.events.sceneFailed()
		}
	}
}

func (o *Orchestrator) currentTask() *domain.Task {
	if o.current < 0 || o.current >= len(o.tasks) {
		return nil
	}
	return o.tasks[o.current]
}

func (o *Orchestrator) indexOf(id int) int {
	for i, t := range o.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (o *Orchestrator) setStatus(id int, status domain.UIStatus) {
	if o.surface != nil {
		o.surface.SetTaskStatus(id, status)
	}
}

func (o *Orchestrator) adjustMood(delta float64) {
	if o.mood != nil && delta != 0 {
		o.mood.Adjust(delta)
	}
}

func (o *Orchestrator) ignore(op string, id int, err error) {
	o.logger.Debug("ignored task call", "error", &domain.TaskError{Op: op, TaskID: id, Err: err})
}
