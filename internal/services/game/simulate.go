package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riordanpawley/questlog/internal/services/loader"
	"github.com/riordanpawley/questlog/internal/services/orchestrator"
	"github.com/riordanpawley/questlog/internal/types"
)

// Event kinds reported by Simulate
const (
	EventAssigned     = "assigned"
	EventCompleted    = "completed"
	EventFailed       = "failed"
	EventAllCompleted = "all-completed"
	EventAllFinished  = "all-finished"
	EventSceneFailed  = "scene-failed"
	EventNotify       = "notify"
)

// Completion schedules a task completion at a simulated time
type Completion struct {
	ID int
	At time.Duration
}

// ParseCompletion parses "id@duration", e.g. "2@1.5s"
func ParseCompletion(s string) (Completion, error) {
	idPart, atPart, ok := strings.Cut(s, "@")
	if !ok {
		return Completion{}, fmt.Errorf("invalid completion %q: want id@time", s)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idPart))
	if err != nil {
		return Completion{}, fmt.Errorf("invalid task id in %q: %w", s, err)
	}
	at, err := time.ParseDuration(strings.TrimSpace(atPart))
	if err != nil {
		return Completion{}, fmt.Errorf("invalid time in %q: %w", s, err)
	}
	if at < 0 {
		return Completion{}, fmt.Errorf("invalid time in %q: negative", s)
	}
	return Completion{ID: id, At: at}, nil
}

// SimOptions controls a headless run
type SimOptions struct {
	Step        time.Duration // Frame length, defaults to 100ms
	Duration    time.Duration // Upper bound on simulated time
	Completions []Completion
	// KeepRunning continues until Duration even after every task finished
	KeepRunning bool
}

// Event is one line of simulation output
type Event struct {
	At     time.Duration
	Kind   string
	TaskID int
	Detail string
}

func (e Event) String() string {
	return fmt.Sprintf("%s  %-13s %s", FormatClock(e.At), e.Kind, e.Detail)
}

// Result summarizes a finished simulation
type Result struct {
	Elapsed   time.Duration
	Completed int
	Failed    int
	Active    int
	Mood      float64
	Events    int
}

// FormatClock renders a duration as mm:ss.mmm
func FormatClock(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}

// Simulate starts level on the session and advances it in fixed steps,
// applying scheduled completions, and reports every event to emit
func Simulate(s *Session, level *loader.Level, opts SimOptions, emit func(Event)) Result {
	if opts.Step <= 0 {
		opts.Step = 100 * time.Millisecond
	}
	if opts.Duration <= 0 {
		opts.Duration = 2 * time.Minute
	}
	completions := append([]Completion(nil), opts.Completions...)
	sort.SliceStable(completions, func(i, j int) bool {
		return completions[i].At < completions[j].At
	})

	count := 0
	send := func(kind string, id int, detail string) {
		count++
		if emit != nil {
			emit(Event{At: s.Clock(), Kind: kind, TaskID: id, Detail: detail})
		}
	}
	title := func(id int) string {
		if t, ok := s.Orch.Task(id); ok {
			return fmt.Sprintf("[%d] %s", id, t.Title)
		}
		return fmt.Sprintf("[%d]", id)
	}

	finished := false
	s.Orch.OnTaskCompleted(func(id int) { send(EventCompleted, id, title(id)) })
	s.Orch.OnTaskFailed(func(id int) { send(EventFailed, id, title(id)) })
	s.Orch.OnAllTasksCompleted(func() { send(EventAllCompleted, 0, level.Name) })
	s.Orch.OnAllTasksFinished(func() {
		finished = true
		send(EventAllFinished, 0, level.Name)
	})
	s.Orch.OnSceneTasksFailed(func() { send(EventSceneFailed, 0, level.Name) })
	s.Presenter.OnPhaseChange(func(phase types.Phase, n types.Notification) {
		send(EventNotify, n.TaskID, fmt.Sprintf("%s %s %q", phase, n.Kind, n.Title))
	})

	lastCurrent := orchestrator.NoCurrent
	checkCurrent := func() {
		index := s.Orch.CurrentTaskIndex()
		if index == lastCurrent {
			return
		}
		lastCurrent = index
		if t, ok := s.Orch.CurrentTask(); ok {
			send(EventAssigned, t.ID, fmt.Sprintf("[%d] %s (%s)", t.ID, t.Title, t.TimeRemainingText()))
		}
	}

	s.Start(level)
	checkCurrent()

	start := s.Clock()
	next := 0
	for {
		elapsed := s.Clock() - start
		for next < len(completions) && completions[next].At <= elapsed {
			s.Orch.CompleteTask(completions[next].ID)
			checkCurrent()
			next++
		}

		if elapsed >= opts.Duration {
			break
		}
		if finished && !opts.KeepRunning && !s.Presenter.Visible() && !hasPending(s) {
			break
		}

		s.Tick(opts.Step)
		checkCurrent()
	}

	res := Result{
		Elapsed: s.Clock() - start,
		Mood:    s.Mood.Value(),
		Events:  count,
	}
	for _, t := range s.Orch.Tasks() {
		switch {
		case t.Completed:
			res.Completed++
		case t.Failed:
			res.Failed++
		default:
			res.Active++
		}
	}
	s.Orch.Snapshot()
	return res
}

func hasPending(s *Session) bool {
	_, ok := s.Presenter.Pending()
	return ok
}

// Summary renders a result as a single line
func (r Result) Summary() string {
	return fmt.Sprintf("elapsed %s  completed %d  failed %d  active %d  mood %.2f",
		FormatClock(r.Elapsed), r.Completed, r.Failed, r.Active, r.Mood)
}

