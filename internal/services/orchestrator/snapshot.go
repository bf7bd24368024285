package orchestrator

import "fmt"

// TaskStatus is one line of a status dump
type TaskStatus struct {
	Index   int
	ID      int
	Title   string
	State   string // "completed", "failed", "current" or "pending"
	Remains string
}

func (s TaskStatus) String() string {
	return fmt.Sprintf("%d. [%d] %s - %s (%s)", s.Index+1, s.ID, s.Title, s.State, s.Remains)
}

// Snapshot describes every task and logs the result at debug level
func (o *Orchestrator) Snapshot() []TaskStatus {
	out := make([]TaskStatus, 0, len(o.tasks))
	for i, t := range o.tasks {
		state := "pending"
		switch {
		case t.Completed:
			state = "completed"
		case t.Failed:
			state = "failed"
		case i == o.current:
			state = "current"
		}
		out = append(out, TaskStatus{
			Index:   i,
			ID:      t.ID,
			Title:   t.Title,
			State:   state,
			Remains: t.TimeRemainingText(),
		})
	}

	for _, s := range out {
		o.logger.Debug("task status", "line", s.String())
	}
	return out
}
