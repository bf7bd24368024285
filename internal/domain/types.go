// Package domain contains the core game types for questlog.
package domain

import "time"

// UIStatus is the status icon a presentation surface shows for a task
type UIStatus int

const (
	StatusPending UIStatus = iota
	StatusInProgress
	StatusCompleted
	StatusIncomplete
)

// String returns the string representation of the status
func (s UIStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusIncomplete:
		return "incomplete"
	default:
		return "unknown"
	}
}

// Icon returns a single glyph for the status
func (s UIStatus) Icon() string {
	switch s {
	case StatusInProgress:
		return "▶"
	case StatusCompleted:
		return "✓"
	case StatusIncomplete:
		return "✗"
	default:
		return " "
	}
}

// StatusFor derives the status a surface should show for a task at index i
// given the orchestrator's current index
func StatusFor(t Task, i, current int) UIStatus {
	switch {
	case t.Completed:
		return StatusCompleted
	case t.Failed:
		return StatusIncomplete
	case i == current:
		return StatusInProgress
	default:
		return StatusPending
	}
}

// AudioClip is an opaque handle to a sound. Only its length matters here.
type AudioClip struct {
	Name   string        `json:"name" yaml:"name"`
	Length time.Duration `json:"length" yaml:"length"`
}
