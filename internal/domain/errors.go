package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrOutOfRange   = errors.New("index out of range")
	ErrTerminal     = errors.New("task already finished")
	ErrInvalidLevel = errors.New("invalid level")
)

// TaskError describes a task operation that was ignored
type TaskError struct {
	Op     string // Operation: "complete", "select", ...
	TaskID int    // Task ID or index, depending on Op
	Err    error  // Underlying error
}

func (e *TaskError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task %s [%d]: %v", e.Op, e.TaskID, e.Err)
	}
	return fmt.Sprintf("task %s [%d] failed", e.Op, e.TaskID)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// LevelError represents an error loading or validating a level definition
type LevelError struct {
	Level   string // Level name or path
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *LevelError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("level %s: %s", e.Level, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("level %s: %v", e.Level, e.Err)
	}
	return fmt.Sprintf("level %s invalid", e.Level)
}

func (e *LevelError) Unwrap() error {
	return e.Err
}
