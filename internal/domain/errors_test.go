package domain

import (
	"errors"
	"testing"
)

func TestTaskError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  TaskError
		want string
	}{
		{
			name: "with underlying error",
			err:  TaskError{Op: "complete", TaskID: 7, Err: ErrNotFound},
			want: "task complete [7]: not found",
		},
		{
			name: "minimal",
			err:  TaskError{Op: "select", TaskID: 3},
			want: "task select [3] failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("TaskError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskError_Unwrap(t *testing.T) {
	err := &TaskError{Op: "select", TaskID: 9, Err: ErrOutOfRange}

	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("errors.Is(%v, ErrOutOfRange) = false, want true", err)
	}
}

func TestLevelError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  LevelError
		want string
	}{
		{
			name: "with message",
			err:  LevelError{Level: "level1", Message: "duplicate task id 2", Err: ErrInvalidLevel},
			want: "level level1: duplicate task id 2",
		},
		{
			name: "with underlying error",
			err:  LevelError{Level: "level1", Err: errors.New("yaml: bad indent")},
			want: "level level1: yaml: bad indent",
		},
		{
			name: "minimal",
			err:  LevelError{Level: "intro"},
			want: "level intro invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("LevelError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelError_Unwrap(t *testing.T) {
	var err error = &LevelError{Level: "x", Message: "no tasks", Err: ErrInvalidLevel}

	var levelErr *LevelError
	if !errors.As(err, &levelErr) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("errors.Is(%v, ErrInvalidLevel) = false, want true", err)
	}
}
