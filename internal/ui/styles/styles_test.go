package styles

import (
	"testing"

	"github.com/riordanpawley/questlog/internal/domain"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStatus(t *testing.T) {
	s := New()

	statuses := []domain.UIStatus{
		domain.StatusPending,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusIncomplete,
	}

	for _, status := range statuses {
		t.Run(status.String(), func(t *testing.T) {
			want, ok := StatusColors[status]
			if !ok {
				t.Fatalf("no color for %s", status)
			}
			if got := s.Status(status).GetForeground(); got != want {
				t.Errorf("Status(%s) foreground = %v, want %v", status, got, want)
			}
		})
	}
}

func TestMood(t *testing.T) {
	s := New()

	tests := []struct {
		value float64
		want  int
	}{
		{0, 0},
		{0.5, 2},
		{0.99, 4},
		{1, 4},
		{-1, 0},
		{2, 4},
	}

	for _, tt := range tests {
		if got := s.Mood(tt.value).GetForeground(); got != MoodColors[tt.want] {
			t.Errorf("Mood(%v) = %v, want %v", tt.value, got, MoodColors[tt.want])
		}
	}
}

func TestThemeColors(t *testing.T) {
	colors := []struct {
		name  string
		color string
	}{
		{"Base", string(Base)},
		{"Blue", string(Blue)},
		{"Red", string(Red)},
		{"Green", string(Green)},
		{"Yellow", string(Yellow)},
	}

	for _, c := range colors {
		t.Run(c.name, func(t *testing.T) {
			if c.color == "" {
				t.Errorf("%s color is empty", c.name)
			}
			if c.color[0] != '#' {
				t.Errorf("%s color should start with #, got %s", c.name, c.color)
			}
		})
	}
}
