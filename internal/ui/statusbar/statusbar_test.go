package statusbar

import (
	"strings"
	"testing"

	"github.com/riordanpawley/questlog/internal/types"
	"github.com/riordanpawley/questlog/internal/ui/styles"
)

func TestStatusBar_RenderPlayMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModePlay, 120, style)

	result := sb.Render()

	// Should contain mode badge
	if !strings.Contains(result, "PLAY") {
		t.Errorf("Expected status bar to contain 'PLAY', got: %s", result)
	}

	// Should contain play mode hints
	if !strings.Contains(result, "Space: complete") {
		t.Errorf("Expected status bar to contain complete hint, got: %s", result)
	}
	if !strings.Contains(result, "Tab: next") {
		t.Errorf("Expected status bar to contain focus hint, got: %s", result)
	}
}

func TestStatusBar_RenderModes(t *testing.T) {
	style := styles.New()

	tests := []struct {
		mode  types.Mode
		badge string
		hint  string
	}{
		{types.ModePlay, "PLAY", "1-9: by id"},
		{types.ModeTasks, "TASKS", "t: close"},
		{types.ModeHelp, "HELP", "?: close"},
		{types.ModeLevelDone, "DONE", "n: next level"},
	}

	for _, tt := range tests {
		t.Run(tt.badge, func(t *testing.T) {
			result := New(tt.mode, 120, style).Render()
			if !strings.Contains(result, tt.badge) {
				t.Errorf("Expected badge %q, got: %s", tt.badge, result)
			}
			if !strings.Contains(result, tt.hint) {
				t.Errorf("Expected hint %q, got: %s", tt.hint, result)
			}
		})
	}
}

func TestStatusBar_WithMoodAndLevel(t *testing.T) {
	style := styles.New()
	sb := New(types.ModePlay, 160, style).WithMood(0.5).WithLevel("level1")

	result := sb.Render()

	if !strings.Contains(result, "level1") {
		t.Errorf("Expected level name, got: %s", result)
	}
	if !strings.Contains(result, "mood") || !strings.Contains(result, "50%") {
		t.Errorf("Expected mood gauge, got: %s", result)
	}
}

func TestGauge(t *testing.T) {
	style := styles.New()

	tests := []struct {
		value  float64
		filled int
		pct    string
	}{
		{0, 0, "0%"},
		{0.25, 3, "25%"},
		{0.5, 5, "50%"},
		{1, 10, "100%"},
		{1.5, 10, "100%"},
	}

	for _, tt := range tests {
		g := Gauge(style, tt.value)
		if got := strings.Count(g, "■"); got != tt.filled {
			t.Errorf("Gauge(%v) filled = %d, want %d", tt.value, got, tt.filled)
		}
		if got := strings.Count(g, "□"); got != gaugeCells-tt.filled {
			t.Errorf("Gauge(%v) empty = %d, want %d", tt.value, got, gaugeCells-tt.filled)
		}
		if !strings.Contains(g, tt.pct) {
			t.Errorf("Gauge(%v) = %q, want %q", tt.value, g, tt.pct)
		}
	}
}

func TestGetHints_Unknown(t *testing.T) {
	if got := GetHints(types.Mode(99)); got != "" {
		t.Errorf("Expected no hints for unknown mode, got %q", got)
	}
}
