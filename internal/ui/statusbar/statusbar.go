package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/questlog/internal/types"
	"github.com/riordanpawley/questlog/internal/ui/styles"
)

// gaugeCells is the width of the mood gauge in cells
const gaugeCells = 10

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode    types.Mode
	width   int
	styles  *styles.Styles
	mood    float64
	hasMood bool
	level   string
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithMood adds a mood gauge for a value in [0,1]
func (sb StatusBar) WithMood(value float64) StatusBar {
	sb.mood = value
	sb.hasMood = true
	return sb
}

// WithLevel shows the level name on the right
func (sb StatusBar) WithLevel(name string) StatusBar {
	sb.level = name
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	// Keybinding hints
	hints := GetHints(sb.mode)
	hintsRendered := sb.styles.StatusHint.Render(hints)

	// Combine mode badge and hints with separator
	var left string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		left = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, hintsRendered)
	} else {
		left = modeBadge
	}

	right := sb.renderRight()
	if right == "" {
		return sb.styles.StatusBar.Width(sb.width).Render(left)
	}

	// Hints give way to the right side on narrow terminals
	if lipgloss.Width(left)+lipgloss.Width(right)+3 > sb.width {
		left = modeBadge
	}

	// Pad between left and right, leaving room for the bar's own padding
	gap := sb.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return sb.styles.StatusBar.Width(sb.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (sb StatusBar) renderRight() string {
	var parts []string
	if sb.level != "" {
		parts = append(parts, sb.styles.StatusInfo.Render(sb.level))
	}
	if sb.hasMood {
		parts = append(parts, Gauge(sb.styles, sb.mood))
	}
	return strings.Join(parts, "  ")
}

// Gauge renders a mood gauge like "mood ■■■■■□□□□□ 50%"
func Gauge(s *styles.Styles, value float64) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value*gaugeCells + 0.5)

	bar := s.Mood(value).Render(strings.Repeat("■", filled)) +
		s.MoodEmpty.Render(strings.Repeat("□", gaugeCells-filled))
	return fmt.Sprintf("mood %s %3d%%", bar, int(value*100+0.5))
}
