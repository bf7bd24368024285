package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/questlog/internal/domain"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Crust    = lipgloss.Color("#181926")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Overlay2 = lipgloss.Color("#939ab7")
	Subtext0 = lipgloss.Color("#a5adcb")
	Subtext1 = lipgloss.Color("#b8c0e0")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Mauve    = lipgloss.Color("#c6a0f6")
	Red      = lipgloss.Color("#ed8796")
	Peach    = lipgloss.Color("#f5a97f")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Teal     = lipgloss.Color("#8bd5ca")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)

// StatusColors maps task panel statuses to colors
var StatusColors = map[domain.UIStatus]lipgloss.Color{
	domain.StatusPending:    Overlay1,
	domain.StatusInProgress: Yellow,
	domain.StatusCompleted:  Green,
	domain.StatusIncomplete: Red,
}

// MoodColors runs from calm to overwhelmed
var MoodColors = []lipgloss.Color{
	Teal,
	Green,
	Yellow,
	Peach,
	Red,
}
