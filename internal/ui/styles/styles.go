package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/questlog/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Task panel
	Panel          lipgloss.Style
	PanelTitle     lipgloss.Style
	TaskRow        lipgloss.Style
	TaskRowCurrent lipgloss.Style
	TaskID         lipgloss.Style
	TaskTitle      lipgloss.Style
	TaskDesc       lipgloss.Style
	TaskTimer      lipgloss.Style
	TaskTimerLow   lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Notification banner
	BannerAssigned  lipgloss.Style
	BannerCompleted lipgloss.Style
	BannerFailed    lipgloss.Style
	BannerTitle     lipgloss.Style

	// Mood gauge
	MoodEmpty lipgloss.Style

	// Footer messages
	Message      lipgloss.Style
	MessageGood  lipgloss.Style
	MessageBad   lipgloss.Style
	HelpOverlay  lipgloss.Style
	LevelHeading lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			MarginBottom(1),

		TaskRow: lipgloss.NewStyle().
			Foreground(Text),

		TaskRowCurrent: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true),

		TaskID: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text),

		TaskDesc: lipgloss.NewStyle().
			Foreground(Overlay1).
			Italic(true),

		TaskTimer: lipgloss.NewStyle().
			Foreground(Subtext0),

		TaskTimerLow: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		BannerAssigned: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		BannerCompleted: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		BannerFailed: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		BannerTitle: lipgloss.NewStyle().
			Bold(true),

		MoodEmpty: lipgloss.NewStyle().
			Foreground(Surface2),

		Message: lipgloss.NewStyle().
			Foreground(Subtext1),

		MessageGood: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		MessageBad: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		HelpOverlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(1, 2),

		LevelHeading: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),
	}
}

// Status returns the icon style for a task status
func (s *Styles) Status(status domain.UIStatus) lipgloss.Style {
	color, ok := StatusColors[status]
	if !ok {
		color = Overlay1
	}
	return lipgloss.NewStyle().Foreground(color).Bold(status == domain.StatusInProgress)
}

// Mood returns the gauge style for a mood value in [0,1]
func (s *Styles) Mood(value float64) lipgloss.Style {
	i := int(value * float64(len(MoodColors)))
	if i < 0 {
		i = 0
	}
	if i >= len(MoodColors) {
		i = len(MoodColors) - 1
	}
	return lipgloss.NewStyle().Foreground(MoodColors[i])
}
