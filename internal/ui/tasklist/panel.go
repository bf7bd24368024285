// Package tasklist is the task panel shown beside the play area.
//
// The panel implements orchestrator.Surface. Status updates are latched even
// while the panel is hidden, so opening it later shows the right icons.
package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/questlog/internal/domain"
	"github.com/riordanpawley/questlog/internal/ui/styles"
)

// lowTime is the remaining-time threshold below which the timer is highlighted
const lowTime = 10

// Source supplies the tasks the panel lists
type Source interface {
	Tasks() []domain.Task
	CurrentTaskIndex() int
}

// Panel lists tasks with their status icons and timers
type Panel struct {
	src      Source
	styles   *styles.Styles
	title    string
	visible  bool
	statuses map[int]domain.UIStatus
	refreshN int
}

// New creates a hidden panel reading from src
func New(src Source, s *styles.Styles) *Panel {
	return &Panel{
		src:      src,
		styles:   s,
		title:    "Tasks",
		statuses: make(map[int]domain.UIStatus),
	}
}

// SetTitle sets the heading shown above the rows
func (p *Panel) SetTitle(title string) {
	p.title = title
}

// SetTaskStatus latches a status for the task
func (p *Panel) SetTaskStatus(taskID int, status domain.UIStatus) {
	p.statuses[taskID] = status
}

// Refresh drops latched statuses. Rows are rebuilt from the source on the
// next View; tasks without a latched status derive one from their state.
func (p *Panel) Refresh() {
	p.statuses = make(map[int]domain.UIStatus)
	p.refreshN++
}

// Refreshes reports how many times Refresh was called
func (p *Panel) Refreshes() int {
	return p.refreshN
}

// Status returns the status shown for a task
func (p *Panel) Status(taskID int) (domain.UIStatus, bool) {
	s, ok := p.statuses[taskID]
	return s, ok
}

// Toggle shows or hides the panel. Opening it fills in statuses for tasks
// that never received one and keeps everything already latched.
func (p *Panel) Toggle() {
	p.visible = !p.visible
	if p.visible {
		p.resync()
	}
}

// Show makes the panel visible
func (p *Panel) Show() {
	if !p.visible {
		p.Toggle()
	}
}

// Hide hides the panel
func (p *Panel) Hide() {
	p.visible = false
}

// Visible reports whether the panel is shown
func (p *Panel) Visible() bool {
	return p.visible
}

// View renders the panel. spin is drawn in place of the current task's icon.
func (p *Panel) View(width int, spin string) string {
	if !p.visible {
		return ""
	}

	var rows []string
	rows = append(rows, p.styles.PanelTitle.Render(p.title))

	tasks, current := p.snapshot()
	if len(tasks) == 0 {
		rows = append(rows, p.styles.TaskDesc.Render("No tasks"))
	}

	inner := width - 4 // border + padding
	if inner < 10 {
		inner = 10
	}

	for i, t := range tasks {
		rows = append(rows, p.renderRow(t, i, current, inner, spin))
	}

	return p.styles.Panel.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p *Panel) renderRow(t domain.Task, i, current, width int, spin string) string {
	status := p.statusFor(t, i, current)

	icon := p.styles.Status(status).Render(status.Icon())
	if i == current && status == domain.StatusInProgress && spin != "" {
		icon = spin
	}

	rowStyle := p.styles.TaskRow
	if i == current {
		rowStyle = rowStyle.Inherit(p.styles.TaskRowCurrent)
	}

	timer := p.styles.TaskTimer
	if t.Decays() && t.TimeRemaining.Seconds() < lowTime {
		timer = p.styles.TaskTimerLow
	}

	head := fmt.Sprintf("%s %s %s",
		icon,
		p.styles.TaskID.Render(fmt.Sprintf("[%d]", t.ID)),
		rowStyle.Render(t.Title))
	remaining := timer.Render(t.TimeRemainingText())

	gap := width - lipgloss.Width(head) - lipgloss.Width(remaining)
	if gap < 1 {
		gap = 1
	}
	line := head + strings.Repeat(" ", gap) + remaining

	if t.Description == "" {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, "    "+p.styles.TaskDesc.Render(t.Description))
}

func (p *Panel) statusFor(t domain.Task, i, current int) domain.UIStatus {
	if s, ok := p.statuses[t.ID]; ok {
		return s
	}
	return domain.StatusFor(t, i, current)
}

func (p *Panel) snapshot() ([]domain.Task, int) {
	if p.src == nil {
		return nil, -1
	}
	return p.src.Tasks(), p.src.CurrentTaskIndex()
}

// resync latches derived statuses for tasks that have none
func (p *Panel) resync() {
	tasks, current := p.snapshot()
	for i, t := range tasks {
		if _, ok := p.statuses[t.ID]; !ok {
			p.statuses[t.ID] = domain.StatusFor(t, i, current)
		}
	}
}
