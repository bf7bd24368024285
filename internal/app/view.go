package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/questlog/internal/ui/statusbar"
)

// panelWidth is the task panel's share of the screen
const panelWidth = 44

// View renders the model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Heading and current task
	heading := m.styles.LevelHeading.Render(m.levelName())
	sections := []string{heading, m.renderCurrent()}

	// Task panel beside the notification banner
	bannerView := m.banner.Render(m.session.Presenter, m.width-panelWidth)
	if m.panel.Visible() {
		panelView := m.panel.View(panelWidth, m.spinner.View())
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, panelView, " ", bannerView))
	} else if bannerView != "" {
		sections = append(sections, bannerView)
	}

	if m.showHelp {
		sections = append(sections, m.styles.HelpOverlay.Render(m.help.View(m.keys)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Footer message and status bar stay at the bottom
	bottom := m.renderStatusBar()
	if msg := m.renderFooter(); msg != "" {
		bottom = lipgloss.JoinVertical(lipgloss.Left, msg, bottom)
	}

	bodyHeight := m.height - lipgloss.Height(bottom)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, body)

	return lipgloss.JoinVertical(lipgloss.Left, body, bottom)
}

// renderCurrent renders a one-line summary of the current task
func (m Model) renderCurrent() string {
	t, ok := m.session.Orch.CurrentTask()
	if !ok {
		return m.styles.TaskDesc.Render("No active task")
	}
	return fmt.Sprintf("%s %s %s",
		m.spinner.View(),
		m.styles.TaskRowCurrent.Render(t.Title),
		m.styles.TaskTimer.Render(t.TimeRemainingText()))
}

func (m Model) renderFooter() string {
	if m.footer.text == "" {
		return ""
	}
	switch m.footer.tone {
	case toneGood:
		return m.styles.MessageGood.Render(m.footer.text)
	case toneBad:
		return m.styles.MessageBad.Render(m.footer.text)
	default:
		return m.styles.Message.Render(m.footer.text)
	}
}

func (m Model) renderStatusBar() string {
	return statusbar.New(m.Mode(), m.width, m.styles).
		WithMood(m.session.Mood.Value()).
		WithLevel(m.levelName()).
		Render()
}
