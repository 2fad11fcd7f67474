package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// Panel sizing. The task list shows a window around the cursor so long
// lists never push the stats off the screen.
const (
	maxVisibleTasks = 8
	statsBarWidth   = 24
)

// statusIcon maps a task status to its single-glyph marker.
func statusIcon(status domain.TaskStatus) string {
	switch status {
	case domain.StatusInProgress:
		return "◐"
	case domain.StatusDone:
		return "●"
	default:
		return "○"
	}
}

// visibleTasks returns the slice of tasks to render and the index offset of
// its first element, keeping the cursor inside the window.
func (m Model) visibleTasks() ([]domain.Task, int) {
	if len(m.tasks) <= maxVisibleTasks {
		return m.tasks, 0
	}
	start := m.cursor - maxVisibleTasks/2
	if start < 0 {
		start = 0
	}
	if start+maxVisibleTasks > len(m.tasks) {
		start = len(m.tasks) - maxVisibleTasks
	}
	return m.tasks[start : start+maxVisibleTasks], start
}

func (m Model) viewTaskPanel() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorWork))
	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorWork))

	title := fmt.Sprintf("%s Tasks", m.theme.IconTask)
	if m.focus == focusTasks {
		title += " ·"
	}
	rows := []string{titleStyle.Render(title)}

	if len(m.tasks) == 0 {
		rows = append(rows, helpStyle.Render("No open tasks. Press [a] to add one."))
	}

	visible, offset := m.visibleTasks()
	for i, task := range visible {
		idx := offset + i

		cursor := "  "
		if m.focus == focusTasks && idx == m.cursor {
			cursor = cursorStyle.Render("▸ ")
		}

		line := fmt.Sprintf("%s %s", statusIcon(task.Status), task.Title)
		if m.state.TaskID != nil && *m.state.TaskID == task.ID {
			rows = append(rows, cursor+activeStyle.Render(line+" ·focus"))
		} else {
			rows = append(rows, cursor+taskStyle.Render(line))
		}
	}
	if offset > 0 || offset+len(visible) < len(m.tasks) {
		rows = append(rows, helpStyle.Render(fmt.Sprintf("  (%d of %d)", m.cursor+1, len(m.tasks))))
	}

	if m.adding {
		rows = append(rows, helpStyle.Render("Add: ")+m.input.View())
	}
	if m.editID != 0 {
		rows = append(rows, helpStyle.Render("Edit: ")+m.input.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewStatsPanel() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorBar))

	rows := []string{titleStyle.Render(fmt.Sprintf("%s Focus", m.theme.IconStats))}

	if len(m.stats) == 0 {
		rows = append(rows, helpStyle.Render("No focus sessions recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	maxMinutes := 0
	for _, p := range m.stats {
		if p.Minutes() > maxMinutes {
			maxMinutes = p.Minutes()
		}
	}

	for _, p := range m.stats {
		bar := statsBar(p.Minutes(), maxMinutes)
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			helpStyle.Render(fmt.Sprintf("%6s", p.Date)),
			barStyle.Render(bar),
			helpStyle.Render(fmt.Sprintf("%dm", p.Minutes()))))
	}

	rows = append(rows, helpStyle.Render(fmt.Sprintf("%d sessions · %dm focused",
		domain.TotalSessions(m.stats), domain.TotalFocusMinutes(m.stats))))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// statsBar builds a █ bar scaled against the busiest day. Days with any
// focus time always get at least one block.
func statsBar(minutes, maxMinutes int) string {
	if maxMinutes <= 0 || minutes <= 0 {
		return ""
	}
	filled := minutes * statsBarWidth / maxMinutes
	if filled < 1 {
		filled = 1
	}
	if filled > statsBarWidth {
		filled = statsBarWidth
	}
	return strings.Repeat("█", filled)
}
