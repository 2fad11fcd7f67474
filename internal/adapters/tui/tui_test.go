package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{25 * time.Minute, "25:00"},
		{5 * time.Minute, "05:00"},
		{1*time.Minute + 30*time.Second, "01:30"},
		{0, "00:00"},
		{90 * time.Second, "01:30"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatClock(tt.duration)
			if got != tt.want {
				t.Errorf("formatClock(%v) = %v, want %v", tt.duration, got, tt.want)
			}
		})
	}
}

func TestRenderClock(t *testing.T) {
	style := lipgloss.NewStyle()

	banner := renderClock("25:00", style, 80)
	if got := strings.Count(banner, "\n"); got != clockRows-1 {
		t.Errorf("renderClock() banner has %d line breaks, want %d", got, clockRows-1)
	}
	if !strings.Contains(banner, "█") {
		t.Error("renderClock() banner should contain block glyphs")
	}

	narrow := renderClock("25:00", style, 30)
	if narrow != "25:00" {
		t.Errorf("renderClock() narrow fallback = %q, want %q", narrow, "25:00")
	}
}

func TestGlyphRow(t *testing.T) {
	// A two uses every row type: full bars top, middle and bottom with
	// opposite verticals in between.
	two := digitSegments['2']
	rows := []string{}
	for i := 0; i < clockRows; i++ {
		rows = append(rows, glyphRow(two, i))
	}
	want := []string{"████", "   █", "████", "█   ", "████"}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("glyphRow('2', %d) = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestStatsBar(t *testing.T) {
	if got := statsBar(45, 45); len([]rune(got)) != statsBarWidth {
		t.Errorf("statsBar(45, 45) width = %d, want %d", len([]rune(got)), statsBarWidth)
	}
	if got := statsBar(1, 45); len([]rune(got)) != 1 {
		t.Errorf("statsBar(1, 45) should keep at least one block, got %q", got)
	}
	if got := statsBar(0, 45); got != "" {
		t.Errorf("statsBar(0, 45) = %q, want empty", got)
	}
}

func TestNewModel(t *testing.T) {
	state := domain.NewTimerState(25*time.Minute, 5*time.Minute)
	model := NewModel(state, DashboardConfig{NotificationsEnabled: true})

	if model.state.Remaining != 25*time.Minute {
		t.Errorf("NewModel() remaining = %v, want 25m", model.state.Remaining)
	}
	if !model.notificationsEnabled {
		t.Error("NewModel() should carry the notification setting")
	}
	if model.focus != focusTimer {
		t.Error("NewModel() should start focused on the timer")
	}
}

func TestModel_View_Loading(t *testing.T) {
	model := NewModel(domain.NewTimerState(25*time.Minute, 5*time.Minute), DashboardConfig{})

	if view := model.View(); view != "Loading..." {
		t.Errorf("View() before the first WindowSizeMsg = %q, want Loading...", view)
	}
}

func TestModel_View(t *testing.T) {
	model := NewModel(domain.NewTimerState(25*time.Minute, 5*time.Minute), DashboardConfig{})
	model.width = 80
	model.height = 30

	view := model.View()

	if view == "" {
		t.Fatal("View() should not return empty string")
	}
	if !strings.Contains(view, "eggtimer") {
		t.Error("View() should show the app title")
	}
	if !strings.Contains(view, "Work · ready") {
		t.Error("View() should show the idle work phase")
	}
	if !strings.Contains(view, "No open tasks") {
		t.Error("View() should show the empty task hint")
	}
	if !strings.Contains(view, "No focus sessions recorded yet") {
		t.Error("View() should show the empty stats hint")
	}
}

func TestModel_View_ActiveTask(t *testing.T) {
	model := NewModel(domain.NewTimerState(25*time.Minute, 5*time.Minute), DashboardConfig{})
	model.width = 80
	model.height = 30
	model.tasks = []domain.Task{
		{ID: 7, Title: "Review pull request", Status: domain.StatusInProgress},
	}
	id := 7
	model.state.TaskID = &id

	view := model.View()
	if !strings.Contains(view, "Review pull request") {
		t.Error("View() should list the task")
	}
	if !strings.Contains(view, "·focus") {
		t.Error("View() should mark the focused task")
	}
}

func TestModel_View_PausedBadge(t *testing.T) {
	model := NewModel(domain.NewTimerState(25*time.Minute, 5*time.Minute), DashboardConfig{})
	model.width = 80
	model.height = 30
	model.state.Remaining = 20 * time.Minute

	view := model.View()
	if !strings.Contains(view, "PAUSED") {
		t.Error("View() should show the paused badge mid-phase")
	}
	if !strings.Contains(view, "Work · paused") {
		t.Error("View() should label the phase as paused")
	}
}

func TestModel_View_BreakPhase(t *testing.T) {
	model := NewModel(domain.NewTimerState(25*time.Minute, 5*time.Minute), DashboardConfig{})
	model.width = 80
	model.height = 30
	model.state.Phase = domain.PhaseBreak
	model.state.Remaining = 5 * time.Minute
	model.state.Running = true

	view := model.View()
	if !strings.Contains(view, "Break · running") {
		t.Error("View() should show the running break phase")
	}
}

func TestModel_View_Stats(t *testing.T) {
	model := NewModel(domain.NewTimerState(25*time.Minute, 5*time.Minute), DashboardConfig{})
	model.width = 80
	model.height = 30
	model.stats = []domain.StatsPoint{
		{Date: "18 Aug", Sessions: 2, TotalDuration: 3000},
		{Date: "19 Aug", Sessions: 1, TotalDuration: 1500},
	}

	view := model.View()
	if !strings.Contains(view, "18 Aug") || !strings.Contains(view, "19 Aug") {
		t.Error("View() should label each stats row with its date")
	}
	if !strings.Contains(view, "50m") || !strings.Contains(view, "25m") {
		t.Error("View() should show per-day focus minutes")
	}
	if !strings.Contains(view, "3 sessions · 75m focused") {
		t.Error("View() should show the stats total line")
	}
}

func TestModel_View_GitBranch(t *testing.T) {
	model := NewModel(domain.NewTimerState(25*time.Minute, 5*time.Minute), DashboardConfig{
		Git: &ports.GitInfo{Branch: "main", IsClean: true},
	})
	model.width = 80
	model.height = 30

	view := model.View()
	if !strings.Contains(view, "main") {
		t.Error("View() should show the git branch in the header")
	}
}

func TestModel_View_HelpFollowsFocus(t *testing.T) {
	model := NewModel(domain.NewTimerState(25*time.Minute, 5*time.Minute), DashboardConfig{})
	model.width = 80
	model.height = 30

	view := model.View()
	if !strings.Contains(view, "[s]tart") {
		t.Error("timer-focused help should list [s]tart")
	}

	model.focus = focusTasks
	view = model.View()
	if !strings.Contains(view, "[a]dd") {
		t.Error("task-focused help should list [a]dd")
	}
}

func TestModel_VisibleTasks_Window(t *testing.T) {
	model := NewModel(domain.NewTimerState(25*time.Minute, 5*time.Minute), DashboardConfig{})
	for i := 1; i <= 20; i++ {
		model.tasks = append(model.tasks, domain.Task{ID: i, Title: "Task", Status: domain.StatusPending})
	}
	model.cursor = 15

	visible, offset := model.visibleTasks()
	if len(visible) != maxVisibleTasks {
		t.Fatalf("visibleTasks() returned %d tasks, want %d", len(visible), maxVisibleTasks)
	}
	if model.cursor < offset || model.cursor >= offset+len(visible) {
		t.Errorf("cursor %d outside window [%d, %d)", model.cursor, offset, offset+len(visible))
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status domain.TaskStatus
		want   string
	}{
		{domain.StatusPending, "○"},
		{domain.StatusInProgress, "◐"},
		{domain.StatusDone, "●"},
	}
	for _, tt := range tests {
		if got := statusIcon(tt.status); got != tt.want {
			t.Errorf("statusIcon(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
