// Package tui provides the full-screen dashboard implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RandomEggs/randomEggsTracker/internal/config"
	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

// toastTicks is how many UI ticks a toast stays visible.
const toastTicks = 4

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// focusArea identifies which panel receives list navigation keys.
type focusArea int

const (
	focusTimer focusArea = iota
	focusTasks
)

// toast is one transient dashboard message.
type toast struct {
	text      string
	ticksLeft int
}

// tickMsg is the dashboard's own 1-second UI tick. It drives toast expiry
// only; countdown updates arrive as timerMsg pushed by the engine.
type tickMsg time.Time

// timerMsg wraps an engine state snapshot delivered via Program.Send.
type timerMsg domain.TimerState

// tasksMsg carries the result of an asynchronous task list fetch.
type tasksMsg struct {
	tasks []domain.Task
	err   error
}

// statsMsg carries the result of an asynchronous stats fetch.
type statsMsg struct {
	stats []domain.StatsPoint
	err   error
}

// addTaskResultMsg reports the outcome of an add. The input field is only
// cleared on success, mirroring the add form on the web client.
type addTaskResultMsg struct {
	task *domain.Task
	err  error
}

// taskOpMsg reports the outcome of a status change, rename or delete.
type taskOpMsg struct {
	info string
	err  error
}

// timerOpMsg reports a failed timer transition. Successful transitions need
// no message of their own; the engine pushes a fresh snapshot.
type timerOpMsg struct {
	err error
}

// DashboardConfig wires the dashboard to the service layer. Nil callbacks
// degrade to no-ops so tests can construct partial models.
type DashboardConfig struct {
	Theme                *config.ThemeConfig
	Git                  *ports.GitInfo
	NotificationsEnabled bool
	NotificationToggle   func(bool)
	CommandCallback      func(ports.TimerCommand) error
	SetActiveTask        func(taskID *int)
	FetchTasks           func() ([]domain.Task, error)
	FetchStats           func() ([]domain.StatsPoint, error)
	AddTask              func(title string) (*domain.Task, error)
	SetTaskStatus        func(id int, status domain.TaskStatus) error
	RenameTask           func(id int, title string) error
	DeleteTask           func(id int) error
}

// Model represents the dashboard state.
type Model struct {
	state domain.TimerState
	tasks []domain.Task
	stats []domain.StatsPoint

	input  textinput.Model
	width  int
	height int

	focus         focusArea
	cursor        int
	adding        bool
	editID        int // task id being renamed; 0 when not editing
	confirmDelete bool

	toasts []toast

	notificationsEnabled bool
	notificationToggle   func(bool)

	commandCallback func(ports.TimerCommand) error
	setActiveTask   func(taskID *int)
	fetchTasks      func() ([]domain.Task, error)
	fetchStats      func() ([]domain.StatsPoint, error)
	addTask         func(title string) (*domain.Task, error)
	setTaskStatus   func(id int, status domain.TaskStatus) error
	renameTask      func(id int, title string) error
	deleteTask      func(id int) error

	git   *ports.GitInfo
	theme config.ThemeConfig
}

// NewModel creates a dashboard model seeded with an engine snapshot.
func NewModel(initial domain.TimerState, cfg DashboardConfig) Model {
	ti := textinput.New()
	ti.Placeholder = "task title"
	ti.CharLimit = 120
	ti.Width = 40

	return Model{
		state:                initial,
		input:                ti,
		notificationsEnabled: cfg.NotificationsEnabled,
		notificationToggle:   cfg.NotificationToggle,
		commandCallback:      cfg.CommandCallback,
		setActiveTask:        cfg.SetActiveTask,
		fetchTasks:           cfg.FetchTasks,
		fetchStats:           cfg.FetchStats,
		addTask:              cfg.AddTask,
		setTaskStatus:        cfg.SetTaskStatus,
		renameTask:           cfg.RenameTask,
		deleteTask:           cfg.DeleteTask,
		git:                  cfg.Git,
		theme:                resolveTheme(cfg.Theme),
	}
}

// Init initializes the dashboard: first UI tick plus the initial fetches.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.fetchTasksCmd(), m.fetchStatsCmd())
}

// fetchTasksCmd returns a tea.Cmd that fetches the task list asynchronously.
func (m Model) fetchTasksCmd() tea.Cmd {
	fetch := m.fetchTasks
	if fetch == nil {
		return nil
	}
	return func() tea.Msg {
		tasks, err := fetch()
		return tasksMsg{tasks: tasks, err: err}
	}
}

// fetchStatsCmd returns a tea.Cmd that fetches focus stats asynchronously.
func (m Model) fetchStatsCmd() tea.Cmd {
	fetch := m.fetchStats
	if fetch == nil {
		return nil
	}
	return func() tea.Msg {
		stats, err := fetch()
		return statsMsg{stats: stats, err: err}
	}
}

// timerCommandCmd runs an engine transition off the update loop. The engine
// publishes the resulting snapshot back through Program.Send, so calling it
// from inside Update would deadlock the program.
func (m Model) timerCommandCmd(command ports.TimerCommand) tea.Cmd {
	callback := m.commandCallback
	if callback == nil {
		return nil
	}
	return func() tea.Msg {
		return timerOpMsg{err: callback(command)}
	}
}

// setActiveTaskCmd changes the engine's active task off the update loop.
func (m Model) setActiveTaskCmd(taskID *int) tea.Cmd {
	set := m.setActiveTask
	if set == nil {
		return nil
	}
	return func() tea.Msg {
		set(taskID)
		return timerOpMsg{}
	}
}

func (m Model) submitAddCmd(title string) tea.Cmd {
	add := m.addTask
	if add == nil {
		return nil
	}
	return func() tea.Msg {
		task, err := add(title)
		return addTaskResultMsg{task: task, err: err}
	}
}

func (m Model) renameTaskCmd(id int, title string) tea.Cmd {
	rename := m.renameTask
	if rename == nil {
		return nil
	}
	return func() tea.Msg {
		if err := rename(id, title); err != nil {
			return taskOpMsg{err: err}
		}
		return taskOpMsg{info: fmt.Sprintf("Renamed to %q", title)}
	}
}

func (m Model) setStatusCmd(task domain.Task, status domain.TaskStatus) tea.Cmd {
	set := m.setTaskStatus
	if set == nil {
		return nil
	}
	return func() tea.Msg {
		if err := set(task.ID, status); err != nil {
			return taskOpMsg{err: err}
		}
		if status == domain.StatusDone {
			return taskOpMsg{info: fmt.Sprintf("Completed %q", task.Title)}
		}
		return taskOpMsg{info: fmt.Sprintf("%q is now %s", task.Title, status.Label())}
	}
}

func (m Model) deleteTaskCmd(task domain.Task) tea.Cmd {
	del := m.deleteTask
	if del == nil {
		return nil
	}
	return func() tea.Msg {
		if err := del(task.ID); err != nil {
			return taskOpMsg{err: err}
		}
		return taskOpMsg{info: fmt.Sprintf("Deleted %q", task.Title)}
	}
}

// pushToast appends a transient message with a fresh lifetime.
func (m *Model) pushToast(text string) {
	m.toasts = append(m.toasts, toast{text: text, ticksLeft: toastTicks})
}

// cursorTask returns the task under the cursor, or nil when the list is empty.
func (m Model) cursorTask() *domain.Task {
	if len(m.tasks) == 0 || m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.cursor]
}

// activeTask returns the task attached to the timer, if it is still listed.
func (m Model) activeTask() *domain.Task {
	if m.state.TaskID == nil {
		return nil
	}
	for i := range m.tasks {
		if m.tasks[i].ID == *m.state.TaskID {
			return &m.tasks[i]
		}
	}
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		var live []toast
		for _, t := range m.toasts {
			t.ticksLeft--
			if t.ticksLeft > 0 {
				live = append(live, t)
			}
		}
		m.toasts = live
		return m, tickCmd()

	case timerMsg:
		next := domain.TimerState(msg)
		if next.Phase != m.state.Phase {
			if next.Phase == domain.PhaseBreak {
				m.pushToast("Work complete! Break time.")
			} else {
				m.pushToast("Break over! Back to work.")
			}
		}
		m.state = next
		return m, nil

	case tasksMsg:
		if msg.err != nil {
			m.pushToast(fmt.Sprintf("Failed to load tasks: %v", msg.err))
			return m, nil
		}
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = len(m.tasks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		// The active task is reconciled against every fresh list; a selection
		// whose id is gone falls back to no task.
		if m.state.TaskID != nil && m.activeTask() == nil {
			return m, m.setActiveTaskCmd(nil)
		}
		return m, nil

	case statsMsg:
		if msg.err != nil {
			m.pushToast(fmt.Sprintf("Failed to load stats: %v", msg.err))
			return m, nil
		}
		m.stats = msg.stats
		return m, nil

	case addTaskResultMsg:
		if msg.err != nil {
			m.pushToast(fmt.Sprintf("Add failed: %v", msg.err))
			return m, nil
		}
		m.adding = false
		m.input.Reset()
		if msg.task != nil {
			m.pushToast(fmt.Sprintf("Added %q", msg.task.Title))
		}
		return m, m.fetchTasksCmd()

	case taskOpMsg:
		if msg.err != nil {
			m.pushToast(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}
		if msg.info != "" {
			m.pushToast(msg.info)
		}
		return m, m.fetchTasksCmd()

	case timerOpMsg:
		if msg.err != nil {
			m.pushToast(fmt.Sprintf("Error: %v", msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		if m.adding || m.editID != 0 {
			return m.updateTaskInput(msg)
		}
		return m.updateKeys(msg)
	}

	if m.adding || m.editID != 0 {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateKeys handles keys outside of text input mode.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// A pending delete is confirmed by a second [d] and cancelled by
	// anything else.
	if m.confirmDelete && key != "d" {
		m.confirmDelete = false
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		if m.focus == focusTimer {
			m.focus = focusTasks
		} else {
			m.focus = focusTimer
		}

	case "s":
		return m, m.timerCommandCmd(ports.CmdStart)

	case "p":
		if m.state.Running {
			return m, m.timerCommandCmd(ports.CmdPause)
		}
		if !m.state.Idle() {
			return m, m.timerCommandCmd(ports.CmdResume)
		}

	case "r":
		return m, m.timerCommandCmd(ports.CmdReset)

	case "n":
		m.notificationsEnabled = !m.notificationsEnabled
		if m.notificationToggle != nil {
			m.notificationToggle(m.notificationsEnabled)
		}

	case "g":
		return m, tea.Batch(m.fetchTasksCmd(), m.fetchStatsCmd())

	case "j", "down":
		if m.focus == focusTasks && m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.focus == focusTasks && m.cursor > 0 {
			m.cursor--
		}

	case "enter":
		if m.focus != focusTasks {
			break
		}
		task := m.cursorTask()
		if task == nil || m.setActiveTask == nil {
			break
		}
		if m.state.TaskID != nil && *m.state.TaskID == task.ID {
			m.pushToast("Focus cleared")
			return m, m.setActiveTaskCmd(nil)
		}
		id := task.ID
		m.pushToast(fmt.Sprintf("Focusing on %q", task.Title))
		return m, m.setActiveTaskCmd(&id)

	case "c":
		if m.focus != focusTasks {
			break
		}
		if task := m.cursorTask(); task != nil {
			return m, m.setStatusCmd(*task, task.Status.Next())
		}

	case "a":
		if m.focus != focusTasks {
			break
		}
		m.adding = true
		m.input.Placeholder = "task title"
		m.input.Reset()
		m.input.Focus()
		return m, m.input.Cursor.BlinkCmd()

	case "e":
		if m.focus != focusTasks {
			break
		}
		if task := m.cursorTask(); task != nil {
			m.editID = task.ID
			m.input.Placeholder = "new title"
			m.input.SetValue(task.Title)
			m.input.CursorEnd()
			m.input.Focus()
			return m, m.input.Cursor.BlinkCmd()
		}

	case "d":
		if m.focus != focusTasks {
			break
		}
		task := m.cursorTask()
		if task == nil {
			break
		}
		if m.confirmDelete {
			m.confirmDelete = false
			return m, m.deleteTaskCmd(*task)
		}
		m.confirmDelete = true
	}

	return m, nil
}

// updateTaskInput handles keys while the add/edit field is open.
func (m Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.adding = false
		m.editID = 0
		m.input.Reset()
		m.input.Blur()
		return m, nil

	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.adding = false
			m.editID = 0
			m.input.Reset()
			m.input.Blur()
			return m, nil
		}
		if m.editID != 0 {
			id := m.editID
			m.editID = 0
			m.input.Reset()
			m.input.Blur()
			return m, m.renameTaskCmd(id, title)
		}
		// Adding: the field stays open until the backend confirms.
		return m, m.submitAddCmd(title)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// phaseColor returns the color for the current phase.
func (m Model) phaseColor() lipgloss.Color {
	if m.state.Phase == domain.PhaseBreak {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorWork)
}

// clockColor returns the color for the countdown, accounting for pause state.
func (m Model) clockColor() lipgloss.Color {
	if m.paused() {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	return m.phaseColor()
}

// paused reports whether the countdown sits stopped mid-phase.
func (m Model) paused() bool {
	return !m.state.Running && m.state.Remaining > 0 && m.state.Elapsed() > 0
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{
		m.viewHeader(),
		"",
		m.viewTimer(),
		"",
		m.viewTaskPanel(),
		"",
		m.viewStatsPanel(),
	}
	if toasts := m.viewToasts(); toasts != "" {
		sections = append(sections, "", toasts)
	}
	sections = append(sections, "", m.viewHelp())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	header := fmt.Sprintf("%s eggtimer", m.theme.IconApp)

	if m.git != nil && m.git.Branch != "" {
		branch := m.git.Branch
		if !m.git.IsClean {
			branch += "*"
		}
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
		return titleStyle.Render(header) + helpStyle.Render(fmt.Sprintf("   %s %s", m.theme.IconGit, branch))
	}
	return titleStyle.Render(header)
}

func (m Model) viewTimer() string {
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))
	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))

	var rows []string

	runLabel := "ready"
	if m.state.Running {
		runLabel = "running"
	} else if m.paused() {
		runLabel = "paused"
	}
	rows = append(rows, statusStyle.Render(fmt.Sprintf("%s · %s", m.state.Phase.Label(), runLabel)))

	if task := m.activeTask(); task != nil {
		rows = append(rows, taskStyle.Render(fmt.Sprintf("%s %s", m.theme.IconTask, task.Title)))
	}

	rows = append(rows, "")
	clockStyle := lipgloss.NewStyle().Bold(true).Foreground(m.clockColor())
	rows = append(rows, renderClock(formatClock(m.state.Remaining), clockStyle, m.width))

	if m.paused() {
		badge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(m.theme.ColorPaused)).
			Padding(0, 1).
			Render(fmt.Sprintf("%s PAUSED", m.theme.IconPaused))
		rows = append(rows, "", badge)
	}

	rows = append(rows, "", m.viewProgressBar())
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m Model) viewProgressBar() string {
	var bar progress.Model
	switch {
	case m.paused():
		bar = progress.New(progress.WithGradient(m.theme.PausedGradientStart, m.theme.PausedGradientEnd))
	case m.state.Phase == domain.PhaseBreak:
		bar = progress.New(progress.WithGradient(m.theme.BreakGradientStart, m.theme.BreakGradientEnd))
	default:
		bar = progress.New(progress.WithGradient(m.theme.WorkGradientStart, m.theme.WorkGradientEnd))
	}
	bar.Width = m.width - 4
	if bar.Width > 60 {
		bar.Width = 60
	}
	return bar.ViewAs(m.state.Progress())
}

func (m Model) viewToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	toastStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorToast))
	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		lines = append(lines, toastStyle.Render(t.text))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) viewHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	if m.confirmDelete {
		if task := m.cursorTask(); task != nil {
			return helpStyle.Render(fmt.Sprintf("Delete %q? [d] confirm · any other key cancels", task.Title))
		}
	}
	if m.adding || m.editID != 0 {
		return helpStyle.Render("enter save · esc cancel")
	}
	if m.focus == focusTasks {
		return helpStyle.Render("[j/k] move · [enter] focus · [c] status · [a]dd · [e]dit · [d]elete · [g] refresh · [tab] timer · [q]uit")
	}

	notifLabel := "off"
	if m.notificationsEnabled {
		notifLabel = "on"
	}
	return helpStyle.Render(fmt.Sprintf("[s]tart · [p]ause/resume · [r]eset · [tab] tasks · [n]otify %s · [q]uit", notifLabel))
}

// tickCmd creates a command that sends the next UI tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// formatClock formats a duration as MM:SS.
func formatClock(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
