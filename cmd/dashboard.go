package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/adapters/tui"
	"github.com/RandomEggs/randomEggsTracker/internal/config"
	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
	"github.com/RandomEggs/randomEggsTracker/internal/services"
)

// runDashboard implements the bare "eggtimer" command: open the full-screen
// dashboard against the configured backend.
func runDashboard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the dashboard needs a terminal; use subcommands like \"eggtimer list\" in scripts")
	}

	if app.config.FirstRun {
		if err := runFirstRunSetup(); err != nil {
			return err
		}
	}

	ctx := setupSignalHandler()
	return launchDashboard(ctx)
}

// launchDashboard wires the timer engine and the backend services into the
// Bubbletea dashboard and runs it until quit or cancellation.
func launchDashboard(ctx context.Context) error {
	var gitInfo *ports.GitInfo
	if app.git.IsAvailable() {
		gitInfo, _ = app.git.Detect(ctx, "")
	}

	cfg := tui.DashboardConfig{
		Theme:                &app.config.Theme,
		Git:                  gitInfo,
		NotificationsEnabled: app.config.Notifications.Enabled,
		NotificationToggle: func(enabled bool) {
			app.config.Notifications.Enabled = enabled
			app.notifier.SetEnabled(enabled)
			_ = config.Save(app.config)
		},
		CommandCallback: func(c ports.TimerCommand) error {
			switch c {
			case ports.CmdStart:
				return app.timer.Start(ctx)
			case ports.CmdPause:
				app.timer.Pause()
				return nil
			case ports.CmdResume:
				app.timer.Resume()
				return nil
			case ports.CmdReset:
				app.timer.Reset()
				return nil
			default:
				return fmt.Errorf("unknown command: %v", c)
			}
		},
		SetActiveTask: app.timer.SetActiveTask,
		FetchTasks: func() ([]domain.Task, error) {
			return app.tasks.ListTasks(ctx)
		},
		FetchStats: func() ([]domain.StatsPoint, error) {
			return app.stats.FocusStats(ctx)
		},
		AddTask: func(title string) (*domain.Task, error) {
			return app.tasks.AddTask(ctx, services.AddTaskRequest{Title: title})
		},
		SetTaskStatus: func(id int, status domain.TaskStatus) error {
			return app.tasks.SetStatus(ctx, id, status)
		},
		RenameTask: func(id int, title string) error {
			return app.tasks.Rename(ctx, id, title)
		},
		DeleteTask: func(id int) error {
			return app.tasks.DeleteTask(ctx, id)
		},
	}

	model := tui.NewModel(app.timer.State(), cfg)
	dashboard := tui.NewDashboard()

	// Engine snapshots flow into the running program as messages.
	app.timer.Subscribe(dashboard.PushTimerState)

	if err := dashboard.Run(ctx, model); err != nil {
		return err
	}
	return nil
}

// runFirstRunSetup walks a new user through the preset and server choice,
// then clears the first-run marker. Rebuilds the service stack so a changed
// server URL takes effect immediately.
func runFirstRunSetup() error {
	fmt.Println()
	fmt.Println("  Welcome to eggtimer! Let's set you up.")
	fmt.Println()

	items := make([]tui.PickerItem, len(domain.Presets))
	for i, p := range domain.Presets {
		items[i] = tui.PickerItem{
			Label: p.Name,
			Desc:  fmt.Sprintf("%d min work / %d min break", int(p.Work.Minutes()), int(p.Break.Minutes())),
		}
	}
	result := tui.RunPicker("Pick your rhythm:", items, "Change anytime with \"eggtimer config\"", &app.config.Theme)
	if !result.Aborted {
		preset := domain.Presets[result.Index]
		app.config.ApplyPreset(preset.Work, preset.Break)
	}

	urlResult := tui.RunTextPrompt("Backend URL (Enter to keep "+app.config.Server.URL+"):", app.config.Server.URL, &app.config.Theme)
	if !urlResult.Aborted && urlResult.Value != "" {
		app.config.Server.URL = strings.TrimRight(urlResult.Value, "/")
	}

	app.config.FirstRun = false
	if err := config.Save(app.config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	buildServices()

	work, brk := app.config.Durations()
	fmt.Printf("  Ready: %s work / %s break against %s\n", formatMinutes(work), formatMinutes(brk), app.config.Server.URL)
	fmt.Println()
	return nil
}
