package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RandomEggs/randomEggsTracker/internal/adapters/api"
	"github.com/RandomEggs/randomEggsTracker/internal/adapters/git"
	"github.com/RandomEggs/randomEggsTracker/internal/adapters/notification"
	"github.com/RandomEggs/randomEggsTracker/internal/config"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
	"github.com/RandomEggs/randomEggsTracker/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	backend  *api.Client
	timer    *services.TimerService
	tasks    *services.TaskService
	stats    *services.StatsService
	state    *services.StateService
	git      ports.GitDetector
	notifier *notification.Notifier
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// --server overrides the configured backend for this invocation only
	if serverFlag != "" {
		app.config.Server.URL = serverFlag
	}

	// Initialize notifier and git detector
	app.notifier = notification.New(&app.config.Notifications)
	app.git = git.NewDetector()

	buildServices()
	return nil
}

// buildServices (re)creates the backend client and the services that wrap
// it from the current configuration. Called again after first-run setup,
// which may change the server URL.
func buildServices() {
	app.backend = api.New(app.config.Server.URL, time.Duration(app.config.Server.Timeout))

	work, brk := app.config.Durations()
	app.timer = services.NewTimerService(app.backend, app.notifier, work, brk)
	app.tasks = services.NewTaskService(app.backend)
	app.stats = services.NewStatsService(app.backend)
	app.state = services.NewStateService(app.timer, app.tasks, app.stats)
}

// cleanupServices stops the timer engine.
func cleanupServices() error {
	if app.timer != nil {
		app.timer.Close()
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
