package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// Dashboard owns the Bubbletea program for the full-screen view. Engine
// snapshots are forwarded into the program with PushTimerState; everything
// else flows through the model's own commands.
type Dashboard struct {
	mu      sync.RWMutex
	program *tea.Program
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewDashboard creates an idle dashboard runner.
func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// Run starts the dashboard and blocks until the user quits or ctx is
// cancelled.
func (d *Dashboard) Run(ctx context.Context, model Model) error {
	ctx, cancel := context.WithCancel(ctx)
	program := tea.NewProgram(model, tea.WithAltScreen())

	d.mu.Lock()
	d.program = program
	d.cancel = cancel
	d.mu.Unlock()
	defer cancel()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		<-ctx.Done()
		program.Quit()
	}()

	_, err := program.Run()

	cancel()
	d.wg.Wait()

	d.mu.Lock()
	d.program = nil
	d.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

// PushTimerState forwards an engine snapshot into the running program.
// Safe to call from any goroutine; a no-op while the program is down.
func (d *Dashboard) PushTimerState(state domain.TimerState) {
	d.mu.RLock()
	program := d.program
	d.mu.RUnlock()

	if program != nil {
		program.Send(timerMsg(state))
	}
}

// Stop gracefully stops the dashboard.
func (d *Dashboard) Stop() {
	d.mu.RLock()
	cancel := d.cancel
	d.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
}
