package ports

import (
	"context"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// MCPStateProvider exposes the timer engine and backend operations to the
// MCP server.
// This is a driven port (implemented by the services layer).
type MCPStateProvider interface {
	// TimerState returns a snapshot of the countdown state machine.
	TimerState() domain.TimerState

	// StartTimer starts the timer from a non-running state.
	StartTimer(ctx context.Context) error

	// PauseTimer pauses a running timer; a no-op otherwise.
	PauseTimer()

	// ResumeTimer resumes a paused timer; a no-op otherwise.
	ResumeTimer()

	// ResetTimer returns the timer to an idle work phase.
	ResetTimer()

	// SetActiveTask attaches a task id to future session starts.
	SetActiveTask(taskID *int)

	// ListTasks fetches all open tasks.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// AddTask creates a task on the backend.
	AddTask(ctx context.Context, title string, status domain.TaskStatus) (*domain.Task, error)

	// SetTaskStatus changes a task's status.
	SetTaskStatus(ctx context.Context, id int, status domain.TaskStatus) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id int) error

	// ResolveTask finds the open task best matching a free-form reference.
	ResolveTask(ctx context.Context, ref string) (*domain.Task, error)

	// FocusStats fetches the per-day focus aggregates.
	FocusStats(ctx context.Context) ([]domain.StatsPoint, error)

	// CompletedTasks fetches the grouped overview of done tasks.
	CompletedTasks(ctx context.Context) (*domain.CompletedOverview, error)
}
