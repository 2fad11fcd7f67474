// Package ports defines the interfaces (driven and driving ports)
// for the eggtimer client following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// TaskUpdate carries the optional fields accepted by the update endpoint.
// Nil fields are omitted from the request body.
type TaskUpdate struct {
	Title  *string
	Status *domain.TaskStatus
}

// TaskGateway wraps the backend's task endpoints.
// This is a driven port (implemented by adapters).
type TaskGateway interface {
	// ListTasks fetches all open tasks in server order (newest first).
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// AddTask creates a task and returns the server's copy.
	AddTask(ctx context.Context, title string, status domain.TaskStatus) (*domain.Task, error)

	// UpdateTask changes a task's title and/or status.
	UpdateTask(ctx context.Context, id int, update TaskUpdate) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id int) error

	// CompletedTasks fetches the month/day-grouped overview of done tasks.
	CompletedTasks(ctx context.Context) (*domain.CompletedOverview, error)
}

// SessionGateway wraps the backend's pomodoro session endpoints.
// This is a driven port (implemented by adapters).
type SessionGateway interface {
	// StartSession opens a session for the given task (nil for none) and
	// returns the new session id.
	StartSession(ctx context.Context, taskID *int) (int, error)

	// EndSession closes a session, reporting the elapsed focus time.
	EndSession(ctx context.Context, sessionID int, duration time.Duration) error
}

// StatsGateway wraps the backend's stats endpoint.
// This is a driven port (implemented by adapters).
type StatsGateway interface {
	// FocusStats fetches the per-day focus aggregates in server order.
	FocusStats(ctx context.Context) ([]domain.StatsPoint, error)
}

// Backend is the combined gateway interface for the whole server surface.
// This is a driven port (implemented by adapters).
type Backend interface {
	TaskGateway
	SessionGateway
	StatsGateway
}
