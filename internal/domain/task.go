// Package domain contains the core entities of the eggtimer client.
// These types mirror what the randomEggsTracker backend serves and are
// independent of any transport or UI framework.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Common domain errors.
var (
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrEmptyTaskTitle  = errors.New("task title cannot be empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrTimerRunning    = errors.New("timer is already running")
)

// TaskStatus represents the current state of a task on the server.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// Task represents a unit of work owned by the backend. The client holds
// an ephemeral copy refreshed after every mutation.
type Task struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// ParseStatus validates a status string from user input.
func ParseStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusPending, StatusInProgress, StatusDone:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q (want pending, in_progress, or done)", ErrInvalidStatus, s)
}

// Valid reports whether the status is one of the three the server accepts.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label returns a human-readable label for the status.
func (s TaskStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Next cycles to the following status: pending → in_progress → done → pending.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusPending
	}
}

// ValidateTitle ensures a task title is usable before it is sent to the server.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTaskTitle
	}
	return nil
}

// IsDone returns true once the task has been completed.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}
