// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

// TaskService handles task-related use cases. Tasks live on the server;
// every read is a full fetch and every mutation goes straight through so
// the next fetch reflects server truth.
type TaskService struct {
	backend ports.TaskGateway
}

// NewTaskService creates a new task service.
func NewTaskService(backend ports.TaskGateway) *TaskService {
	return &TaskService{backend: backend}
}

// ListTasks retrieves the full task list from the server.
func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.backend.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return tasks, nil
}

// AddTaskRequest contains the data needed to create a new task.
type AddTaskRequest struct {
	Title  string
	Status domain.TaskStatus
}

// AddTask creates a new task on the server. An empty status defaults to
// pending.
func (s *TaskService) AddTask(ctx context.Context, req AddTaskRequest) (*domain.Task, error) {
	if err := domain.ValidateTitle(req.Title); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid task: %w", domain.ErrInvalidStatus)
	}

	task, err := s.backend.AddTask(ctx, strings.TrimSpace(req.Title), status)
	if err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}
	return task, nil
}

// SetStatus moves a task to one of the three statuses.
func (s *TaskService) SetStatus(ctx context.Context, id int, status domain.TaskStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}
	update := ports.TaskUpdate{Status: &status}
	if err := s.backend.UpdateTask(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Rename changes a task's title.
func (s *TaskService) Rename(ctx context.Context, id int, title string) error {
	if err := domain.ValidateTitle(title); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(title)
	update := ports.TaskUpdate{Title: &trimmed}
	if err := s.backend.UpdateTask(ctx, id, update); err != nil {
		return fmt.Errorf("failed to rename task: %w", err)
	}
	return nil
}

// DeleteTask removes a task from the server.
func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	if err := s.backend.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// CompletedOverview retrieves the month-grouped history of done tasks.
func (s *TaskService) CompletedOverview(ctx context.Context) (*domain.CompletedOverview, error) {
	overview, err := s.backend.CompletedTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed tasks: %w", err)
	}
	return overview, nil
}

// ResolveTask finds a task by id or by title. A numeric ref matches ids
// first; otherwise an exact (case-insensitive) title match wins, then the
// best fuzzy match.
func (s *TaskService) ResolveTask(ctx context.Context, ref string) (*domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrInvalidTaskID
	}

	tasks, err := s.backend.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	if id, convErr := strconv.Atoi(ref); convErr == nil {
		for i := range tasks {
			if tasks[i].ID == id {
				return &tasks[i], nil
			}
		}
	}

	for i := range tasks {
		if strings.EqualFold(tasks[i].Title, ref) {
			return &tasks[i], nil
		}
	}

	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}
	matches := fuzzy.Find(ref, titles)
	for _, match := range matches {
		if match.Score > 0 {
			return &tasks[match.Index], nil
		}
	}

	return nil, domain.ErrTaskNotFound
}
