package services

import (
	"context"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

// StateService implements the MCPStateProvider interface by delegating to
// the timer engine and the backend-facing services.
type StateService struct {
	timer *TimerService
	tasks *TaskService
	stats *StatsService
}

// NewStateService creates a new state service.
func NewStateService(timer *TimerService, tasks *TaskService, stats *StatsService) *StateService {
	return &StateService{timer: timer, tasks: tasks, stats: stats}
}

// TimerState implements ports.MCPStateProvider.
func (s *StateService) TimerState() domain.TimerState {
	return s.timer.State()
}

// StartTimer implements ports.MCPStateProvider.
func (s *StateService) StartTimer(ctx context.Context) error {
	return s.timer.Start(ctx)
}

// PauseTimer implements ports.MCPStateProvider.
func (s *StateService) PauseTimer() {
	s.timer.Pause()
}

// ResumeTimer implements ports.MCPStateProvider.
func (s *StateService) ResumeTimer() {
	s.timer.Resume()
}

// ResetTimer implements ports.MCPStateProvider.
func (s *StateService) ResetTimer() {
	s.timer.Reset()
}

// SetActiveTask implements ports.MCPStateProvider.
func (s *StateService) SetActiveTask(taskID *int) {
	s.timer.SetActiveTask(taskID)
}

// ListTasks implements ports.MCPStateProvider.
func (s *StateService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.ListTasks(ctx)
}

// AddTask implements ports.MCPStateProvider.
func (s *StateService) AddTask(ctx context.Context, title string, status domain.TaskStatus) (*domain.Task, error) {
	return s.tasks.AddTask(ctx, AddTaskRequest{Title: title, Status: status})
}

// SetTaskStatus implements ports.MCPStateProvider.
func (s *StateService) SetTaskStatus(ctx context.Context, id int, status domain.TaskStatus) error {
	return s.tasks.SetStatus(ctx, id, status)
}

// DeleteTask implements ports.MCPStateProvider.
func (s *StateService) DeleteTask(ctx context.Context, id int) error {
	return s.tasks.DeleteTask(ctx, id)
}

// ResolveTask implements ports.MCPStateProvider.
func (s *StateService) ResolveTask(ctx context.Context, ref string) (*domain.Task, error) {
	return s.tasks.ResolveTask(ctx, ref)
}

// FocusStats implements ports.MCPStateProvider.
func (s *StateService) FocusStats(ctx context.Context) ([]domain.StatsPoint, error) {
	return s.stats.FocusStats(ctx)
}

// CompletedTasks implements ports.MCPStateProvider.
func (s *StateService) CompletedTasks(ctx context.Context) (*domain.CompletedOverview, error) {
	return s.tasks.CompletedOverview(ctx)
}

// Ensure StateService implements MCPStateProvider.
var _ ports.MCPStateProvider = (*StateService)(nil)
