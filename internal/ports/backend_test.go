package ports

import (
	"context"
	"testing"
	"time"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// Mock implementations verifying the gateway contracts.

type mockBackend struct {
	tasks     map[int]domain.Task
	nextID    int
	sessionID int
	ended     map[int]int
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		tasks:  map[int]domain.Task{},
		nextID: 1,
		ended:  map[int]int{},
	}
}

func (m *mockBackend) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range m.tasks {
		if t.Status != domain.StatusDone {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockBackend) AddTask(ctx context.Context, title string, status domain.TaskStatus) (*domain.Task, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return nil, err
	}
	t := domain.Task{ID: m.nextID, Title: title, Status: status, CreatedAt: time.Now()}
	m.tasks[t.ID] = t
	m.nextID++
	return &t, nil
}

func (m *mockBackend) UpdateTask(ctx context.Context, id int, update TaskUpdate) error {
	t, ok := m.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	m.tasks[id] = t
	return nil
}

func (m *mockBackend) DeleteTask(ctx context.Context, id int) error {
	if _, ok := m.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockBackend) CompletedTasks(ctx context.Context) (*domain.CompletedOverview, error) {
	return &domain.CompletedOverview{}, nil
}

func (m *mockBackend) StartSession(ctx context.Context, taskID *int) (int, error) {
	m.sessionID++
	return m.sessionID, nil
}

func (m *mockBackend) EndSession(ctx context.Context, sessionID int, duration time.Duration) error {
	m.ended[sessionID] = int(duration.Seconds())
	return nil
}

func (m *mockBackend) FocusStats(ctx context.Context) ([]domain.StatsPoint, error) {
	return nil, nil
}

// Compile-time checks that the mock satisfies every gateway port.
var (
	_ TaskGateway    = (*mockBackend)(nil)
	_ SessionGateway = (*mockBackend)(nil)
	_ StatsGateway   = (*mockBackend)(nil)
	_ Backend        = (*mockBackend)(nil)
)

func TestTaskGatewayContract(t *testing.T) {
	ctx := context.Background()
	backend := newMockBackend()

	task, err := backend.AddTask(ctx, "Write release notes", domain.StatusPending)
	if err != nil {
		t.Fatalf("AddTask() unexpected error = %v", err)
	}

	status := domain.StatusDone
	if err := backend.UpdateTask(ctx, task.ID, TaskUpdate{Status: &status}); err != nil {
		t.Fatalf("UpdateTask() unexpected error = %v", err)
	}

	tasks, err := backend.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks() unexpected error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("ListTasks() returned %d tasks, want 0 after completion", len(tasks))
	}
}

func TestSessionGatewayContract(t *testing.T) {
	ctx := context.Background()
	backend := newMockBackend()

	id, err := backend.StartSession(ctx, nil)
	if err != nil {
		t.Fatalf("StartSession() unexpected error = %v", err)
	}

	if err := backend.EndSession(ctx, id, 90*time.Second); err != nil {
		t.Fatalf("EndSession() unexpected error = %v", err)
	}
	if got := backend.ended[id]; got != 90 {
		t.Errorf("EndSession() recorded %d seconds, want 90", got)
	}
}
