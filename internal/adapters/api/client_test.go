package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second)
}

func TestClient_ListTasks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/tasks" {
			t.Errorf("request = %s %s, want GET /tasks", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("request should carry an X-Request-ID")
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 2, "user_id": 1, "title": "Review PR", "status": "in_progress", "created_at": "2025-08-20T09:30:00+00:00"},
			{"id": 1, "user_id": 1, "title": "Write report", "status": "pending", "created_at": "2025-08-19T08:00:00+00:00"}
		]`))
	})

	tasks, err := client.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("ListTasks() returned %d tasks, want 2", len(tasks))
	}
	if tasks[0].ID != 2 || tasks[0].Status != domain.StatusInProgress {
		t.Errorf("ListTasks() first task = %+v, want id 2 in_progress", tasks[0])
	}
	if tasks[1].CreatedAt.IsZero() {
		t.Error("ListTasks() should parse created_at")
	}
}

func TestClient_AddTask(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/add" {
			t.Errorf("request = %s %s, want POST /add", r.Method, r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if payload["title"] != "New task" || payload["status"] != "pending" {
			t.Errorf("payload = %v, want title/status", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 7, "user_id": 1, "title": "New task", "status": "pending", "created_at": "2025-08-22T10:00:00+00:00"}`))
	})

	task, err := client.AddTask(context.Background(), "New task", domain.StatusPending)
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if task.ID != 7 {
		t.Errorf("AddTask() id = %d, want 7", task.ID)
	}
}

func TestClient_UpdateTask(t *testing.T) {
	t.Run("sends only the set fields", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/update/3" {
				t.Errorf("path = %s, want /update/3", r.URL.Path)
			}
			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			if _, ok := payload["title"]; ok {
				t.Error("payload should not contain title for a status-only update")
			}
			if payload["status"] != "done" {
				t.Errorf("payload status = %v, want done", payload["status"])
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 3, "user_id": 1, "title": "T", "status": "done", "created_at": "2025-08-22T10:00:00+00:00"}`))
		})

		status := domain.StatusDone
		if err := client.UpdateTask(context.Background(), 3, ports.TaskUpdate{Status: &status}); err != nil {
			t.Errorf("UpdateTask() error = %v", err)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		status := domain.StatusDone
		err := client.UpdateTask(context.Background(), 99, ports.TaskUpdate{Status: &status})
		if !errors.Is(err, domain.ErrTaskNotFound) {
			t.Errorf("UpdateTask() error = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestClient_DeleteTask(t *testing.T) {
	t.Run("delete existing", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/delete/5" {
				t.Errorf("request = %s %s, want POST /delete/5", r.Method, r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": true}`))
		})
		if err := client.DeleteTask(context.Background(), 5); err != nil {
			t.Errorf("DeleteTask() error = %v", err)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		if err := client.DeleteTask(context.Background(), 5); !errors.Is(err, domain.ErrTaskNotFound) {
			t.Errorf("DeleteTask() error = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestClient_StartSession(t *testing.T) {
	t.Run("without task", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/pomodoro/start" {
				t.Errorf("path = %s, want /api/pomodoro/start", r.URL.Path)
			}
			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			// The key must be present and explicitly null.
			value, ok := payload["task_id"]
			if !ok || value != nil {
				t.Errorf("payload task_id = %v (present %v), want explicit null", value, ok)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"session_id": 11, "start_time": "2025-08-22T10:00:00+00:00"}`))
		})

		id, err := client.StartSession(context.Background(), nil)
		if err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}
		if id != 11 {
			t.Errorf("StartSession() id = %d, want 11", id)
		}
	})

	t.Run("with task", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			if payload["task_id"] != float64(4) {
				t.Errorf("payload task_id = %v, want 4", payload["task_id"])
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"session_id": 12, "start_time": "2025-08-22T10:00:00+00:00"}`))
		})

		taskID := 4
		id, err := client.StartSession(context.Background(), &taskID)
		if err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}
		if id != 12 {
			t.Errorf("StartSession() id = %d, want 12", id)
		}
	})
}

func TestClient_EndSession(t *testing.T) {
	t.Run("reports whole seconds", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/pomodoro/end/11" {
				t.Errorf("path = %s, want /api/pomodoro/end/11", r.URL.Path)
			}
			var payload map[string]int
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			if payload["duration"] != 1500 {
				t.Errorf("payload duration = %d, want 1500", payload["duration"])
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 11, "task_id": null, "user_id": 1, "start_time": "2025-08-22T10:00:00+00:00", "end_time": "2025-08-22T10:25:00+00:00", "duration": 1500}`))
		})

		if err := client.EndSession(context.Background(), 11, 25*time.Minute); err != nil {
			t.Errorf("EndSession() error = %v", err)
		}
	})

	t.Run("already ended", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "Session already ended"}`))
		})

		err := client.EndSession(context.Background(), 11, 25*time.Minute)
		var serr *StatusError
		if !errors.As(err, &serr) {
			t.Fatalf("EndSession() error = %v, want StatusError", err)
		}
		if serr.Code != http.StatusBadRequest || serr.Message != "Session already ended" {
			t.Errorf("StatusError = %+v, want 400 with server message", serr)
		}
	})
}

func TestClient_FocusStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/pomodoro/stats" {
			t.Errorf("path = %s, want /api/pomodoro/stats", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date": "18 Aug", "sessions": 3, "total_duration": 4500},
			{"date": "19 Aug", "sessions": 1, "total_duration": 1500}
		]`))
	})

	points, err := client.FocusStats(context.Background())
	if err != nil {
		t.Fatalf("FocusStats() error = %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("FocusStats() returned %d points, want 2", len(points))
	}
	if points[0].Date != "18 Aug" || points[0].Minutes() != 75 {
		t.Errorf("FocusStats() first point = %+v, want 18 Aug / 75 minutes", points[0])
	}
}

func TestClient_CompletedTasks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks/completed" {
			t.Errorf("path = %s, want /api/tasks/completed", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total_completed": 2,
			"months": [
				{
					"month_label": "August 2025",
					"total_tasks": 2,
					"days": [
						{
							"date_label": "20 Aug 2025 (Wednesday)",
							"tasks_count": 2,
							"tasks": [
								{"id": 1, "title": "Ship it", "created_at": "2025-08-20T09:00:00+00:00", "time_label": "02:30 PM"},
								{"id": 2, "title": "Test it", "created_at": "2025-08-20T11:00:00+00:00", "time_label": "04:30 PM"}
							]
						}
					]
				}
			]
		}`))
	})

	overview, err := client.CompletedTasks(context.Background())
	if err != nil {
		t.Fatalf("CompletedTasks() error = %v", err)
	}
	if overview.TotalCompleted != 2 {
		t.Errorf("CompletedTasks() total = %d, want 2", overview.TotalCompleted)
	}
	if len(overview.Months) != 1 || len(overview.Months[0].Days) != 1 {
		t.Fatalf("CompletedTasks() shape = %+v, want 1 month with 1 day", overview)
	}
	if got := overview.Months[0].Days[0].Tasks[0].Title; got != "Ship it" {
		t.Errorf("CompletedTasks() first task = %q, want Ship it", got)
	}
}

func TestClient_BaseURLTrimming(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	// Re-wrap with a trailing slash; paths must not double up.
	trimmed := New(client.baseURL+"/", time.Second)
	if trimmed.baseURL != client.baseURL {
		t.Errorf("New() baseURL = %q, want %q", trimmed.baseURL, client.baseURL)
	}
}
