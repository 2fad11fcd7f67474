package domain

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TaskStatus
		wantErr bool
	}{
		{
			name:  "pending",
			input: "pending",
			want:  StatusPending,
		},
		{
			name:  "in_progress",
			input: "in_progress",
			want:  StatusInProgress,
		},
		{
			name:  "done",
			input: "done",
			want:  StatusDone,
		},
		{
			name:    "unknown value",
			input:   "archived",
			wantErr: true,
		},
		{
			name:    "empty value",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStatus(%q) error = nil, want error", tt.input)
				}
				if !errors.Is(err, ErrInvalidStatus) {
					t.Errorf("ParseStatus(%q) error = %v, want ErrInvalidStatus", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTaskStatus_Next(t *testing.T) {
	tests := []struct {
		name   string
		status TaskStatus
		want   TaskStatus
	}{
		{
			name:   "pending advances to in_progress",
			status: StatusPending,
			want:   StatusInProgress,
		},
		{
			name:   "in_progress advances to done",
			status: StatusInProgress,
			want:   StatusDone,
		},
		{
			name:   "done wraps to pending",
			status: StatusDone,
			want:   StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Next(); got != tt.want {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskStatus_NextCyclesThroughAllStatuses(t *testing.T) {
	seen := map[TaskStatus]bool{}
	s := StatusPending
	for i := 0; i < 3; i++ {
		seen[s] = true
		s = s.Next()
	}

	if s != StatusPending {
		t.Errorf("three advances should return to pending, got %v", s)
	}
	if len(seen) != 3 {
		t.Errorf("cycle visited %d statuses, want 3", len(seen))
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Write report"); err != nil {
		t.Errorf("ValidateTitle() unexpected error = %v", err)
	}

	if err := ValidateTitle(""); !errors.Is(err, ErrEmptyTaskTitle) {
		t.Errorf("ValidateTitle(\"\") error = %v, want ErrEmptyTaskTitle", err)
	}
}

func TestTask_IsDone(t *testing.T) {
	task := Task{ID: 1, Title: "Test", Status: StatusInProgress}
	if task.IsDone() {
		t.Error("IsDone() = true for in_progress task")
	}

	task.Status = StatusDone
	if !task.IsDone() {
		t.Error("IsDone() = false for done task")
	}
}
