package domain

import "time"

// CompletedOverview is the month/day-grouped view of finished tasks served
// by GET /api/tasks/completed. Grouping and ordering are done server-side.
type CompletedOverview struct {
	TotalCompleted int              `json:"total_completed"`
	Months         []CompletedMonth `json:"months"`
}

// CompletedMonth groups one calendar month of completed tasks.
type CompletedMonth struct {
	MonthLabel string         `json:"month_label"`
	TotalTasks int            `json:"total_tasks"`
	Days       []CompletedDay `json:"days"`
}

// CompletedDay groups the tasks finished on a single day.
type CompletedDay struct {
	DateLabel  string          `json:"date_label"`
	TasksCount int             `json:"tasks_count"`
	Tasks      []CompletedTask `json:"tasks"`
}

// CompletedTask is one finished task inside the overview.
type CompletedTask struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	TimeLabel string    `json:"time_label"`
}
