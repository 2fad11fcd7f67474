// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server        *server.MCPServer
	stateProvider ports.MCPStateProvider
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(stateProvider ports.MCPStateProvider) *Server {
	s := &Server{
		stateProvider: stateProvider,
	}

	s.server = server.NewMCPServer(
		"eggtimer",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools declares every tool the server exposes, paired with its
// handler. Simple tools take no arguments; task references are free-form
// strings resolved server-side by id or fuzzy title.
func (s *Server) registerTools() {
	taskRef := func(verb string) mcp.ToolOption {
		return mcp.WithString(
			"task",
			mcp.Required(),
			mcp.Description("The task to "+verb+", by id or title"),
		)
	}

	tools := []struct {
		tool    mcp.Tool
		handler server.ToolHandlerFunc
	}{
		{
			tool: mcp.NewTool("timer_status",
				mcp.WithDescription("Get the current timer state: phase, remaining time, progress and the attached task")),
			handler: s.handleTimerStatus,
		},
		{
			tool: mcp.NewTool("start_timer",
				mcp.WithDescription("Start the pomodoro timer, opening a work session on the server"),
				mcp.WithString("task", mcp.Description("Optional task to focus on, by id or title"))),
			handler: s.handleStartTimer,
		},
		{
			tool: mcp.NewTool("pause_timer",
				mcp.WithDescription("Pause the running timer")),
			handler: s.handlePauseTimer,
		},
		{
			tool: mcp.NewTool("resume_timer",
				mcp.WithDescription("Resume a paused timer")),
			handler: s.handleResumeTimer,
		},
		{
			tool: mcp.NewTool("reset_timer",
				mcp.WithDescription("Reset the timer to an idle work phase, abandoning any open session")),
			handler: s.handleResetTimer,
		},
		{
			tool: mcp.NewTool("list_tasks",
				mcp.WithDescription("List the open tasks (done tasks are excluded by the server)")),
			handler: s.handleListTasks,
		},
		{
			tool: mcp.NewTool("add_task",
				mcp.WithDescription("Create a new task"),
				mcp.WithString("title", mcp.Required(), mcp.Description("The title of the task")),
				mcp.WithString("status",
					mcp.Description("Initial status (default: pending)"),
					mcp.Enum("pending", "in_progress", "done"))),
			handler: s.handleAddTask,
		},
		{
			tool: mcp.NewTool("set_task_status",
				mcp.WithDescription("Move a task to another status"),
				taskRef("update"),
				mcp.WithString("status",
					mcp.Required(),
					mcp.Description("The new status"),
					mcp.Enum("pending", "in_progress", "done"))),
			handler: s.handleSetTaskStatus,
		},
		{
			tool: mcp.NewTool("delete_task",
				mcp.WithDescription("Delete a task"),
				taskRef("delete")),
			handler: s.handleDeleteTask,
		},
		{
			tool: mcp.NewTool("focus_stats",
				mcp.WithDescription("Get the per-day focus totals for the last seven days")),
			handler: s.handleFocusStats,
		},
		{
			tool: mcp.NewTool("completed_tasks",
				mcp.WithDescription("Get the month-grouped overview of completed tasks")),
			handler: s.handleCompletedTasks,
		},
	}

	for _, reg := range tools {
		s.server.AddTool(reg.tool, reg.handler)
	}
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

// formatClock renders a duration as M:SS.
func formatClock(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func (s *Server) timerStatus() (map[string]interface{}, error) {
	state := s.stateProvider.TimerState()
	result := map[string]interface{}{
		"phase":             string(state.Phase),
		"running":           state.Running,
		"remaining":         formatClock(state.Remaining),
		"remaining_seconds": int(state.Remaining.Seconds()),
		"work_duration":     state.WorkDuration.String(),
		"break_duration":    state.BreakDuration.String(),
		"progress_percent":  state.Percent(),
	}
	if state.SessionID != nil {
		result["session_id"] = *state.SessionID
	}
	if state.TaskID != nil {
		result["task_id"] = *state.TaskID
	}
	return result, nil
}

func (s *Server) timerStatusResult() (*mcp.CallToolResult, error) {
	result, err := s.timerStatus()
	if err != nil {
		return nil, err
	}
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timer state: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func taskJSON(task *domain.Task) map[string]interface{} {
	return map[string]interface{}{
		"id":         task.ID,
		"title":      task.Title,
		"status":     string(task.Status),
		"created_at": task.CreatedAt.Format("2006-01-02T15:04:05"),
	}
}

// handleTimerStatus handles the timer_status tool.
func (s *Server) handleTimerStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.timerStatusResult()
}

// handleStartTimer handles the start_timer tool.
func (s *Server) handleStartTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if ref := request.GetString("task", ""); ref != "" {
		task, err := s.stateProvider.ResolveTask(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to resolve task %q: %v", ref, err)), nil
		}
		s.stateProvider.SetActiveTask(&task.ID)
	}

	if err := s.stateProvider.StartTimer(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to start timer: %v", err)), nil
	}

	return s.timerStatusResult()
}

// handlePauseTimer handles the pause_timer tool.
func (s *Server) handlePauseTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.stateProvider.PauseTimer()
	return s.timerStatusResult()
}

// handleResumeTimer handles the resume_timer tool.
func (s *Server) handleResumeTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.stateProvider.ResumeTimer()
	return s.timerStatusResult()
}

// handleResetTimer handles the reset_timer tool.
func (s *Server) handleResetTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.stateProvider.ResetTimer()
	return s.timerStatusResult()
}

// handleListTasks handles the list_tasks tool.
func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := s.stateProvider.ListTasks(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list tasks: %v", err)), nil
	}

	taskList := make([]map[string]interface{}, 0, len(tasks))
	for i := range tasks {
		taskList = append(taskList, taskJSON(&tasks[i]))
	}

	result := map[string]interface{}{
		"tasks":       taskList,
		"total_count": len(taskList),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleAddTask handles the add_task tool.
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title is required: " + err.Error()), nil
	}

	status := domain.TaskStatus(request.GetString("status", string(domain.StatusPending)))

	task, err := s.stateProvider.AddTask(ctx, title, status)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add task: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(taskJSON(task), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleSetTaskStatus handles the set_task_status tool.
func (s *Server) handleSetTaskStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := request.RequireString("task")
	if err != nil {
		return mcp.NewToolResultError("task is required: " + err.Error()), nil
	}

	rawStatus, err := request.RequireString("status")
	if err != nil {
		return mcp.NewToolResultError("status is required: " + err.Error()), nil
	}
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	task, err := s.stateProvider.ResolveTask(ctx, ref)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resolve task %q: %v", ref, err)), nil
	}

	if err := s.stateProvider.SetTaskStatus(ctx, task.ID, status); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update task: %v", err)), nil
	}

	result := map[string]interface{}{
		"id":     task.ID,
		"title":  task.Title,
		"status": string(status),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleDeleteTask handles the delete_task tool.
func (s *Server) handleDeleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := request.RequireString("task")
	if err != nil {
		return mcp.NewToolResultError("task is required: " + err.Error()), nil
	}

	task, err := s.stateProvider.ResolveTask(ctx, ref)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resolve task %q: %v", ref, err)), nil
	}

	if err := s.stateProvider.DeleteTask(ctx, task.ID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete task: %v", err)), nil
	}

	result := map[string]interface{}{
		"deleted": task.ID,
		"title":   task.Title,
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleFocusStats handles the focus_stats tool.
func (s *Server) handleFocusStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	points, err := s.stateProvider.FocusStats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch stats: %v", err)), nil
	}

	days := make([]map[string]interface{}, 0, len(points))
	for _, p := range points {
		days = append(days, map[string]interface{}{
			"date":          p.Date,
			"sessions":      p.Sessions,
			"focus_minutes": p.Minutes(),
		})
	}

	result := map[string]interface{}{
		"days":                days,
		"total_sessions":      domain.TotalSessions(points),
		"total_focus_minutes": domain.TotalFocusMinutes(points),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stats: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleCompletedTasks handles the completed_tasks tool.
func (s *Server) handleCompletedTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	overview, err := s.stateProvider.CompletedTasks(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch completed tasks: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(overview, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal overview: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
