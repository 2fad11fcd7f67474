package api

import (
	"context"
	"fmt"
	"time"
)

type startSessionPayload struct {
	// A null task id starts an unattached session, same as the selector's
	// "no task" option.
	TaskID *int `json:"task_id"`
}

type startSessionReply struct {
	SessionID int    `json:"session_id"`
	StartTime string `json:"start_time"`
}

type endSessionPayload struct {
	Duration int `json:"duration"`
}

// StartSession opens a pomodoro session and returns its id.
func (c *Client) StartSession(ctx context.Context, taskID *int) (int, error) {
	var reply startSessionReply
	if err := c.post(ctx, "/api/pomodoro/start", startSessionPayload{TaskID: taskID}, &reply); err != nil {
		return 0, err
	}
	return reply.SessionID, nil
}

// EndSession closes a session, reporting the focused time in whole seconds.
func (c *Client) EndSession(ctx context.Context, sessionID int, duration time.Duration) error {
	payload := endSessionPayload{Duration: int(duration.Seconds())}
	return c.post(ctx, fmt.Sprintf("/api/pomodoro/end/%d", sessionID), payload, nil)
}
