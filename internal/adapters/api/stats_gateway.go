package api

import (
	"context"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// FocusStats fetches the per-day focus aggregates for the recent window.
// Rows arrive oldest first and are rendered in that order.
func (c *Client) FocusStats(ctx context.Context) ([]domain.StatsPoint, error) {
	var points []domain.StatsPoint
	if err := c.get(ctx, "/api/pomodoro/stats", &points); err != nil {
		return nil, err
	}
	return points, nil
}
