package services

import (
	"context"
	"fmt"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

// StatsService retrieves focus statistics. The server owns the aggregation;
// the client only renders what it is given, in the order it is given.
type StatsService struct {
	backend ports.StatsGateway
}

// NewStatsService creates a new stats service.
func NewStatsService(backend ports.StatsGateway) *StatsService {
	return &StatsService{backend: backend}
}

// FocusStats returns the per-day focus totals for the recent window.
func (s *StatsService) FocusStats(ctx context.Context) ([]domain.StatsPoint, error) {
	points, err := s.backend.FocusStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	return points, nil
}
