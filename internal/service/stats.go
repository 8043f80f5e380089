package service

import (
	"context"
	"fmt"

	"github.com/mkendrick/inkwell/internal/domain"
)

// StatsService computes the totals shown on the admin dashboard.
type StatsService struct {
	stats domain.StatsRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(stats domain.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// Totals returns current site-wide counts.
func (s *StatsService) Totals(ctx context.Context) (*domain.SiteStats, error) {
	totals, err := s.stats.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("site totals: %w", err)
	}
	return totals, nil
}
