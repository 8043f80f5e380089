package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkendrick/inkwell/internal/domain"
)

// StatsRepository implements domain.StatsRepository using Postgres.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new Postgres-backed StatsRepository.
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db.SqlDB}
}

func (r *StatsRepository) Totals(ctx context.Context) (*domain.SiteStats, error) {
	stats := &domain.SiteStats{}
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM blog_posts),
			(SELECT COUNT(*) FROM comments),
			(SELECT COUNT(*) FROM feedback)
	`).Scan(&stats.Users, &stats.Posts, &stats.Comments, &stats.Feedback)
	if err != nil {
		return nil, fmt.Errorf("site totals: %w", err)
	}
	return stats, nil
}
