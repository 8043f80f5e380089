package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkendrick/inkwell/internal/domain"
)

// StatsRepository implements domain.StatsRepository using SQLite.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new SQLite-backed StatsRepository.
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db.SqlDB}
}

func (r *StatsRepository) Totals(ctx context.Context) (*domain.SiteStats, error) {
	stats := &domain.SiteStats{}
	counts := []struct {
		table string
		dst   *int
	}{
		{"users", &stats.Users},
		{"blog_posts", &stats.Posts},
		{"comments", &stats.Comments},
		{"feedback", &stats.Feedback},
	}
	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return stats, nil
}
