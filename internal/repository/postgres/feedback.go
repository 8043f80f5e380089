package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkendrick/inkwell/internal/domain"
)

// FeedbackRepository implements domain.FeedbackRepository using Postgres.
type FeedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a new Postgres-backed FeedbackRepository.
func NewFeedbackRepository(db *DB) *FeedbackRepository {
	return &FeedbackRepository{db: db.SqlDB}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO feedback (id, user_id, message, rating, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, feedback.UserID, feedback.Message, feedback.Rating, now,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}

	feedback.ID = id
	feedback.CreatedAt = now
	return nil
}

func (r *FeedbackRepository) ListRecent(ctx context.Context, limit int) ([]domain.Feedback, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, message, rating, created_at
		 FROM feedback ORDER BY created_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var entries []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Message, &f.Rating, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		entries = append(entries, f)
	}
	return entries, rows.Err()
}
