package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkendrick/inkwell/internal/domain"
)

// CommentRepository implements domain.CommentRepository using Postgres.
type CommentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new Postgres-backed CommentRepository.
func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{db: db.SqlDB}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, post_id, commenter_id, comment_text, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, comment.PostID, comment.CommenterID, comment.Body, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	comment.ID = id
	comment.CreatedAt = now
	return nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, post_id, commenter_id, comment_text, created_at
		 FROM comments WHERE post_id = $1 ORDER BY created_at, id`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.CommenterID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
