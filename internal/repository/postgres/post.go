package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkendrick/inkwell/internal/domain"
)

// PostRepository implements domain.PostRepository using Postgres.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new Postgres-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db.SqlDB}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (id, author_id, title, body_content, tags, categories, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, post.AuthorID, post.Title, post.Body, post.Tags, post.Categories, post.Status, now,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	post := &domain.BlogPost{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, author_id, title, body_content, tags, categories, status, created_at
		 FROM blog_posts WHERE id = $1`, id,
	).Scan(&post.ID, &post.AuthorID, &post.Title, &post.Body, &post.Tags, &post.Categories, &post.Status, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

func (r *PostRepository) List(ctx context.Context, filter domain.PostFilter) ([]domain.BlogPost, error) {
	query := `SELECT id, author_id, title, body_content, tags, categories, status, created_at
		 FROM blog_posts`

	var conds []string
	var args []any
	if filter.Tags != "" {
		args = append(args, "%"+filter.Tags+"%")
		conds = append(conds, fmt.Sprintf("tags ILIKE $%d", len(args)))
	}
	if filter.Categories != "" {
		args = append(args, "%"+filter.Categories+"%")
		conds = append(conds, fmt.Sprintf("categories ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		var p domain.BlogPost
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.Tags, &p.Categories, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
