package domain

import (
	"context"
	"time"
)

// Comment is a reader response attached to a post. CommenterID is stamped
// from the authenticated request that created it.
type Comment struct {
	ID          string
	PostID      string
	CommenterID string
	Body        string
	CreatedAt   time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByPost(ctx context.Context, postID string) ([]Comment, error)
}
