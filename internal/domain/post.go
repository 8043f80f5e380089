package domain

import (
	"context"
	"time"
)

// BlogPost is a published or draft article. AuthorID is stamped from the
// authenticated request that created the post and is never reassigned.
type BlogPost struct {
	ID         string
	AuthorID   string
	Title      string
	Body       string
	Tags       string
	Categories string
	Status     string
	CreatedAt  time.Time
}

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusScheduled = "scheduled"
)

// PostFilter narrows a post listing. Non-empty fields match as
// case-insensitive substrings.
type PostFilter struct {
	Tags       string
	Categories string
}

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *BlogPost) error
	GetByID(ctx context.Context, id string) (*BlogPost, error)
	List(ctx context.Context, filter PostFilter) ([]BlogPost, error)
}
