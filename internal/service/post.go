package service

import (
	"context"
	"fmt"

	"github.com/mkendrick/inkwell/internal/domain"
)

// PostService handles blog post creation and listing.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create validates and stores a new post. AuthorID is always the
// authenticated identity passed by the caller; any author value already
// present on the post is overwritten.
func (s *PostService) Create(ctx context.Context, authorID string, post *domain.BlogPost) error {
	if post.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if post.Body == "" {
		return fmt.Errorf("%w: body content is required", domain.ErrInvalidInput)
	}
	switch post.Status {
	case domain.PostStatusDraft, domain.PostStatusPublished, domain.PostStatusScheduled:
	default:
		return fmt.Errorf("%w: status must be draft, published, or scheduled", domain.ErrInvalidInput)
	}

	post.AuthorID = authorID

	if err := s.posts.Create(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// GetByID returns a post by ID.
func (s *PostService) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.posts.GetByID(ctx, id)
}

// List returns posts matching the filter, newest first.
func (s *PostService) List(ctx context.Context, filter domain.PostFilter) ([]domain.BlogPost, error) {
	return s.posts.List(ctx, filter)
}
