package service

import (
	"context"
	"fmt"

	"github.com/mkendrick/inkwell/internal/domain"
)

// CommentService handles comment creation and listing.
type CommentService struct {
	comments domain.CommentRepository
	posts    domain.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments domain.CommentRepository, posts domain.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create validates and stores a comment on an existing post. CommenterID
// is always the authenticated identity passed by the caller.
func (s *CommentService) Create(ctx context.Context, commenterID, postID, body string) (*domain.Comment, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:      postID,
		CommenterID: commenterID,
		Body:        body,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// ListByPost returns a post's comments, oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}
