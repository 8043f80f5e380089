package service

import (
	"context"
	"fmt"

	"github.com/mkendrick/inkwell/internal/domain"
)

// reportLimit caps the feedback entries returned for the admin report view.
const reportLimit = 50

// FeedbackService handles site feedback submissions and the admin report
// listing.
type FeedbackService struct {
	feedback domain.FeedbackRepository
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(feedback domain.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

// Submit stores a feedback entry. userID is nil for anonymous
// submissions; when present it is the authenticated identity, never a
// client-supplied value.
func (s *FeedbackService) Submit(ctx context.Context, userID *string, message string, rating int) (*domain.Feedback, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}

	entry := &domain.Feedback{
		UserID:  userID,
		Message: message,
		Rating:  rating,
	}

	if err := s.feedback.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return entry, nil
}

// ListRecent returns the most recent feedback entries for the admin
// dashboard.
func (s *FeedbackService) ListRecent(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.ListRecent(ctx, reportLimit)
}
