package domain

import (
	"context"
	"time"
)

// Feedback is a site report submitted through the feedback form. UserID is
// nil for anonymous submissions.
type Feedback struct {
	ID        string
	UserID    *string
	Message   string
	Rating    int
	CreatedAt time.Time
}

// FeedbackRepository defines persistence operations for feedback entries.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *Feedback) error
	ListRecent(ctx context.Context, limit int) ([]Feedback, error)
}
