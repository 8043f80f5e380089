package handler

import (
	"time"

	"github.com/mkendrick/inkwell/internal/domain"
)

// UserDTO is the JSON representation of the caller's own account.
type UserDTO struct {
	ID        string `json:"user_uid"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// ProfileDTO is the public view of a user. No email, no role.
type ProfileDTO struct {
	ID        string `json:"user_uid"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

func toProfileDTO(u *domain.User) ProfileDTO {
	return ProfileDTO{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// PostDTO is the JSON representation of a blog post.
type PostDTO struct {
	ID         string `json:"post_uid"`
	AuthorID   string `json:"author_uid"`
	Title      string `json:"title"`
	Body       string `json:"body_content"`
	Tags       string `json:"tags"`
	Categories string `json:"categories"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

func toPostDTO(p *domain.BlogPost) PostDTO {
	return PostDTO{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		Title:      p.Title,
		Body:       p.Body,
		Tags:       p.Tags,
		Categories: p.Categories,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

func toPostDTOs(posts []domain.BlogPost) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	return dtos
}

// CommentDTO is the JSON representation of a comment.
type CommentDTO struct {
	ID          string `json:"comment_uid"`
	PostID      string `json:"post_uid"`
	CommenterID string `json:"commenter_uid"`
	Body        string `json:"comment_text"`
	CreatedAt   string `json:"created_at"`
}

func toCommentDTO(c *domain.Comment) CommentDTO {
	return CommentDTO{
		ID:          c.ID,
		PostID:      c.PostID,
		CommenterID: c.CommenterID,
		Body:        c.Body,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func toCommentDTOs(comments []domain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i := range comments {
		dtos[i] = toCommentDTO(&comments[i])
	}
	return dtos
}

// FeedbackDTO is the JSON representation of a feedback entry.
type FeedbackDTO struct {
	ID        string  `json:"feedback_uid"`
	UserID    *string `json:"user_uid"`
	Message   string  `json:"message"`
	Rating    int     `json:"rating"`
	CreatedAt string  `json:"created_at"`
}

func toFeedbackDTO(f *domain.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:        f.ID,
		UserID:    f.UserID,
		Message:   f.Message,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

func toFeedbackDTOs(entries []domain.Feedback) []FeedbackDTO {
	dtos := make([]FeedbackDTO, len(entries))
	for i := range entries {
		dtos[i] = toFeedbackDTO(&entries[i])
	}
	return dtos
}

// StatsDTO is the JSON representation of the site totals.
type StatsDTO struct {
	Users    int `json:"users"`
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
	Feedback int `json:"feedback"`
}

func toStatsDTO(s *domain.SiteStats) StatsDTO {
	return StatsDTO{Users: s.Users, Posts: s.Posts, Comments: s.Comments, Feedback: s.Feedback}
}
