package service

import (
	"context"
	"fmt"

	"github.com/mkendrick/inkwell/internal/domain"
)

// UserService handles public profile reads and self-service profile
// updates.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetByID returns a user by ID.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateUsername changes the display username of targetID. Only the
// account owner may update their own profile.
func (s *UserService) UpdateUsername(ctx context.Context, actorID, targetID, username string) error {
	if actorID != targetID {
		return domain.ErrForbidden
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: username must be alphanumeric and at least 3 characters", domain.ErrInvalidInput)
	}
	return s.users.UpdateUsername(ctx, targetID, username)
}
