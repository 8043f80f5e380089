package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/service"
)

func TestUserService_UpdateUsername_SelfOnly(t *testing.T) {
	authSvc, db := newTestAuthService(t)
	users := service.NewUserService(db.Users())
	ctx := context.Background()

	alice := registerUser(t, authSvc, "alice@example.com", "alice")
	bob := registerUser(t, authSvc, "bob@example.com", "bob99")

	if err := users.UpdateUsername(ctx, alice.ID, alice.ID, "alice2"); err != nil {
		t.Fatalf("self update: %v", err)
	}
	updated, err := users.GetByID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.Username != "alice2" {
		t.Fatalf("expected username alice2, got %s", updated.Username)
	}

	// Another user's profile is off limits.
	err = users.UpdateUsername(ctx, alice.ID, bob.ID, "hijacked")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_UpdateUsername_Invalid(t *testing.T) {
	authSvc, db := newTestAuthService(t)
	users := service.NewUserService(db.Users())
	ctx := context.Background()

	alice := registerUser(t, authSvc, "alice@example.com", "alice")

	err := users.UpdateUsername(ctx, alice.ID, alice.ID, "a!")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
