package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/service"
)

func registerUser(t *testing.T, authSvc *service.AuthService, email, username string) *domain.User {
	t.Helper()
	user, err := authSvc.Register(context.Background(), email, username, "secret1")
	if err != nil {
		t.Fatalf("Register %s: %v", email, err)
	}
	return user
}

func TestPostService_Create_AttributionOverridesClientValue(t *testing.T) {
	authSvc, db := newTestAuthService(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	alice := registerUser(t, authSvc, "alice@example.com", "alice")

	// A conflicting author on the incoming post is ignored.
	post := &domain.BlogPost{
		AuthorID: "someone-else",
		Title:    "First Post",
		Body:     "Hello world",
		Status:   domain.PostStatusPublished,
	}
	if err := posts.Create(ctx, alice.ID, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if post.AuthorID != alice.ID {
		t.Fatalf("expected author %s, got %s", alice.ID, post.AuthorID)
	}

	stored, err := posts.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.AuthorID != alice.ID {
		t.Fatalf("expected stored author %s, got %s", alice.ID, stored.AuthorID)
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	authSvc, db := newTestAuthService(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	alice := registerUser(t, authSvc, "alice@example.com", "alice")

	tests := []struct {
		name string
		post domain.BlogPost
	}{
		{"missing title", domain.BlogPost{Body: "b", Status: domain.PostStatusDraft}},
		{"missing body", domain.BlogPost{Title: "t", Status: domain.PostStatusDraft}},
		{"bad status", domain.BlogPost{Title: "t", Body: "b", Status: "archived"}},
		{"empty status", domain.BlogPost{Title: "t", Body: "b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			post := tc.post
			if err := posts.Create(ctx, alice.ID, &post); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPostService_List_SubstringFilters(t *testing.T) {
	authSvc, db := newTestAuthService(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	alice := registerUser(t, authSvc, "alice@example.com", "alice")

	seed := []domain.BlogPost{
		{Title: "Go", Body: "b", Tags: "golang,backend", Categories: "Tech", Status: domain.PostStatusPublished},
		{Title: "Sourdough", Body: "b", Tags: "baking", Categories: "Food", Status: domain.PostStatusPublished},
		{Title: "Gophers", Body: "b", Tags: "GOLANG", Categories: "Tech,Animals", Status: domain.PostStatusDraft},
	}
	for i := range seed {
		if err := posts.Create(ctx, alice.ID, &seed[i]); err != nil {
			t.Fatalf("seed post %d: %v", i, err)
		}
	}

	// Tag filter matches case-insensitively as a substring.
	got, err := posts.List(ctx, domain.PostFilter{Tags: "golang"})
	if err != nil {
		t.Fatalf("List by tag: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 golang posts, got %d", len(got))
	}

	got, err = posts.List(ctx, domain.PostFilter{Categories: "food"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Sourdough" {
		t.Fatalf("expected only Sourdough, got %+v", got)
	}

	// Both filters combine with AND.
	got, err = posts.List(ctx, domain.PostFilter{Tags: "golang", Categories: "animals"})
	if err != nil {
		t.Fatalf("List combined: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Gophers" {
		t.Fatalf("expected only Gophers, got %+v", got)
	}

	// No filter returns everything.
	got, err = posts.List(ctx, domain.PostFilter{})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(got))
	}
}

func TestPostService_GetByID_NotFound(t *testing.T) {
	_, db := newTestAuthService(t)
	posts := service.NewPostService(db.Posts())

	_, err := posts.GetByID(context.Background(), "missing-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
