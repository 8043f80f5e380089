package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mkendrick/inkwell/internal/auth"
	"github.com/mkendrick/inkwell/internal/handler"
	"github.com/mkendrick/inkwell/internal/repository/sqlite"
	"github.com/mkendrick/inkwell/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests"

func newTestServices(t *testing.T) (*service.AuthService, *sqlite.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Cost 4 for fast tests.
	authSvc := service.NewAuthService(db.Users(), auth.NewPasswordHasher(4), auth.NewTokenIssuer(testJWTSecret))
	return authSvc, db
}

func loginUser(t *testing.T, authSvc *service.AuthService, email, username string) string {
	t.Helper()
	ctx := context.Background()
	if _, err := authSvc.Register(ctx, email, username, "secret1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := authSvc.Login(ctx, email, "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return token
}

func TestResolveIdentity_ValidToken(t *testing.T) {
	authSvc, _ := newTestServices(t)
	token := loginUser(t, authSvc, "valid@example.com", "valid1")

	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := handler.UserFromContext(r.Context()); user != nil {
			gotUser = user.Username
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ResolveIdentity(authSvc, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "valid1" {
		t.Fatalf("expected user 'valid1', got %q", gotUser)
	}
}

func TestResolveIdentity_NoHeaderIsAnonymous(t *testing.T) {
	authSvc, _ := newTestServices(t)

	var sawAnonymous bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAnonymous = handler.UserFromContext(r.Context()) == nil
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ResolveIdentity(authSvc, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !sawAnonymous {
		t.Fatal("expected nil user in context for request without credentials")
	}
}

func TestResolveIdentity_BadTokenIsHardFailure(t *testing.T) {
	authSvc, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	// A presented-but-bad credential must never fall through to anonymous.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	w := httptest.NewRecorder()

	handler.ResolveIdentity(authSvc, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestResolveIdentity_TamperedToken(t *testing.T) {
	authSvc, _ := newTestServices(t)
	token := loginUser(t, authSvc, "tamper@example.com", "tamper1")

	tampered := token[:len(token)-1] + "X"

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	w := httptest.NewRecorder()

	handler.ResolveIdentity(authSvc, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestResolveIdentity_ExpiredToken(t *testing.T) {
	authSvc, _ := newTestServices(t)
	// Register so the subject exists, then present an expired token for it.
	if _, err := authSvc.Register(context.Background(), "exp@example.com", "expired1", "secret1"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "any-subject",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()

	handler.ResolveIdentity(authSvc, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestResolveIdentity_NonBearerSchemeIsAnonymous(t *testing.T) {
	authSvc, _ := newTestServices(t)

	var sawAnonymous bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAnonymous = handler.UserFromContext(r.Context()) == nil
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()

	handler.ResolveIdentity(authSvc, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !sawAnonymous {
		t.Fatal("expected non-Bearer scheme to resolve as anonymous")
	}
}
