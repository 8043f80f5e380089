package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mkendrick/inkwell/internal/auth"
	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/handler"
	"github.com/mkendrick/inkwell/internal/repository/postgres"
	"github.com/mkendrick/inkwell/internal/repository/sqlite"
	"github.com/mkendrick/inkwell/internal/service"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewTextHandler(os.Stdout, logOpts))
	slog.SetDefault(logger)

	port := envOrDefault("PORT", "3000")
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(jwtSecret) < 32 {
		slog.Error("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
		os.Exit(1)
	}

	bcryptCost := 12
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("invalid BCRYPT_COST", "error", err)
			os.Exit(1)
		}
		if parsed < 4 || parsed > 14 {
			slog.Error("BCRYPT_COST must be between 4 and 14", "value", parsed)
			os.Exit(1)
		}
		bcryptCost = parsed
	}

	// Postgres when DATABASE_URL is set, local SQLite otherwise.
	var store domain.Store
	var err error
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		store, err = postgres.New(dsn)
	} else {
		store, err = sqlite.New(envOrDefault("DATABASE_PATH", "inkwell.db"))
	}
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	hasher := auth.NewPasswordHasher(bcryptCost)
	tokens := auth.NewTokenIssuer(jwtSecret)

	authService := service.NewAuthService(store.Users(), hasher, tokens)
	userService := service.NewUserService(store.Users())
	postService := service.NewPostService(store.Posts())
	commentService := service.NewCommentService(store.Comments(), store.Posts())
	feedbackService := service.NewFeedbackService(store.Feedback())
	statsService := service.NewStatsService(store.Stats())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, userService, postService, commentService, feedbackService, statsService)

	// Serve the prebuilt frontend bundle when configured.
	if staticDir := os.Getenv("STATIC_DIR"); staticDir != "" {
		mux.Handle("GET /", handler.SPAHandler(staticDir))
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
