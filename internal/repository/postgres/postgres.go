// Package postgres implements domain.Store on PostgreSQL, the backend the
// platform runs on in production. Migrations are managed by goose from an
// embedded FS.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/repository/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// DB wraps the Postgres connection and hands out repositories.
type DB struct {
	SqlDB *sql.DB
}

// New opens a Postgres database using the given DSN.
func New(dsn string) (*DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all unapplied goose migrations.
func (d *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, d.SqlDB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

func (d *DB) Users() domain.UserRepository { return NewUserRepository(d) }
func (d *DB) Posts() domain.PostRepository { return NewPostRepository(d) }
func (d *DB) Comments() domain.CommentRepository { return NewCommentRepository(d) }
func (d *DB) Feedback() domain.FeedbackRepository { return NewFeedbackRepository(d) }
func (d *DB) Stats() domain.StatsRepository { return NewStatsRepository(d) }
