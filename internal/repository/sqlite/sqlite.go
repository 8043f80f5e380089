// Package sqlite implements domain.Store on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection and hands out repositories.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer; serialize through one connection.
	// Pinning the pool first also makes the per-connection pragmas below
	// stick for the lifetime of the process.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all unapplied migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
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
