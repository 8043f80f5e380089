package domain

import "context"

// Store bundles the repositories and lifecycle operations of a backing
// database. Each implementation (SQLite, Postgres) owns its own migration
// files and strategy, ensuring the entire backend is swappable.
type Store interface {
	Users() UserRepository
	Posts() PostRepository
	Comments() CommentRepository
	Feedback() FeedbackRepository
	Stats() StatsRepository

	Migrate(ctx context.Context) error
	Close() error
}
