package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Each implementation (SQLite, Postgres) owns its own migration
// files, so the whole persistence backend is swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}

// Store is a Database that also vends the repositories the services need.
type Store interface {
	Database
	Users() UserRepository
	Todos() TodoRepository
}
