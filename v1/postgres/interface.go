package postgres

import (
	"context"

	"gorm.io/gorm"
)

// Logger is the minimal logging surface this package needs.
// *logger.Logger from v1/logger satisfies it.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Session is the narrow statement-execution surface consumed by packages
// that only need to run SQL against the live handle (v1/namespace depends on
// this, not on the full Client).
type Session interface {
	// Exec executes raw SQL and returns the number of affected rows.
	Exec(ctx context.Context, sql string, values ...interface{}) (int64, error)
}

// Client is the full application-facing surface of the handle.
//
// Postgres implements Client. Depend on Client (or Session) rather than the
// concrete type where possible.
type Client interface {
	Session

	Find(ctx context.Context, dest interface{}, conditions ...interface{}) error
	First(ctx context.Context, dest interface{}, conditions ...interface{}) error
	Create(ctx context.Context, value interface{}) error
	Count(ctx context.Context, model interface{}, count *int64, conditions ...interface{}) error

	// Transaction executes fn inside a database transaction, rolling back
	// when fn returns an error.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error

	// WithConnection pins a single physical connection for the duration of
	// fn and releases it on every exit path.
	WithConnection(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Migrate runs GORM auto-migration for the given models against the
	// current search_path.
	Migrate(models ...interface{}) error

	// DB exposes the underlying GORM handle for advanced use.
	DB() *gorm.DB

	// Reconnect tears down the current handle and builds a fresh one,
	// re-running every registered connect hook.
	Reconnect(ctx context.Context) error

	GracefulShutdown() error
}
