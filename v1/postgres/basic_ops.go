package postgres

import (
	"context"

	"gorm.io/gorm"
)

// DB returns the underlying GORM handle, or nil before the first connection.
// The pointer is a snapshot; a reconnect may swap it afterwards.
func (p *Postgres) DB() *gorm.DB {
	return p.client.Load()
}

// Exec executes raw SQL and returns the number of affected rows.
func (p *Postgres) Exec(ctx context.Context, sql string, values ...interface{}) (int64, error) {
	result := p.client.Load().WithContext(ctx).Exec(sql, values...)
	return result.RowsAffected, result.Error
}

// Find finds records that match the given conditions.
func (p *Postgres) Find(ctx context.Context, dest interface{}, conditions ...interface{}) error {
	return p.client.Load().WithContext(ctx).Find(dest, conditions...).Error
}

// First finds the first record that matches the given conditions.
func (p *Postgres) First(ctx context.Context, dest interface{}, conditions ...interface{}) error {
	return p.client.Load().WithContext(ctx).First(dest, conditions...).Error
}

// Create inserts a new record.
func (p *Postgres) Create(ctx context.Context, value interface{}) error {
	return p.client.Load().WithContext(ctx).Create(value).Error
}

// Count counts records of the given model matching the conditions.
func (p *Postgres) Count(ctx context.Context, model interface{}, count *int64, conditions ...interface{}) error {
	query := p.client.Load().WithContext(ctx).Model(model)
	if len(conditions) > 0 {
		query = query.Where(conditions[0], conditions[1:]...)
	}
	return query.Count(count).Error
}

// Migrate runs GORM auto-migration for the provided models. Tables are
// created in whatever schema the session's search_path points at.
func (p *Postgres) Migrate(models ...interface{}) error {
	return p.client.Load().AutoMigrate(models...)
}

// WithConnection pins one physical connection for the duration of fn. The
// connection is released on every exit path, including when fn fails.
func (p *Postgres) WithConnection(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return p.client.Load().WithContext(ctx).Connection(fn)
}
