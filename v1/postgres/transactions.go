package postgres

import (
	"context"

	"gorm.io/gorm"
)

// Transaction executes the given function within a database transaction.
// The transaction is rolled back when fn returns an error.
func (p *Postgres) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return p.client.Load().WithContext(ctx).Transaction(fn)
}
