package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// ConnectHook runs against every new physical connection before the pool
// hands it out. Returning an error fails that connection attempt.
type ConnectHook func(ctx context.Context, conn *pgx.Conn) error

// Config contains everything needed to open and maintain the database handle.
type Config struct {
	Connection        Connection
	ConnectionDetails ConnectionDetails

	// AfterConnect is the ordered list of hooks run on each new physical
	// connection. Use AppendAfterConnect to add entries; existing entries
	// are never discarded.
	AfterConnect []ConnectHook
}

// Connection holds the data-source parameters.
type Connection struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string
	SSLMode  string
}

// ConnectionDetails holds pool tuning parameters. Zero values fall back to
// the package defaults (a single-connection pool, see package docs).
type ConnectionDetails struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AppendAfterConnect appends hooks to the AfterConnect list, preserving any
// hooks already registered.
func (c *Config) AppendAfterConnect(hooks ...ConnectHook) {
	c.AfterConnect = append(c.AfterConnect, hooks...)
}

// DSN renders the keyword/value connection string consumed by pgx.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Connection.Host,
		c.Connection.Port,
		c.Connection.User,
		c.Connection.Password,
		c.Connection.DbName,
		c.Connection.SSLMode)
}

// chainConnectHooks collapses the hook list into a single hook that runs the
// entries in registration order, stopping at the first failure.
func chainConnectHooks(hooks []ConnectHook) ConnectHook {
	return func(ctx context.Context, conn *pgx.Conn) error {
		for _, hook := range hooks {
			if err := hook(ctx, conn); err != nil {
				return err
			}
		}
		return nil
	}
}
