package postgres

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/schemapath/schemapath/v1/observability"
)

// Postgres is a wrapper around gorm.DB that provides connection monitoring,
// automatic reconnection, and driver-level connect hooks.
//
// Concurrency: the active *gorm.DB pointer is stored in an atomic pointer and
// can be swapped during reconnection without blocking readers.
type Postgres struct {
	cfg      Config
	logger   Logger
	observer observability.Observer

	client atomic.Pointer[gorm.DB]

	shutdownSignal  chan struct{}
	retryChanSignal chan error

	closeRetryChanOnce sync.Once
	closeShutdownOnce  sync.Once
}

// NewPostgres creates a new Postgres instance with the provided configuration
// and logger. It establishes the initial physical connection eagerly so that
// connect hooks run (and can fail) at construction time rather than on the
// first query.
//
// Returns the *Postgres concrete type (accept interfaces, return structs).
func NewPostgres(cfg Config, log Logger) (*Postgres, error) {
	if log == nil {
		return nil, fmt.Errorf("postgres: logger must not be nil")
	}

	conn, err := connectToPostgres(cfg)
	if err != nil {
		return nil, fmt.Errorf("error in connecting to postgres: %w", err)
	}

	pg := &Postgres{
		cfg:             cfg,
		logger:          log,
		shutdownSignal:  make(chan struct{}),
		retryChanSignal: make(chan error, 1),
	}
	pg.client.Store(conn)

	log.Info("connected to PostgreSQL database", nil, map[string]interface{}{
		"host":     cfg.Connection.Host,
		"database": cfg.Connection.DbName,
	})
	return pg, nil
}

// connectToPostgres opens a database/sql pool through the pgx stdlib driver,
// installs the configured connect hooks, applies the pool parameters, and
// wraps the pool in a GORM handle.
//
// The pool is pinged before the handle is returned. That forces the first
// physical connection, which in turn runs every connect hook; a failing hook
// surfaces here instead of on the first query.
func connectToPostgres(cfg Config) (*gorm.DB, error) {
	pgxCfg, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse PostgreSQL connection config: %w", err)
	}

	var opts []stdlib.OptionOpenDB
	if len(cfg.AfterConnect) > 0 {
		hook := chainConnectHooks(cfg.AfterConnect)
		opts = append(opts, stdlib.OptionAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
			return hook(ctx, conn)
		}))
	}

	sqlDB := stdlib.OpenDB(*pgxCfg, opts...)

	// Pool parameters. Zero config fields fall back to a single-connection
	// pool so session-scoped state stays coherent (see package docs).
	maxOpen := cfg.ConnectionDetails.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = 1
	}
	maxIdle := cfg.ConnectionDetails.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 1
	}
	maxLifetime := cfg.ConnectionDetails.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = 1 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	database, err := gorm.Open(
		gormpostgres.New(gormpostgres.Config{Conn: sqlDB}),
		&gorm.Config{
			TranslateError: true,
		})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open GORM handle: %w", err)
	}

	return database, nil
}

// SetObserver attaches an operation observer. Reconnects and health-check
// failures are reported through it.
func (p *Postgres) SetObserver(obs observability.Observer) {
	p.observer = obs
}

func (p *Postgres) observe(op string, start time.Time, err error) {
	if p.observer == nil {
		return
	}
	p.observer.ObserveOperation(observability.OperationContext{
		Component: "postgres",
		Operation: op,
		Resource:  p.cfg.Connection.DbName,
		Duration:  time.Since(start),
		Error:     err,
		Size:      -1,
	})
}

// Reconnect tears down the current handle and builds a fresh one from the
// stored configuration. Every registered connect hook runs against the new
// pool before it is swapped in; a hook failure aborts the reconnect and the
// previous handle stays active.
func (p *Postgres) Reconnect(ctx context.Context) error {
	start := time.Now()
	newConn, err := connectToPostgres(p.cfg)
	if err != nil {
		p.observe("reconnect", start, err)
		return err
	}

	old := p.client.Swap(newConn)
	if old != nil {
		if sqlDB, dbErr := old.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}

	p.logger.Info("reconnected to PostgreSQL database", nil, map[string]interface{}{
		"host":     p.cfg.Connection.Host,
		"database": p.cfg.Connection.DbName,
	})
	p.observe("reconnect", start, nil)
	return nil
}

// RetryConnection continuously attempts to reconnect when notified of a
// connection failure. It operates as a goroutine that waits for signals on
// retryChanSignal before attempting reconnection, and respects context
// cancellation and shutdown signals.
//
// Two nested loops: the outer loop waits for retry signals, the inner loop
// attempts reconnection until successful.
func (p *Postgres) RetryConnection(ctx context.Context) {
outerLoop:
	for {
		select {
		case <-p.shutdownSignal:
			p.logger.Info("stopping RetryConnection loop due to shutdown signal", nil)
			return
		case <-ctx.Done():
			return
		case <-p.retryChanSignal:
		innerLoop:
			for {
				select {
				case <-p.shutdownSignal:
					return
				case <-ctx.Done():
					return
				default:
					if err := p.Reconnect(ctx); err != nil {
						p.logger.Error("PostgreSQL reconnection failed", err, nil)
						time.Sleep(time.Second)
						continue innerLoop
					}
					continue outerLoop
				}
			}
		}
	}
}

// MonitorConnection periodically checks the health of the database connection
// and signals the RetryConnection goroutine when a failure is detected. It
// respects context cancellation and shutdown signals.
func (p *Postgres) MonitorConnection(ctx context.Context) {
	defer p.closeRetryChanOnce.Do(func() {
		close(p.retryChanSignal)
	})

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.shutdownSignal:
			p.logger.Info("stopping MonitorConnection loop due to shutdown signal", nil)
			return
		case <-ticker.C:
			if err := p.healthCheck(); err != nil {
				select {
				case p.retryChanSignal <- err:
				default:
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

// healthCheck snapshots the current handle and pings the database with a
// 5-second timeout.
func (p *Postgres) healthCheck() error {
	dbConn := p.DB()
	if dbConn == nil {
		return fmt.Errorf("database client is not initialized")
	}

	db, err := dbConn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance during health check: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed during health check: %w", err)
	}

	return nil
}

// GracefulShutdown stops the monitoring goroutines and closes the underlying
// connection pool.
func (p *Postgres) GracefulShutdown() error {
	p.closeShutdownOnce.Do(func() {
		close(p.shutdownSignal)
	})

	p.closeRetryChanOnce.Do(func() {
		close(p.retryChanSignal)
	})

	if db := p.client.Load(); db != nil {
		sqlDB, err := db.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
