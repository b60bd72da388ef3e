package postgres

import (
	"context"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"github.com/schemapath/schemapath/v1/logger"
	"github.com/schemapath/schemapath/v1/observability"
)

// FXModule is an fx module that provides the Postgres database component.
// It registers the constructor for dependency injection and sets up
// lifecycle hooks for connection monitoring and graceful shutdown.
//
// The module exposes both the *Postgres concrete type (for lifecycle
// management) and the Client interface (for application code).
var FXModule = fx.Module("postgres",
	fx.Provide(
		NewPostgresClientWithDI,
		func(pg *Postgres) Client { return pg },
		func(l *logger.Logger) Logger { return l },
	),
	fx.Invoke(RegisterPostgresLifecycle),
)

// PostgresParams groups the dependencies needed to create a Postgres client
// via dependency injection.
type PostgresParams struct {
	fx.In

	Config   Config
	Logger   *logger.Logger
	Observer observability.Observer `optional:"true"`
}

// NewPostgresClientWithDI creates a new Postgres client using dependency
// injection. It delegates to NewPostgres.
func NewPostgresClientWithDI(params PostgresParams) (*Postgres, error) {
	pg, err := NewPostgres(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}
	pg.SetObserver(params.Observer)
	return pg, nil
}

// PostgresLifeCycleParams groups the dependencies needed for lifecycle
// management of the Postgres component.
type PostgresLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Postgres  *Postgres
}

// RegisterPostgresLifecycle registers lifecycle hooks for the Postgres
// component:
//  1. connection monitoring on application start
//  2. the automatic reconnection loop on application start
//  3. graceful shutdown of the connection pool on application stop
//
// The monitoring goroutines run under an errgroup; OnStop cancels their
// context and waits for both to finish before closing the pool.
func RegisterPostgresLifecycle(params PostgresLifeCycleParams) {
	runCtx, cancel := context.WithCancel(context.Background())
	g := new(errgroup.Group)

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			g.Go(func() error {
				params.Postgres.MonitorConnection(runCtx)
				return nil
			})
			g.Go(func() error {
				params.Postgres.RetryConnection(runCtx)
				return nil
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			if err := g.Wait(); err != nil {
				return err
			}
			return params.Postgres.GracefulShutdown()
		},
	})
}
