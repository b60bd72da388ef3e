// Package postgres provides the PostgreSQL connection layer used by the
// schemapath packages: a GORM handle built on top of the pgx driver, with
// connection monitoring, automatic reconnection, and an ordered list of
// connect hooks that run on every new physical connection.
//
// # Connect hooks
//
// Config.AfterConnect holds hooks of type ConnectHook. They are installed at
// the driver level (pgx stdlib), so the pool runs every hook exactly once per
// new physical connection, before that connection is handed out for queries.
// A hook error fails the connection attempt itself. This is the mechanism
// v1/namespace uses to keep the active search_path applied across connection
// drops without caller intervention.
//
// # Session model
//
// The pool defaults to a single open connection (MaxOpenConns = 1). The
// handle then behaves like one logical session: session-scoped server state
// such as search_path set through Exec stays coherent, and a dropped
// connection is transparently re-dialed by database/sql with the hooks
// re-applied. Raise the limits only if your hooks make every connection
// equivalent.
//
// Basic usage:
//
//	cfg := postgres.Config{
//		Connection: postgres.Connection{
//			Host: "localhost", Port: "5432",
//			User: "app", Password: "secret",
//			DbName: "appdb", SSLMode: "disable",
//		},
//	}
//	cfg.AppendAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
//		_, err := conn.Exec(ctx, "select set_config('search_path', $1, false)", "tenant_a")
//		return err
//	})
//
//	db, err := postgres.NewPostgres(cfg, log)
//	if err != nil {
//		return err
//	}
//	defer db.GracefulShutdown()
//
// FX integration:
//
//	app := fx.New(
//		logger.FXModule,
//		postgres.FXModule,
//		fx.Provide(func() postgres.Config { return loadConfig() }),
//	)
//
// Thread safety: the active *gorm.DB is stored in an atomic pointer and can
// be swapped during reconnection without blocking readers. All exported
// methods are safe for concurrent use.
package postgres
