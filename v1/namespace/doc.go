// Package namespace manages the active PostgreSQL namespace (schema, a.k.a.
// search_path) for a database handle, and keeps it applied across physical
// connection drops and reconnects.
//
// A Manager owns one "current namespace" value per handle. Switching
// namespaces validates the name, activates it on the live session, and only
// then commits the new value, so the in-memory value never diverges from the
// server-side session state. ConfigureConnection registers a connect hook on
// the v1/postgres configuration; the driver runs that hook on every new
// physical connection before it is handed out, so a freshly dialed
// connection is always back in the chosen namespace before the first query.
//
// Typical wiring:
//
//	mgr, err := namespace.NewManager(namespace.Config{Logger: log})
//	if err != nil {
//		return err
//	}
//
//	pgCfg, err := mgr.ConfigureConnection(&pgCfg)
//	if err != nil {
//		return err
//	}
//
//	db, err := postgres.NewPostgres(*pgCfg, log)
//	if err != nil {
//		return err
//	}
//	mgr.Bind(db)
//
//	if err := mgr.Create(ctx, "tenant_a"); err != nil { ... }
//	if err := mgr.Use(ctx, "tenant_a"); err != nil { ... }
//	// queries on db now run against tenant_a, and keep doing so after
//	// any reconnect, without further calls.
//
// Namespace names are allow-listed against ^[A-Za-z0-9_]+$ before they reach
// any statement. The activation statement is fully parameterized
// (set_config); only the CREATE/DROP SCHEMA DDL interpolates the name, after
// validation and pq.QuoteIdentifier quoting, because identifier positions do
// not accept bound parameters.
//
// Concurrency: the current value is mutex-guarded so a Manager may be shared
// across goroutines, but the intended model is one Manager per handle per
// worker/tenant. Operations that execute SQL block on the database round
// trip; timeouts come from the caller's context and the connection layer.
package namespace
