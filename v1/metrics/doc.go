// Package metrics provides a Prometheus-backed implementation of the
// observability.Observer contract, plus an HTTP endpoint for scraping.
//
// Every OperationContext reported by the instrumented packages becomes a
// labeled counter increment and a duration histogram observation:
//
//	schemapath_operations_total{component, operation, status}
//	schemapath_operation_duration_seconds{component, operation}
//	schemapath_reconnects_total
//
// Usage:
//
//	m := metrics.NewMetrics(metrics.Config{
//		ServiceName: "tenant-api",
//		Address:     ":9102",
//	})
//
//	mgr, _ := namespace.NewManager(namespace.Config{
//		Logger:   log,
//		Observer: m,
//	})
//
// With fx, the FXModule provides *Metrics as observability.Observer and
// manages the scrape server lifecycle.
package metrics
