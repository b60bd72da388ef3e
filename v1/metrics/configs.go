package metrics

// Config controls metrics construction.
type Config struct {
	// ServiceName is attached to every metric as the "service" label.
	ServiceName string

	// Address is the listen address of the Prometheus scrape endpoint,
	// e.g. ":9102". Empty disables the HTTP server; the registry still
	// collects.
	Address string

	// EnableDefaultCollectors registers the Go runtime, process, and
	// build-info collectors in addition to the operation metrics.
	EnableDefaultCollectors bool
}
