package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry, the operation metrics, and the
// scrape server. It implements observability.Observer.
type Metrics struct {
	Server      *http.Server
	Registry    *prometheus.Registry
	serviceName string

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	reconnectsTotal   prometheus.Counter
}

// NewMetrics builds a registry with the operation metrics registered under
// the configured service label, and an HTTP server serving it at /metrics.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	operationsTotal := createCounterVec(
		"schemapath_operations_total",
		"Total database/namespace operations by component, operation, and outcome.",
		[]string{"component", "operation", "status"},
	)
	operationDuration := createHistogramVec(
		"schemapath_operation_duration_seconds",
		"Duration of database/namespace operations.",
		[]string{"component", "operation"},
		prometheus.DefBuckets,
	)
	reconnectsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schemapath_reconnects_total",
		Help: "Successful database reconnects.",
	})
	wrappedRegistry.MustRegister(operationsTotal, operationDuration, reconnectsTotal)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}

	return &Metrics{
		Server:            server,
		Registry:          registry,
		serviceName:       cfg.ServiceName,
		operationsTotal:   operationsTotal,
		operationDuration: operationDuration,
		reconnectsTotal:   reconnectsTotal,
	}
}
