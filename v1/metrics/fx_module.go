package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"

	"go.uber.org/fx"

	"github.com/schemapath/schemapath/v1/observability"
)

// FXModule provides *Metrics (also exposed as observability.Observer) and
// manages the scrape server lifecycle. The server is only started when
// Config.Address is set.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) observability.Observer { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the scrape server on application start and
// shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics) {
	if m.Server.Addr == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				err := m.Server.ListenAndServe()
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("ERROR: metrics server stopped: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
