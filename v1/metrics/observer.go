package metrics

import "github.com/schemapath/schemapath/v1/observability"

// ObserveOperation implements observability.Observer. It increments the
// operation counter with a success/error status and records the duration.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	if m == nil {
		return
	}

	status := "success"
	if op.Error != nil {
		status = "error"
	}

	m.operationsTotal.WithLabelValues(op.Component, op.Operation, status).Inc()
	m.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())

	if op.Component == "postgres" && op.Operation == "reconnect" && op.Error == nil {
		m.reconnectsTotal.Inc()
	}
}
