package observability

import "time"

// OperationContext describes a single completed operation. It is passed to
// ObserveOperation after the operation finished, whether it succeeded or not.
type OperationContext struct {
	// Component is the reporting package ("namespace", "postgres", ...).
	Component string

	// Operation is the operation name ("use", "create", "drop", "reconnect", ...).
	Operation string

	// Resource is the primary object the operation acted on, e.g. the
	// namespace name.
	Resource string

	// SubResource carries additional context, e.g. the statement kind.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the error the operation returned, or nil on success.
	Error error

	// Size is an optional payload size; -1 when not applicable.
	Size int64

	// Metadata carries arbitrary extra key/value context.
	Metadata map[string]interface{}
}

// Observer receives operation notifications. Implementations must be safe
// for concurrent use; ObserveOperation is called from the goroutine that ran
// the operation and must not block for long.
type Observer interface {
	ObserveOperation(op OperationContext)
}
