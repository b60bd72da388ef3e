package namespace

import "github.com/schemapath/schemapath/v1/observability"

// DefaultNamespace is the namespace every Manager starts in unless the
// configuration overrides it.
const DefaultNamespace = "public"

// Config controls Manager construction.
type Config struct {
	// Default is the namespace the Manager starts in. Empty means
	// DefaultNamespace ("public"). Must match the namespace name
	// allow-list.
	Default string

	// Logger is required. *logger.Logger from v1/logger satisfies it.
	Logger Logger

	// Observer receives an OperationContext for every operation the
	// Manager performs. Optional.
	Observer observability.Observer
}
