package namespace

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/schemapath/schemapath/v1/observability"
	"github.com/schemapath/schemapath/v1/postgres"
)

const namePattern = `^[A-Za-z0-9_]+$`

var nameRegexp = regexp.MustCompile(namePattern)

// activateStmt activates a namespace for the rest of the session. set_config
// takes the value as a bound parameter, unlike SET, so no interpolation is
// needed on this path.
const activateStmt = `SELECT set_config('search_path', $1, false)`

// Manager owns the current namespace for one database handle. See the
// package documentation for the wiring sequence.
type Manager struct {
	logger   Logger
	observer observability.Observer

	// mu guards current and sess. It is never held across a database
	// round trip: the connect hook also takes it, and that hook can run
	// in the middle of any statement that forces a new physical
	// connection.
	mu      sync.Mutex
	current string
	sess    postgres.Session
}

// NewManager creates a Manager starting in cfg.Default (or "public" when
// unset). The default is validated like any other namespace name.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("namespace: logger must not be nil")
	}

	def := cfg.Default
	if def == "" {
		def = DefaultNamespace
	}
	if err := validateName("default", def); err != nil {
		return nil, err
	}

	return &Manager{
		logger:   cfg.Logger,
		observer: cfg.Observer,
		current:  def,
	}, nil
}

// Bind attaches the live database handle. Operations that need to execute
// SQL (Use against a live session, Create, Drop) require a bound session.
func (m *Manager) Bind(sess postgres.Session) {
	m.mu.Lock()
	m.sess = sess
	m.mu.Unlock()
}

// Current returns the namespace the Manager considers active. The value is
// only ever updated after the server confirmed the corresponding activation.
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// validateName is the single allow-list gate every statement-building path
// goes through. It is the sole injection defense for the DDL statements,
// whose identifier positions cannot take bound parameters.
func validateName(op, name string) error {
	if !nameRegexp.MatchString(name) {
		return &ValidationError{Op: op, Value: name}
	}
	return nil
}

// observe reports a finished operation to the configured observer, if any.
func (m *Manager) observe(op, resource string, start time.Time, err error) {
	if m.observer == nil {
		return
	}
	m.observer.ObserveOperation(observability.OperationContext{
		Component: "namespace",
		Operation: op,
		Resource:  resource,
		Duration:  time.Since(start),
		Error:     err,
		Size:      -1,
	})
}
