package namespace

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned (wrapped in a ConnectionError) when an operation
// needs a live database session and none has been bound yet.
var ErrNoSession = errors.New("namespace: no database session bound")

// ValidationError reports a namespace name that failed allow-list validation.
// It is always returned before any statement is issued.
type ValidationError struct {
	// Op is the operation that rejected the name ("use", "create", "drop", ...).
	Op string

	// Value is the offending name.
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("namespace %s: invalid namespace name %q: must match %s", e.Op, e.Value, namePattern)
}

// ConnectionError reports a statement that failed on the live session. The
// underlying driver error is wrapped unchanged.
type ConnectionError struct {
	Op        string
	Namespace string
	Err       error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("namespace %s %q: %v", e.Op, e.Namespace, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// UnsupportedConfigError reports a connection configuration that is not in
// the structured shape ConfigureConnection understands.
type UnsupportedConfigError struct {
	Reason string
}

func (e *UnsupportedConfigError) Error() string {
	return fmt.Sprintf("namespace: unsupported connection config: %s", e.Reason)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConnectionError reports whether err is (or wraps) a ConnectionError.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsUnsupportedConfigError reports whether err is (or wraps) an
// UnsupportedConfigError.
func IsUnsupportedConfigError(err error) bool {
	var ue *UnsupportedConfigError
	return errors.As(err, &ue)
}
