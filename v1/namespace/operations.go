package namespace

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/schemapath/schemapath/v1/postgres"
)

// Use switches the handle to the given namespace. The name is validated,
// activated on the live session, and only committed as the current value
// after the server confirmed the activation; a failed switch leaves the
// previous value in place.
//
// An empty name re-applies the stored value, which forces the session back
// in sync after out-of-band changes. An empty name with no stored value is a
// no-op.
//
// When no session is bound yet, the validated name is stored without a round
// trip; the connect hook applies it as soon as a connection exists.
func (m *Manager) Use(ctx context.Context, name string) error {
	start := time.Now()

	m.mu.Lock()
	effective := name
	if effective == "" {
		effective = m.current
	}
	sess := m.sess
	m.mu.Unlock()

	if effective == "" {
		return nil
	}

	if err := validateName("use", effective); err != nil {
		m.observe("use", effective, start, err)
		return err
	}

	if sess != nil {
		if _, err := sess.Exec(ctx, activateStmt, effective); err != nil {
			cerr := &ConnectionError{Op: "use", Namespace: effective, Err: err}
			m.logger.Error("failed to activate namespace", cerr, map[string]interface{}{
				"namespace": effective,
			})
			m.observe("use", effective, start, cerr)
			return cerr
		}
	}

	m.mu.Lock()
	m.current = effective
	m.mu.Unlock()

	m.logger.Debug("namespace activated", nil, map[string]interface{}{
		"namespace": effective,
	})
	m.observe("use", effective, start, nil)
	return nil
}

// Create issues CREATE SCHEMA IF NOT EXISTS for the given namespace. It is
// idempotent and does not change the current namespace. The name is
// required; unlike Use, an empty name is a validation error.
func (m *Manager) Create(ctx context.Context, name string) error {
	stmt := fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", pq.QuoteIdentifier(name))
	return m.execDDL(ctx, "create", name, stmt)
}

// Drop issues DROP SCHEMA IF EXISTS ... CASCADE for the given namespace.
// Destructive: every object inside the namespace is removed. Idempotent when
// the namespace is absent. Does not change the current namespace.
func (m *Manager) Drop(ctx context.Context, name string) error {
	stmt := fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", pq.QuoteIdentifier(name))
	return m.execDDL(ctx, "drop", name, stmt)
}

// execDDL validates the name, then runs the prepared DDL statement on the
// bound session. The statement must have been built from the validated,
// quoted name only.
func (m *Manager) execDDL(ctx context.Context, op, name, stmt string) error {
	start := time.Now()

	if err := validateName(op, name); err != nil {
		m.observe(op, name, start, err)
		return err
	}

	m.mu.Lock()
	sess := m.sess
	m.mu.Unlock()

	if sess == nil {
		cerr := &ConnectionError{Op: op, Namespace: name, Err: ErrNoSession}
		m.observe(op, name, start, cerr)
		return cerr
	}

	if _, err := sess.Exec(ctx, stmt); err != nil {
		cerr := &ConnectionError{Op: op, Namespace: name, Err: err}
		m.logger.Error("namespace DDL failed", cerr, map[string]interface{}{
			"namespace": name,
			"operation": op,
		})
		m.observe(op, name, start, cerr)
		return cerr
	}

	m.logger.Info("namespace DDL applied", nil, map[string]interface{}{
		"namespace": name,
		"operation": op,
	})
	m.observe(op, name, start, nil)
	return nil
}

// ConfigureConnection appends this Manager's reconnect hook to the
// configuration's connect-hook list, preserving any hooks already
// registered. The driver then re-applies the current namespace on every new
// physical connection before it is handed out for queries.
//
// The configuration must be non-nil and carry its data-source fields;
// anything else is an UnsupportedConfigError.
func (m *Manager) ConfigureConnection(cfg *postgres.Config) (*postgres.Config, error) {
	if cfg == nil {
		return nil, &UnsupportedConfigError{Reason: "nil connection config"}
	}
	if cfg.Connection.Host == "" || cfg.Connection.DbName == "" {
		return nil, &UnsupportedConfigError{Reason: "connection config is missing data-source fields (host, dbname)"}
	}

	cfg.AppendAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
		return m.reapply(ctx, conn)
	})
	return cfg, nil
}

// reapply activates the current namespace on a freshly established physical
// connection. It runs synchronously inside connection establishment, so its
// failure fails the connect attempt itself and no query can run on the new
// connection before the namespace is in place.
func (m *Manager) reapply(ctx context.Context, conn driverSession) error {
	start := time.Now()

	m.mu.Lock()
	current := m.current
	m.mu.Unlock()

	if current == "" {
		return nil
	}

	if _, err := conn.Exec(ctx, activateStmt, current); err != nil {
		cerr := &ConnectionError{Op: "reapply", Namespace: current, Err: err}
		m.logger.Error("failed to re-apply namespace on new connection", cerr, map[string]interface{}{
			"namespace": current,
		})
		m.observe("reapply", current, start, cerr)
		return cerr
	}

	m.logger.Debug("namespace re-applied on new connection", nil, map[string]interface{}{
		"namespace": current,
	})
	m.observe("reapply", current, start, nil)
	return nil
}
