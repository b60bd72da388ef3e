//go:generate mockgen -source=interface.go -destination=mock_interface_test.go -package=namespace

package namespace

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// Logger is the minimal logging surface this package needs.
// *logger.Logger from v1/logger satisfies it.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// driverSession is the slice of a pgx connection the connect hook applies
// the namespace through. *pgx.Conn satisfies it.
type driverSession interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}
