package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Standardized database errors that abstract away driver-specific details.
var (
	// ErrRecordNotFound is returned when a query doesn't find any matching records.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert or update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key violation")

	// ErrForeignKey is returned when an operation violates a foreign key constraint.
	ErrForeignKey = errors.New("foreign key violation")

	// ErrInvalidData is returned when the data being saved doesn't meet validation rules.
	ErrInvalidData = errors.New("invalid data")
)

// PostgreSQL error codes classified by this package.
const (
	codeInvalidSchemaName     = "3F000"
	codeDuplicateSchema       = "42P06"
	codeUndefinedTable        = "42P01"
	codeInsufficientPrivilege = "42501"
)

// TranslateError converts GORM/driver errors into the standardized errors
// above. Errors that don't match any known type are returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	case errors.Is(err, gorm.ErrInvalidData):
		return ErrInvalidData
	}

	return err
}

// pgErrorCode extracts the server-side SQLSTATE code, or "" when the error
// did not originate from the server.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsInvalidSchemaName reports whether the server rejected a statement because
// the referenced schema does not exist (SQLSTATE 3F000).
func IsInvalidSchemaName(err error) bool {
	return pgErrorCode(err) == codeInvalidSchemaName
}

// IsDuplicateSchema reports whether a CREATE SCHEMA failed because the schema
// already exists (SQLSTATE 42P06). Not raised by the IF NOT EXISTS form.
func IsDuplicateSchema(err error) bool {
	return pgErrorCode(err) == codeDuplicateSchema
}

// IsUndefinedTable reports whether a statement referenced a table that does
// not exist in the active search_path (SQLSTATE 42P01).
func IsUndefinedTable(err error) bool {
	return pgErrorCode(err) == codeUndefinedTable
}

// IsInsufficientPrivilege reports whether the server denied the statement for
// lack of privileges (SQLSTATE 42501).
func IsInsufficientPrivilege(err error) bool {
	return pgErrorCode(err) == codeInsufficientPrivilege
}
