package core

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error codes returned in the HTTP error envelope.
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeReference    = "REFERENCE_VIOLATION"
	CodeUnauthorized = "UNAUTHORIZED"
)

// Postgres error codes this package translates into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Error is a domain error carrying the HTTP status the adapter should use.
// Every client-caused failure, including a missing resource, maps to 400;
// only a missing or bad credential maps to 401.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// AsError unwraps err into a domain *Error if there is one in the chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// NewValidation builds a 400 error for a rejected payload or parameter.
func NewValidation(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound builds the error for a lookup that matched nothing.
func NewNotFound(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewConflict builds the error for a uniqueness collision.
func NewConflict(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// NewReference builds the error for a dangling foreign key.
func NewReference(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeReference, Message: fmt.Sprintf(format, args...)}
}

// NewUnauthorized builds a 401 error.
func NewUnauthorized(format string, args ...any) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// translateConstraint maps a Postgres constraint violation onto a domain
// error. Writes are attempted directly and violations translated after the
// fact, so there is no racy existence pre-check. Anything that is not a
// recognized constraint violation passes through wrapped.
func translateConstraint(err error, conflictMsg, referenceMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return NewConflict("%s", conflictMsg)
		case pgForeignKeyViolation:
			return NewReference("%s", referenceMsg)
		case pgCheckViolation:
			return NewValidation("value rejected by constraint %s", pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("constraint translation: %w", err)
}
