package apperr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// FromPg maps Postgres errors onto the taxonomy: unique violations become
// conflicts, broken employee references become not-found, check violations
// become validation failures and connection-class errors become unavailable.
// Anything else passes through unchanged.
func FromPg(err error, entity string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &Error{Kind: KindConflict, Msg: entity + " already exists", Err: err}
		case pgForeignKeyViolation:
			return &Error{Kind: KindNotFound, Msg: entity + " references a missing record", Err: err}
		case pgCheckViolation:
			return &Error{Kind: KindValidation, Msg: entity + " violates a data constraint", Err: err}
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return Unavailable(entity+" store timeout", err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return Unavailable(entity+" store unreachable", err)
	}

	return err
}
