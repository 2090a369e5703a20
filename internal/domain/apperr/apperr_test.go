package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestKindPredicates(t *testing.T) {
	if !IsValidation(Validation("bad payload")) {
		t.Fatal("expected validation kind")
	}
	if !IsNotFound(NotFound("employee %s", "e1")) {
		t.Fatal("expected not-found kind")
	}
	if !IsConflict(Conflict("duplicate current record")) {
		t.Fatal("expected conflict kind")
	}
	if !IsUnavailable(Unavailable("store down", errors.New("dial tcp"))) {
		t.Fatal("expected unavailable kind")
	}
	if KindOf(errors.New("plain")) != 0 {
		t.Fatal("expected zero kind for untyped error")
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("promote: %w", Conflict("duplicate current record"))
	if !IsConflict(err) {
		t.Fatal("expected conflict kind through wrapping")
	}
}

func TestFromPgUniqueViolation(t *testing.T) {
	err := FromPg(&pgconn.PgError{Code: "23505"}, "job history record")
	if !IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestFromPgForeignKeyViolation(t *testing.T) {
	err := FromPg(&pgconn.PgError{Code: "23503"}, "job history record")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestFromPgCheckViolation(t *testing.T) {
	err := FromPg(&pgconn.PgError{Code: "23514"}, "job history record")
	if !IsValidation(err) {
		t.Fatalf("expected validation, got %v", err)
	}
}

func TestFromPgPassthrough(t *testing.T) {
	plain := errors.New("some failure")
	if FromPg(plain, "employee") != plain {
		t.Fatal("expected passthrough for unrecognized errors")
	}
	if FromPg(nil, "employee") != nil {
		t.Fatal("expected nil for nil")
	}
}
