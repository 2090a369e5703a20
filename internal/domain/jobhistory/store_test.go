package jobhistory

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"

	"hris/internal/domain/apperr"
)

var recordRowColumns = []string{
	"id", "employee_id", "designation", "department", "reporting_to",
	"status", "time_type", "location", "legal_entity", "business_unit",
	"worker_type", "probation_policy", "notice_period", "secondary_job_titles",
	"is_current", "effective_from", "effective_to", "created_by", "created_at", "updated_at",
}

func recordRow(id, employeeID, designation string, from time.Time) *pgxmock.Rows {
	now := time.Now().UTC()
	return pgxmock.NewRows(recordRowColumns).
		AddRow(id, employeeID, designation, "", "", "", "", "", "", "", "", "", "", []string(nil), true, from, (*time.Time)(nil), "", now, now)
}

func TestStorePromoteRunsCloseAndInsertInOneTransaction(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	closeTo := from.AddDate(0, 0, -1)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE job_history")).
		WithArgs("e1", closeTo).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO job_history")).
		WillReturnRows(recordRow("rec-2", "e1", "Senior Engineer", from))
	mock.ExpectCommit()

	store := NewStore(mock)
	rec := Payload{Designation: "Senior Engineer"}.toRecord("e1", from)
	created, err := store.Promote(context.Background(), rec, closeTo)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if created.ID != "rec-2" || !created.IsCurrent {
		t.Fatalf("unexpected record %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStorePromoteConflictRollsBack(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE job_history")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO job_history")).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	store := NewStore(mock)
	rec := Payload{Designation: "Senior Engineer"}.toRecord("e1", from)
	_, err = store.Promote(context.Background(), rec, from.AddDate(0, 0, -1))
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreFindCurrentReturnsNilWhenNone(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE employee_id = $1 AND is_current")).
		WithArgs("e1").
		WillReturnError(pgx.ErrNoRows)

	store := NewStore(mock)
	rec, err := store.FindCurrent(context.Background(), "e1")
	if err != nil {
		t.Fatalf("find current: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record, got %+v", rec)
	}
}

func TestStoreInsertTranslatesUniqueViolation(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO job_history")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	store := NewStore(mock)
	rec := Payload{Designation: "Engineer"}.toRecord("e1", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	_, err = store.Insert(context.Background(), rec)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestStoreDeleteNotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM job_history")).
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	store := NewStore(mock)
	if err := store.Delete(context.Background(), "ghost"); !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
