package dependents

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"

	"hris/internal/domain/apperr"
)

func newStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewStore(mock), mock
}

func TestCreateEmergencyContactRequiresNameAndPhone(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	err := store.CreateEmergencyContact(context.Background(), "e1", EmergencyContact{Phone: "555-0101"})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	err = store.CreateEmergencyContact(context.Background(), "e1", EmergencyContact{Name: "Lin Tan"})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing phone, got %v", err)
	}
}

func TestCreateCompensationRejectsNegativeSalary(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	err := store.CreateCompensation(context.Background(), "e1", Compensation{AnnualSalary: -1, Currency: "SGD"})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateWorkPassMissingEmployeeIsNotFound(t *testing.T) {
	t.Parallel()

	store, mock := newStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO work_passes")).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := store.CreateWorkPass(context.Background(), "ghost", WorkPass{PassType: "EP", PassNumber: "EP123"})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found from fk violation, got %v", err)
	}
}

func TestCreateQualificationInserts(t *testing.T) {
	t.Parallel()

	store, mock := newStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO qualifications")).
		WithArgs("e1", "NUS", "BSc", nil, nil).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.CreateQualification(context.Background(), "e1", Qualification{Institute: "NUS", Degree: "BSc"})
	if err != nil {
		t.Fatalf("create qualification: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
