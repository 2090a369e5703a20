package jobhistoryhandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"

	"hris/internal/domain/employee"
	"hris/internal/domain/jobhistory"
	"hris/internal/transport/http/api"
)

func newTestRouter(t *testing.T) (*chi.Mux, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	employeeSvc := employee.NewService(employee.NewStore(mock))
	historySvc := jobhistory.NewService(jobhistory.NewStore(mock), employeeSvc)
	handler := NewHandler(historySvc, nil)

	router := chi.NewRouter()
	router.Route("/employees/{employeeID}/job-history", func(r chi.Router) {
		r.Get("/", handler.handleHistory)
		r.Get("/current", handler.handleCurrent)
		r.Post("/promote", handler.handlePromote)
	})
	return router, mock
}

func TestHandleCurrentReturnsNullWhenNoAssignment(t *testing.T) {
	t.Parallel()

	router, mock := newTestRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM employees")).
		WithArgs("e1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE employee_id = $1 AND is_current")).
		WithArgs("e1").
		WillReturnError(pgx.ErrNoRows)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees/e1/job-history/current", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope api.Envelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Success || envelope.Data != nil {
		t.Fatalf("expected success with null data, got %+v", envelope)
	}
}

func TestHandlePromoteRejectsMissingEffectiveDate(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	body := strings.NewReader(`{"designation":"Senior Engineer"}`)
	req := httptest.NewRequest(http.MethodPost, "/employees/e1/job-history/promote", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var envelope api.Envelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error == nil || envelope.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", envelope.Error)
	}
}

func TestHandlePromoteClosesOldAndReturnsNew(t *testing.T) {
	t.Parallel()

	router, mock := newTestRouter(t)
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	// GetCurrent for the audit diff checks the employee then reads the
	// current record.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM employees")).
		WithArgs("e1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	currentRow := pgxmock.NewRows([]string{
		"id", "employee_id", "designation", "department", "reporting_to",
		"status", "time_type", "location", "legal_entity", "business_unit",
		"worker_type", "probation_policy", "notice_period", "secondary_job_titles",
		"is_current", "effective_from", "effective_to", "created_by", "created_at", "updated_at",
	}).AddRow("r1", "e1", "Engineer", "", "", "", "", "", "", "", "", "", "", []string(nil),
		true, from.AddDate(-1, 0, 0), (*time.Time)(nil), "", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE employee_id = $1 AND is_current")).
		WithArgs("e1").
		WillReturnRows(currentRow)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM employees")).
		WithArgs("e1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE job_history")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	newRow := pgxmock.NewRows([]string{
		"id", "employee_id", "designation", "department", "reporting_to",
		"status", "time_type", "location", "legal_entity", "business_unit",
		"worker_type", "probation_policy", "notice_period", "secondary_job_titles",
		"is_current", "effective_from", "effective_to", "created_by", "created_at", "updated_at",
	}).AddRow("r2", "e1", "Senior Engineer", "", "", "", "", "", "", "", "", "", "", []string(nil),
		true, from, (*time.Time)(nil), "", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO job_history")).
		WillReturnRows(newRow)
	mock.ExpectCommit()

	body := strings.NewReader(`{"designation":"Senior Engineer","effectiveFrom":"2025-01-01"}`)
	req := httptest.NewRequest(http.MethodPost, "/employees/e1/job-history/promote", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
