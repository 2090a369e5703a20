package reports

import (
	"bytes"
	"context"
	"testing"
	"time"

	"hris/internal/domain/apperr"
	"hris/internal/domain/employee"
	"hris/internal/domain/jobhistory"
)

type stubDirectory struct {
	emp *employee.Employee
}

func (s *stubDirectory) Get(ctx context.Context, id string) (*employee.Employee, error) {
	if s.emp == nil || s.emp.ID != id {
		return nil, apperr.NotFound("employee not found")
	}
	return s.emp, nil
}

type stubHistory struct {
	records []jobhistory.Record
}

func (s *stubHistory) GetHistory(ctx context.Context, employeeID string) ([]jobhistory.Record, error) {
	return s.records, nil
}

func TestEmploymentHistoryPDFRendersAllRecords(t *testing.T) {
	t.Parallel()

	from := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	svc := NewService(
		&stubDirectory{emp: &employee.Employee{ID: "e1", EmployeeCode: "EMP-000001", FirstName: "Mei", LastName: "Tan", Status: employee.StatusActive}},
		&stubHistory{records: []jobhistory.Record{
			{ID: "r1", EmployeeID: "e1", Designation: "Engineer", Department: "Platform", EffectiveFrom: from, EffectiveTo: &to},
			{ID: "r2", EmployeeID: "e1", Designation: "Senior Engineer", IsCurrent: true, EffectiveFrom: to.AddDate(0, 0, 1)},
		}},
	)

	var buf bytes.Buffer
	if err := svc.EmploymentHistoryPDF(context.Background(), "e1", &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", buf.Bytes()[:8])
	}
}

func TestEmploymentHistoryPDFUnknownEmployee(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubDirectory{}, &stubHistory{})
	var buf bytes.Buffer
	err := svc.EmploymentHistoryPDF(context.Background(), "ghost", &buf)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %d bytes", buf.Len())
	}
}
