package jobhistory

import (
	"context"
	"strings"
	"time"

	"hris/internal/domain/apperr"
)

// RecordStore is the persistence surface the manager needs. *Store is the
// Postgres implementation.
type RecordStore interface {
	Insert(ctx context.Context, rec Record) (*Record, error)
	FindCurrent(ctx context.Context, employeeID string) (*Record, error)
	Get(ctx context.Context, recordID string) (*Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Promote(ctx context.Context, rec Record, closeTo time.Time) (*Record, error)
	SetCurrent(ctx context.Context, recordID string) (*Record, error)
	Delete(ctx context.Context, recordID string) error
}

type EmployeeDirectory interface {
	Exists(ctx context.Context, employeeID string) (bool, error)
}

// Service owns the single-current-record invariant: per employee at most one
// record is current, and the current record is always open-ended.
type Service struct {
	records   RecordStore
	employees EmployeeDirectory
}

func NewService(records RecordStore, employees EmployeeDirectory) *Service {
	return &Service{records: records, employees: employees}
}

// CreateInitial records the first assignment on hire. effectiveFrom defaults
// to today when the joining date is absent.
func (s *Service) CreateInitial(ctx context.Context, employeeID string, payload Payload, effectiveFrom *time.Time) (*Record, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	if err := validatePayload(employeeID, payload); err != nil {
		return nil, err
	}

	existing, err := s.records.FindCurrent(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("employee %s already has a current job record", employeeID)
	}

	from := dateOnly(time.Now().UTC())
	if effectiveFrom != nil && !effectiveFrom.IsZero() {
		from = dateOnly(*effectiveFrom)
	}

	// A race past the FindCurrent check lands on the partial unique index
	// and comes back as a conflict.
	return s.records.Insert(ctx, payload.toRecord(employeeID, from))
}

// Promote closes the current record as of the day before effectiveFrom and
// installs the new assignment as current. Concurrent promotions for the same
// employee are resolved deterministically: exactly one insert survives, the
// loser gets a conflict.
func (s *Service) Promote(ctx context.Context, employeeID string, payload Payload, effectiveFrom time.Time) (*Record, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	if err := validatePayload(employeeID, payload); err != nil {
		return nil, err
	}
	if effectiveFrom.IsZero() {
		return nil, apperr.Validation("effectiveFrom is required")
	}

	from := dateOnly(effectiveFrom)
	closeTo := from.AddDate(0, 0, -1)
	return s.records.Promote(ctx, payload.toRecord(employeeID, from), closeTo)
}

// GetCurrent returns (nil, nil) when the employee exists but has no current
// record; an unknown employee is a not-found error.
func (s *Service) GetCurrent(ctx context.Context, employeeID string) (*Record, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.records.FindCurrent(ctx, employeeID)
}

// GetHistory returns all records for the employee in effective_from order.
func (s *Service) GetHistory(ctx context.Context, employeeID string) ([]Record, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.records.ListByEmployee(ctx, employeeID)
}

// SetCurrent is the trusted correction path for data-entry mistakes. It keeps
// the invariant but skips date-ordering checks.
func (s *Service) SetCurrent(ctx context.Context, recordID string) (*Record, error) {
	return s.records.SetCurrent(ctx, recordID)
}

func (s *Service) Get(ctx context.Context, recordID string) (*Record, error) {
	return s.records.Get(ctx, recordID)
}

func (s *Service) Delete(ctx context.Context, recordID string) error {
	return s.records.Delete(ctx, recordID)
}

func (s *Service) requireEmployee(ctx context.Context, employeeID string) error {
	exists, err := s.employees.Exists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("employee %s not found", employeeID)
	}
	return nil
}

func validatePayload(employeeID string, payload Payload) error {
	if strings.TrimSpace(payload.Designation) == "" {
		return apperr.Validation("designation is required")
	}
	if payload.ReportingTo != "" && payload.ReportingTo == employeeID {
		return apperr.Validation("reportingTo must not be the employee themselves")
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
