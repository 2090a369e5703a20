package jobhistory

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hris/internal/domain/apperr"
	"hris/internal/platform/db"
)

const recordColumns = `
    id, employee_id, designation, COALESCE(department, ''), COALESCE(reporting_to::text, ''),
    COALESCE(status, ''), COALESCE(time_type, ''), COALESCE(location, ''),
    COALESCE(legal_entity, ''), COALESCE(business_unit, ''), COALESCE(worker_type, ''),
    COALESCE(probation_policy, ''), COALESCE(notice_period, ''), secondary_job_titles,
    is_current, effective_from, effective_to, COALESCE(created_by, ''), created_at, updated_at`

// Store persists job assignment records. The single-current invariant is
// backed by a partial unique index on (employee_id) WHERE is_current, so a
// racing insert of a second current record fails with a unique violation
// instead of silently leaving two open periods.
type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) Insert(ctx context.Context, rec Record) (*Record, error) {
	created, err := insertRecord(ctx, s.DB, rec)
	if err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}
	return created, nil
}

func (s *Store) FindCurrent(ctx context.Context, employeeID string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+recordColumns+`
    FROM job_history
    WHERE employee_id = $1 AND is_current
  `, employeeID)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}
	return rec, nil
}

func (s *Store) Get(ctx context.Context, recordID string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+recordColumns+`
    FROM job_history
    WHERE id = $1
  `, recordID)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("job history record %s not found", recordID)
	}
	if err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}
	return rec, nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+recordColumns+`
    FROM job_history
    WHERE employee_id = $1
    ORDER BY effective_from ASC, created_at ASC
  `, employeeID)
	if err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// Promote closes the current record (if any) with the supplied end date and
// inserts the replacement inside one transaction. On a unique violation the
// transaction rolls back and the caller gets a conflict: a concurrent
// promotion already installed its record, and the losing call must not leave
// the employee with no current record.
func (s *Store) Promote(ctx context.Context, rec Record, closeTo time.Time) (*Record, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, apperr.Unavailable("job history store begin failed", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    UPDATE job_history
    SET is_current = false,
        effective_to = GREATEST(effective_from, $2::date),
        updated_at = now()
    WHERE employee_id = $1 AND is_current
  `, rec.EmployeeID, closeTo); err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}

	created, err := insertRecord(ctx, tx, rec)
	if err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}
	return created, nil
}

// SetCurrent is the administrative override: whatever was current for the
// record's employee is closed as of today and the named record is reopened.
// Date ordering is deliberately not re-checked.
func (s *Store) SetCurrent(ctx context.Context, recordID string) (*Record, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, apperr.Unavailable("job history store begin failed", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var employeeID string
	err = tx.QueryRow(ctx, "SELECT employee_id FROM job_history WHERE id = $1 FOR UPDATE", recordID).Scan(&employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("job history record %s not found", recordID)
	}
	if err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}

	if _, err := tx.Exec(ctx, `
    UPDATE job_history
    SET is_current = false,
        effective_to = GREATEST(effective_from, CURRENT_DATE),
        updated_at = now()
    WHERE employee_id = $1 AND is_current AND id <> $2
  `, employeeID, recordID); err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}

	row := tx.QueryRow(ctx, `
    UPDATE job_history
    SET is_current = true,
        effective_to = NULL,
        updated_at = now()
    WHERE id = $1
    RETURNING`+recordColumns+`
  `, recordID)
	rec, err := scanRecord(row)
	if err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.FromPg(err, "job history record")
	}
	return rec, nil
}

// Delete removes a record without repairing the current-record invariant;
// that is the administrative caller's responsibility.
func (s *Store) Delete(ctx context.Context, recordID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM job_history WHERE id = $1", recordID)
	if err != nil {
		return apperr.FromPg(err, "job history record")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("job history record %s not found", recordID)
	}
	return nil
}

type execer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertRecord(ctx context.Context, q execer, rec Record) (*Record, error) {
	row := q.QueryRow(ctx, `
    INSERT INTO job_history (employee_id, designation, department, reporting_to, status, time_type,
      location, legal_entity, business_unit, worker_type, probation_policy, notice_period,
      secondary_job_titles, is_current, effective_from, effective_to, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
    RETURNING`+recordColumns+`
  `,
		rec.EmployeeID, rec.Designation, nullIfEmpty(rec.Department), nullIfEmpty(rec.ReportingTo),
		nullIfEmpty(rec.Status), nullIfEmpty(rec.TimeType), nullIfEmpty(rec.Location),
		nullIfEmpty(rec.LegalEntity), nullIfEmpty(rec.BusinessUnit), nullIfEmpty(rec.WorkerType),
		nullIfEmpty(rec.ProbationPolicy), nullIfEmpty(rec.NoticePeriod), rec.SecondaryJobTitles,
		rec.IsCurrent, rec.EffectiveFrom, rec.EffectiveTo, nullIfEmpty(rec.CreatedBy),
	)
	return scanRecord(row)
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	if err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Designation, &rec.Department, &rec.ReportingTo,
		&rec.Status, &rec.TimeType, &rec.Location, &rec.LegalEntity, &rec.BusinessUnit,
		&rec.WorkerType, &rec.ProbationPolicy, &rec.NoticePeriod, &rec.SecondaryJobTitles,
		&rec.IsCurrent, &rec.EffectiveFrom, &rec.EffectiveTo, &rec.CreatedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
