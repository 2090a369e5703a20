package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hris/internal/domain/apperr"
	"hris/internal/platform/db"
)

const employeeColumns = `
    id, employee_code, first_name, COALESCE(middle_name, ''), last_name,
    date_of_birth, COALESCE(gender, ''), COALESCE(nationality, ''), COALESCE(marital_status, ''),
    work_email, COALESCE(personal_email, ''), COALESCE(mobile_number, ''), COALESCE(work_number, ''),
    COALESCE(photo_url, ''), status, created_at, updated_at`

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) Create(ctx context.Context, emp Employee) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employees (first_name, middle_name, last_name, date_of_birth, gender, nationality,
      marital_status, work_email, personal_email, mobile_number, work_number, photo_url, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING`+employeeColumns+`
  `,
		emp.FirstName, nullIfEmpty(emp.MiddleName), emp.LastName, emp.DateOfBirth,
		nullIfEmpty(emp.Gender), nullIfEmpty(emp.Nationality), nullIfEmpty(emp.MaritalStatus),
		emp.WorkEmail, nullIfEmpty(emp.PersonalEmail), nullIfEmpty(emp.MobileNumber),
		nullIfEmpty(emp.WorkNumber), nullIfEmpty(emp.PhotoURL), emp.Status,
	)
	created, err := scanEmployee(row)
	if err != nil {
		return nil, apperr.FromPg(err, "employee")
	}
	return created, nil
}

func (s *Store) Get(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, employeeID)
	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("employee %s not found", employeeID)
	}
	if err != nil {
		return nil, apperr.FromPg(err, "employee")
	}
	return emp, nil
}

func (s *Store) Exists(ctx context.Context, employeeID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE id = $1", employeeID).Scan(&count)
	if err != nil {
		return false, apperr.FromPg(err, "employee")
	}
	return count > 0, nil
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Employee, error) {
	query := "SELECT" + employeeColumns + " FROM employees"
	args := []any{}
	where := ""
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clause := fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	query += where + fmt.Sprintf(" ORDER BY last_name, first_name LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromPg(err, "employee")
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, employeeID string, emp Employee) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE employees
    SET first_name = $1,
        middle_name = $2,
        last_name = $3,
        date_of_birth = $4,
        gender = $5,
        nationality = $6,
        marital_status = $7,
        work_email = $8,
        personal_email = $9,
        mobile_number = $10,
        work_number = $11,
        photo_url = $12,
        status = $13,
        updated_at = now()
    WHERE id = $14
    RETURNING`+employeeColumns+`
  `,
		emp.FirstName, nullIfEmpty(emp.MiddleName), emp.LastName, emp.DateOfBirth,
		nullIfEmpty(emp.Gender), nullIfEmpty(emp.Nationality), nullIfEmpty(emp.MaritalStatus),
		emp.WorkEmail, nullIfEmpty(emp.PersonalEmail), nullIfEmpty(emp.MobileNumber),
		nullIfEmpty(emp.WorkNumber), nullIfEmpty(emp.PhotoURL), emp.Status, employeeID,
	)
	updated, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("employee %s not found", employeeID)
	}
	if err != nil {
		return nil, apperr.FromPg(err, "employee")
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, employeeID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", employeeID)
	if err != nil {
		return apperr.FromPg(err, "employee")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("employee %s not found", employeeID)
	}
	return nil
}

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	if err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FirstName, &emp.MiddleName, &emp.LastName,
		&emp.DateOfBirth, &emp.Gender, &emp.Nationality, &emp.MaritalStatus,
		&emp.WorkEmail, &emp.PersonalEmail, &emp.MobileNumber, &emp.WorkNumber,
		&emp.PhotoURL, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
