package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hris/internal/domain/apperr"
	cryptoutil "hris/internal/platform/crypto"
	"hris/internal/platform/db"
)

// Store covers the satellite profile collections. Duplicate creates surface
// as conflicts from the unique employee_id constraints.
type Store struct {
	DB     db.Querier
	Crypto *cryptoutil.Service
}

func NewStore(q db.Querier, crypto *cryptoutil.Service) *Store {
	return &Store{DB: q, Crypto: crypto}
}

func (s *Store) CreateAddress(ctx context.Context, addr Address) (*Address, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employee_addresses (employee_id, line1, line2, city, state, postal_code, country)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING employee_id, line1, COALESCE(line2, ''), COALESCE(city, ''), COALESCE(state, ''),
      COALESCE(postal_code, ''), COALESCE(country, ''), created_at, updated_at
  `, addr.EmployeeID, addr.Line1, nullIfEmpty(addr.Line2), nullIfEmpty(addr.City),
		nullIfEmpty(addr.State), nullIfEmpty(addr.PostalCode), nullIfEmpty(addr.Country))
	return scanAddress(row, "address profile")
}

func (s *Store) GetAddress(ctx context.Context, employeeID string) (*Address, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT employee_id, line1, COALESCE(line2, ''), COALESCE(city, ''), COALESCE(state, ''),
      COALESCE(postal_code, ''), COALESCE(country, ''), created_at, updated_at
    FROM employee_addresses
    WHERE employee_id = $1
  `, employeeID)
	return scanAddress(row, "address profile")
}

func (s *Store) UpdateAddress(ctx context.Context, addr Address) (*Address, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE employee_addresses
    SET line1 = $2, line2 = $3, city = $4, state = $5, postal_code = $6, country = $7, updated_at = now()
    WHERE employee_id = $1
    RETURNING employee_id, line1, COALESCE(line2, ''), COALESCE(city, ''), COALESCE(state, ''),
      COALESCE(postal_code, ''), COALESCE(country, ''), created_at, updated_at
  `, addr.EmployeeID, addr.Line1, nullIfEmpty(addr.Line2), nullIfEmpty(addr.City),
		nullIfEmpty(addr.State), nullIfEmpty(addr.PostalCode), nullIfEmpty(addr.Country))
	return scanAddress(row, "address profile")
}

func scanAddress(row pgx.Row, entity string) (*Address, error) {
	var addr Address
	err := row.Scan(&addr.EmployeeID, &addr.Line1, &addr.Line2, &addr.City, &addr.State,
		&addr.PostalCode, &addr.Country, &addr.CreatedAt, &addr.UpdatedAt)
	if err != nil {
		return nil, translate(err, entity)
	}
	return &addr, nil
}

func (s *Store) CreateEducation(ctx context.Context, edu Education) (*Education, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employee_education (employee_id, highest_qualification, institute, year_completed, grade)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING employee_id, highest_qualification, COALESCE(institute, ''), COALESCE(year_completed, 0),
      COALESCE(grade, ''), created_at, updated_at
  `, edu.EmployeeID, edu.HighestQualification, nullIfEmpty(edu.Institute),
		zeroToNil(edu.YearCompleted), nullIfEmpty(edu.Grade))
	return scanEducation(row)
}

func (s *Store) GetEducation(ctx context.Context, employeeID string) (*Education, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT employee_id, highest_qualification, COALESCE(institute, ''), COALESCE(year_completed, 0),
      COALESCE(grade, ''), created_at, updated_at
    FROM employee_education
    WHERE employee_id = $1
  `, employeeID)
	return scanEducation(row)
}

func (s *Store) UpdateEducation(ctx context.Context, edu Education) (*Education, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE employee_education
    SET highest_qualification = $2, institute = $3, year_completed = $4, grade = $5, updated_at = now()
    WHERE employee_id = $1
    RETURNING employee_id, highest_qualification, COALESCE(institute, ''), COALESCE(year_completed, 0),
      COALESCE(grade, ''), created_at, updated_at
  `, edu.EmployeeID, edu.HighestQualification, nullIfEmpty(edu.Institute),
		zeroToNil(edu.YearCompleted), nullIfEmpty(edu.Grade))
	return scanEducation(row)
}

func scanEducation(row pgx.Row) (*Education, error) {
	var edu Education
	err := row.Scan(&edu.EmployeeID, &edu.HighestQualification, &edu.Institute,
		&edu.YearCompleted, &edu.Grade, &edu.CreatedAt, &edu.UpdatedAt)
	if err != nil {
		return nil, translate(err, "education profile")
	}
	return &edu, nil
}

func (s *Store) CreateExperience(ctx context.Context, exp Experience) (*Experience, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employee_experience (employee_id, previous_employer, last_designation, total_years)
    VALUES ($1,$2,$3,$4)
    RETURNING employee_id, COALESCE(previous_employer, ''), COALESCE(last_designation, ''),
      COALESCE(total_years, 0), created_at, updated_at
  `, exp.EmployeeID, nullIfEmpty(exp.PreviousEmployer), nullIfEmpty(exp.LastDesignation), exp.TotalYears)
	return scanExperience(row)
}

func (s *Store) GetExperience(ctx context.Context, employeeID string) (*Experience, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT employee_id, COALESCE(previous_employer, ''), COALESCE(last_designation, ''),
      COALESCE(total_years, 0), created_at, updated_at
    FROM employee_experience
    WHERE employee_id = $1
  `, employeeID)
	return scanExperience(row)
}

func (s *Store) UpdateExperience(ctx context.Context, exp Experience) (*Experience, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE employee_experience
    SET previous_employer = $2, last_designation = $3, total_years = $4, updated_at = now()
    WHERE employee_id = $1
    RETURNING employee_id, COALESCE(previous_employer, ''), COALESCE(last_designation, ''),
      COALESCE(total_years, 0), created_at, updated_at
  `, exp.EmployeeID, nullIfEmpty(exp.PreviousEmployer), nullIfEmpty(exp.LastDesignation), exp.TotalYears)
	return scanExperience(row)
}

func scanExperience(row pgx.Row) (*Experience, error) {
	var exp Experience
	err := row.Scan(&exp.EmployeeID, &exp.PreviousEmployer, &exp.LastDesignation,
		&exp.TotalYears, &exp.CreatedAt, &exp.UpdatedAt)
	if err != nil {
		return nil, translate(err, "experience profile")
	}
	return &exp, nil
}

func (s *Store) CreateFamily(ctx context.Context, fam Family) (*Family, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employee_family (employee_id, spouse_name, children_count, father_name, mother_name)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING employee_id, COALESCE(spouse_name, ''), COALESCE(children_count, 0),
      COALESCE(father_name, ''), COALESCE(mother_name, ''), created_at, updated_at
  `, fam.EmployeeID, nullIfEmpty(fam.SpouseName), fam.ChildrenCount,
		nullIfEmpty(fam.FatherName), nullIfEmpty(fam.MotherName))
	return scanFamily(row)
}

func (s *Store) GetFamily(ctx context.Context, employeeID string) (*Family, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT employee_id, COALESCE(spouse_name, ''), COALESCE(children_count, 0),
      COALESCE(father_name, ''), COALESCE(mother_name, ''), created_at, updated_at
    FROM employee_family
    WHERE employee_id = $1
  `, employeeID)
	return scanFamily(row)
}

func (s *Store) UpdateFamily(ctx context.Context, fam Family) (*Family, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE employee_family
    SET spouse_name = $2, children_count = $3, father_name = $4, mother_name = $5, updated_at = now()
    WHERE employee_id = $1
    RETURNING employee_id, COALESCE(spouse_name, ''), COALESCE(children_count, 0),
      COALESCE(father_name, ''), COALESCE(mother_name, ''), created_at, updated_at
  `, fam.EmployeeID, nullIfEmpty(fam.SpouseName), fam.ChildrenCount,
		nullIfEmpty(fam.FatherName), nullIfEmpty(fam.MotherName))
	return scanFamily(row)
}

func scanFamily(row pgx.Row) (*Family, error) {
	var fam Family
	err := row.Scan(&fam.EmployeeID, &fam.SpouseName, &fam.ChildrenCount,
		&fam.FatherName, &fam.MotherName, &fam.CreatedAt, &fam.UpdatedAt)
	if err != nil {
		return nil, translate(err, "family profile")
	}
	return &fam, nil
}

func (s *Store) CreateSkills(ctx context.Context, sk Skills) (*Skills, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employee_skills (employee_id, skills, languages, summary)
    VALUES ($1,$2,$3,$4)
    RETURNING employee_id, skills, languages, COALESCE(summary, ''), created_at, updated_at
  `, sk.EmployeeID, sk.Skills, sk.Languages, nullIfEmpty(sk.Summary))
	return scanSkills(row)
}

func (s *Store) GetSkills(ctx context.Context, employeeID string) (*Skills, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT employee_id, skills, languages, COALESCE(summary, ''), created_at, updated_at
    FROM employee_skills
    WHERE employee_id = $1
  `, employeeID)
	return scanSkills(row)
}

func (s *Store) UpdateSkills(ctx context.Context, sk Skills) (*Skills, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE employee_skills
    SET skills = $2, languages = $3, summary = $4, updated_at = now()
    WHERE employee_id = $1
    RETURNING employee_id, skills, languages, COALESCE(summary, ''), created_at, updated_at
  `, sk.EmployeeID, sk.Skills, sk.Languages, nullIfEmpty(sk.Summary))
	return scanSkills(row)
}

func scanSkills(row pgx.Row) (*Skills, error) {
	var sk Skills
	err := row.Scan(&sk.EmployeeID, &sk.Skills, &sk.Languages, &sk.Summary, &sk.CreatedAt, &sk.UpdatedAt)
	if err != nil {
		return nil, translate(err, "skills profile")
	}
	return &sk, nil
}

func translate(err error, entity string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("%s not found", entity)
	}
	return apperr.FromPg(err, entity)
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func zeroToNil(value int) any {
	if value == 0 {
		return nil
	}
	return value
}
