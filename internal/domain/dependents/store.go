package dependents

import (
	"context"
	"strings"

	"hris/internal/domain/apperr"
	"hris/internal/platform/db"
)

// Store is the thin persistence layer for the records created alongside an
// employee. Each create validates its own payload; callers decide what to do
// with individual failures.
type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) CreateEmergencyContact(ctx context.Context, employeeID string, contact EmergencyContact) error {
	if strings.TrimSpace(contact.Name) == "" {
		return apperr.Validation("contact name is required")
	}
	if strings.TrimSpace(contact.Phone) == "" {
		return apperr.Validation("contact phone is required")
	}
	_, err := s.DB.Exec(ctx, `
    INSERT INTO emergency_contacts (employee_id, name, relationship, phone, email, address)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, employeeID, contact.Name, nullIfEmpty(contact.Relationship), contact.Phone,
		nullIfEmpty(contact.Email), nullIfEmpty(contact.Address))
	return apperr.FromPg(err, "emergency contact")
}

func (s *Store) CreateCompensation(ctx context.Context, employeeID string, comp Compensation) error {
	if comp.AnnualSalary < 0 {
		return apperr.Validation("annualSalary must not be negative")
	}
	if strings.TrimSpace(comp.Currency) == "" {
		return apperr.Validation("currency is required")
	}
	_, err := s.DB.Exec(ctx, `
    INSERT INTO compensations (employee_id, annual_salary, currency, pay_frequency, effective_from)
    VALUES ($1,$2,$3,$4,$5)
  `, employeeID, comp.AnnualSalary, comp.Currency, nullIfEmpty(comp.PayFrequency), comp.EffectiveFrom)
	return apperr.FromPg(err, "compensation")
}

func (s *Store) CreateDocument(ctx context.Context, employeeID string, doc Document) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employee_documents (employee_id, name, category, file_url)
    VALUES ($1,$2,$3,$4)
  `, employeeID, doc.Name, nullIfEmpty(doc.Category), nullIfEmpty(doc.FileURL))
	return apperr.FromPg(err, "document")
}

func (s *Store) CreateWorkPass(ctx context.Context, employeeID string, pass WorkPass) error {
	if strings.TrimSpace(pass.PassType) == "" {
		return apperr.Validation("passType is required")
	}
	if strings.TrimSpace(pass.PassNumber) == "" {
		return apperr.Validation("passNumber is required")
	}
	_, err := s.DB.Exec(ctx, `
    INSERT INTO work_passes (employee_id, pass_type, pass_number, issued_on, expires_on)
    VALUES ($1,$2,$3,$4,$5)
  `, employeeID, pass.PassType, pass.PassNumber, pass.IssuedOn, pass.ExpiresOn)
	return apperr.FromPg(err, "work pass")
}

func (s *Store) CreateQualification(ctx context.Context, employeeID string, qual Qualification) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO qualifications (employee_id, institute, degree, field_of_study, completed_in)
    VALUES ($1,$2,$3,$4,$5)
  `, employeeID, qual.Institute, nullIfEmpty(qual.Degree), nullIfEmpty(qual.FieldOfStudy), zeroToNil(qual.CompletedIn))
	return apperr.FromPg(err, "qualification")
}

func (s *Store) CreateCertification(ctx context.Context, employeeID string, cert Certification) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO certifications (employee_id, name, issued_by, issued_on, expires_on)
    VALUES ($1,$2,$3,$4,$5)
  `, employeeID, cert.Name, nullIfEmpty(cert.IssuedBy), cert.IssuedOn, cert.ExpiresOn)
	return apperr.FromPg(err, "certification")
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
