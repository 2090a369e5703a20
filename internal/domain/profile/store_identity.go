package profile

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// Identity documents carry government identifiers, so national_id,
// passport_number and tax_id are stored encrypted at rest. When no data
// encryption key is configured the values are stored as plain bytes.

func (s *Store) CreateIdentity(ctx context.Context, ident Identity) (*Identity, error) {
	nationalID, err := s.seal(ident.NationalID)
	if err != nil {
		return nil, err
	}
	passportNumber, err := s.seal(ident.PassportNumber)
	if err != nil {
		return nil, err
	}
	taxID, err := s.seal(ident.TaxID)
	if err != nil {
		return nil, err
	}
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employee_identity (employee_id, national_id, passport_number, passport_expiry, tax_id)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING employee_id, national_id, passport_number, passport_expiry, tax_id, created_at, updated_at
  `, ident.EmployeeID, nationalID, passportNumber, ident.PassportExpiry, taxID)
	return s.scanIdentity(row)
}

func (s *Store) GetIdentity(ctx context.Context, employeeID string) (*Identity, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT employee_id, national_id, passport_number, passport_expiry, tax_id, created_at, updated_at
    FROM employee_identity
    WHERE employee_id = $1
  `, employeeID)
	return s.scanIdentity(row)
}

func (s *Store) UpdateIdentity(ctx context.Context, ident Identity) (*Identity, error) {
	nationalID, err := s.seal(ident.NationalID)
	if err != nil {
		return nil, err
	}
	passportNumber, err := s.seal(ident.PassportNumber)
	if err != nil {
		return nil, err
	}
	taxID, err := s.seal(ident.TaxID)
	if err != nil {
		return nil, err
	}
	row := s.DB.QueryRow(ctx, `
    UPDATE employee_identity
    SET national_id = $2, passport_number = $3, passport_expiry = $4, tax_id = $5, updated_at = now()
    WHERE employee_id = $1
    RETURNING employee_id, national_id, passport_number, passport_expiry, tax_id, created_at, updated_at
  `, ident.EmployeeID, nationalID, passportNumber, ident.PassportExpiry, taxID)
	return s.scanIdentity(row)
}

func (s *Store) scanIdentity(row pgx.Row) (*Identity, error) {
	var (
		ident          Identity
		nationalID     []byte
		passportNumber []byte
		taxID          []byte
		expiry         *time.Time
	)
	err := row.Scan(&ident.EmployeeID, &nationalID, &passportNumber, &expiry, &taxID,
		&ident.CreatedAt, &ident.UpdatedAt)
	if err != nil {
		return nil, translate(err, "identity profile")
	}
	ident.PassportExpiry = expiry
	if ident.NationalID, err = s.open(nationalID); err != nil {
		return nil, err
	}
	if ident.PassportNumber, err = s.open(passportNumber); err != nil {
		return nil, err
	}
	if ident.TaxID, err = s.open(taxID); err != nil {
		return nil, err
	}
	return &ident, nil
}

func (s *Store) seal(value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	if s.Crypto == nil || !s.Crypto.Configured() {
		return []byte(value), nil
	}
	return s.Crypto.EncryptString(value)
}

func (s *Store) open(value []byte) (string, error) {
	if len(value) == 0 {
		return "", nil
	}
	if s.Crypto == nil || !s.Crypto.Configured() {
		return string(value), nil
	}
	return s.Crypto.DecryptString(value)
}
