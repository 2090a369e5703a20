package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hris/internal/domain/apperr"
	"hris/internal/platform/db"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
}

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash, role
    FROM users
    WHERE email = $1
  `, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("user %s not found", email)
	}
	if err != nil {
		return nil, apperr.FromPg(err, "user")
	}
	return &user, nil
}
