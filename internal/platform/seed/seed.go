package seed

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hris/internal/domain/auth"
	"hris/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.TrimSpace(cfg.SeedAdminEmail)
	if email == "" {
		email = "admin@hris.local"
	}
	password := cfg.SeedAdminPassword
	if password == "" {
		password = "ChangeMe123!"
	}
	return ensureAdminUser(ctx, pool, email, password)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, role)
    VALUES ($1, $2, $3)
  `, email, hashed, auth.RoleHR)
	return err
}
