package config

import "testing"

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := Config{MaxBodyBytes: 2048, RateLimitPerMinute: 60}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestValidateProductionRequiresSecret(t *testing.T) {
	cfg := Config{
		DatabaseURL:        "postgres://localhost/hris",
		Environment:        "production",
		MaxBodyBytes:       2048,
		RateLimitPerMinute: 60,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET in production")
	}

	cfg.JWTSecret = "secret"
	cfg.RunSeed = true
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for seed without admin password in production")
	}

	cfg.SeedAdminPassword = "ChangeMe123!"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := Config{
		DatabaseURL:        "postgres://localhost/hris",
		MaxBodyBytes:       512,
		RateLimitPerMinute: 60,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for too small MAX_BODY_BYTES")
	}

	cfg.MaxBodyBytes = 2048
	cfg.RateLimitPerMinute = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive RATE_LIMIT_PER_MINUTE")
	}
}
