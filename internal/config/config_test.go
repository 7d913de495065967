package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret!")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	if cfg.HTTPPort != "8080" {
		t.Fatalf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.CORSOrigins != "http://localhost:5173" {
		t.Fatalf("CORSOrigins = %q", cfg.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret!")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=ledger")

	cfg := Load()

	if cfg.HTTPPort != "9090" {
		t.Fatalf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.DatabaseDSN != "host=db user=app dbname=ledger" {
		t.Fatalf("DatabaseDSN = %q", cfg.DatabaseDSN)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("MAKERS_LEDGER_TEST_KEY", "")
	if got := getEnv("MAKERS_LEDGER_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv boş değişkende fallback dönmeli, got %q", got)
	}

	t.Setenv("MAKERS_LEDGER_TEST_KEY", "value")
	if got := getEnv("MAKERS_LEDGER_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("getEnv = %q, want value", got)
	}
}
