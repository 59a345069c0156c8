package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("expected default host localhost, got %q", cfg.DBHost)
	}
	if cfg.DBPort != 5432 {
		t.Errorf("expected default port 5432, got %d", cfg.DBPort)
	}
	if cfg.AppPort != 8080 {
		t.Errorf("expected default app port 8080, got %d", cfg.AppPort)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "warehouse")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBHost != "db.internal" {
		t.Errorf("expected host db.internal, got %q", cfg.DBHost)
	}
	if cfg.DBName != "warehouse" {
		t.Errorf("expected dbname warehouse, got %q", cfg.DBName)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Addr())
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     5432,
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "stockroom",
		DBSSLMode:  "disable",
	}
	want := "host=localhost port=5432 user=postgres password=secret dbname=stockroom sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("dsn = %q, want %q", got, want)
	}
}
