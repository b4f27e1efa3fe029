package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "geoddl.env")
	content := "GEODDL_DATABASE_URL=sqlite://from-file.db\nGEODDL_SCHEMA=schema.yaml\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEODDL_DATABASE_URL", "")
	t.Setenv("GEODDL_SCHEMA", "")
	t.Setenv("GEODDL_JOB", "")
	t.Setenv("GEODDL_PUSHGATEWAY_URL", "http://gateway:9091")
	// godotenv does not override variables that are already set, so clear them.
	os.Unsetenv("GEODDL_DATABASE_URL")
	os.Unsetenv("GEODDL_SCHEMA")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DatabaseURL != "sqlite://from-file.db" {
		t.Errorf("DatabaseURL = %q, want sqlite://from-file.db", cfg.DatabaseURL)
	}
	if cfg.SchemaFile != "schema.yaml" {
		t.Errorf("SchemaFile = %q, want schema.yaml", cfg.SchemaFile)
	}
	if cfg.PushgatewayURL != "http://gateway:9091" {
		t.Errorf("PushgatewayURL = %q", cfg.PushgatewayURL)
	}
	if cfg.Job != "geoddl" {
		t.Errorf("Job = %q, want default geoddl", cfg.Job)
	}
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("GEODDL_DATABASE_URL=sqlite://file.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GEODDL_DATABASE_URL", "postgres://env/db")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DatabaseURL != "postgres://env/db" {
		t.Errorf("DatabaseURL = %q, want value from environment", cfg.DatabaseURL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("GEODDL_JOB", "nightly")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v, want missing file ignored", err)
	}
	if cfg.Job != "nightly" {
		t.Errorf("Job = %q, want nightly", cfg.Job)
	}
}
