package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvReader_Defaults(t *testing.T) {
	for _, k := range []string{"ENV", "PORT", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "AGENDA_SCHEDULE", "AGENDA_ON_START", "SEED_FILE"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}

	cfg, err := NewEnvReader(filepath.Join(t.TempDir(), "missing.env")).Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if cfg.Env != EnvDev || cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" || cfg.Log.App != "pawpal-planner" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Agenda.Schedule != "0 0 7 * * *" || cfg.Agenda.OnStart {
		t.Fatalf("unexpected agenda defaults: %+v", cfg.Agenda)
	}
	if cfg.SeedFile != "" {
		t.Fatalf("expected no seed file by default")
	}
}

func TestEnvReader_DotEnvAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	content := "PORT=9090\nLOG_FORMAT=json\nAGENDA_ON_START=true\n"
	if err := os.WriteFile(dotenv, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	// PORT ya definido en el entorno: gana sobre .env
	t.Setenv("PORT", "7070")
	for _, k := range []string{"LOG_FORMAT", "AGENDA_ON_START"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}

	cfg, err := NewEnvReader(dotenv).Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("expected env to win over .env, got %s", cfg.Port)
	}
	if cfg.Log.Format != "json" || !cfg.Agenda.OnStart {
		t.Fatalf("expected values from .env, got %+v", cfg)
	}
}
