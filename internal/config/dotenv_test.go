package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv_SkipsMissingAndKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frc.env")
	content := "FRC_DOTENV_FRESH=from-file\nFRC_DOTENV_SET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("FRC_DOTENV_SET", "from-process")
	t.Setenv("FRC_DOTENV_FRESH", "")
	if err := os.Unsetenv("FRC_DOTENV_FRESH"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	loaded, err := LoadDotEnv(filepath.Join(dir, "missing.env"), path)
	if err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != path {
		t.Fatalf("unexpected loaded files %v", loaded)
	}
	if got := os.Getenv("FRC_DOTENV_FRESH"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("FRC_DOTENV_SET"); got != "from-process" {
		t.Fatalf("expected process value to win, got %q", got)
	}
}

func TestLoad_MetricsDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("METRICS_ENABLED", "")
	t.Setenv("WORKER_METRICS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.MetricsEnabled || cfg.WorkerMetricsAddr != ":9090" {
		t.Fatalf("unexpected metrics config enabled=%t addr=%q", cfg.MetricsEnabled, cfg.WorkerMetricsAddr)
	}
}
