package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FRC_CURRENT_SEASON", "")
	t.Setenv("BLOB_BACKEND", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CurrentSeason != time.Now().UTC().Year() {
		t.Fatalf("expected current season to default to this year, got %d", cfg.CurrentSeason)
	}
	if cfg.BlobBackend != BlobBackendMemory {
		t.Fatalf("unexpected default blob backend %q", cfg.BlobBackend)
	}
	if cfg.DemoTeamMin != 9970 || cfg.DemoTeamMax != 9999 {
		t.Fatalf("unexpected demo range %d-%d", cfg.DemoTeamMin, cfg.DemoTeamMax)
	}
	if len(cfg.TBAOffseasonEventTypes) != 2 || cfg.TBAOffseasonEventTypes[0] != "Offseason" {
		t.Fatalf("unexpected off-season event types %+v", cfg.TBAOffseasonEventTypes)
	}
	if !cfg.FRCAPICircuit.Enabled || cfg.FRCAPICircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected default circuit %+v", cfg.FRCAPICircuit)
	}
	if cfg.HighScoreInterval != 30*time.Minute {
		t.Fatalf("unexpected high score interval %s", cfg.HighScoreInterval)
	}
}

func TestLoad_CurrentSeasonValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("explicit season", func(t *testing.T) {
		t.Setenv("FRC_CURRENT_SEASON", "2024")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CurrentSeason != 2024 {
			t.Fatalf("unexpected season %d", cfg.CurrentSeason)
		}
	})

	t.Run("before first season", func(t *testing.T) {
		t.Setenv("FRC_CURRENT_SEASON", "1980")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for season before 1992")
		}
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("FRC_CURRENT_SEASON", "next")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non numeric season")
		}
	})
}

func TestLoad_CircuitConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("per provider values", func(t *testing.T) {
		t.Setenv("TBA_CIRCUIT_ENABLED", "false")
		t.Setenv("TBA_CIRCUIT_FAILURE_COUNT", "3")
		t.Setenv("TBA_CIRCUIT_OPEN_TIMEOUT", "45s")
		t.Setenv("TBA_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.TBACircuit.Enabled {
			t.Fatalf("expected TBA circuit disabled")
		}
		if cfg.TBACircuit.FailureThreshold != 3 || cfg.TBACircuit.OpenTimeout != 45*time.Second || cfg.TBACircuit.HalfOpenMaxReq != 1 {
			t.Fatalf("unexpected TBA circuit %+v", cfg.TBACircuit)
		}
		if !cfg.FRCAPICircuit.Enabled {
			t.Fatalf("expected FRC circuit to keep its default")
		}
	})

	t.Run("invalid failure count", func(t *testing.T) {
		t.Setenv("STATBOTICS_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero failure count")
		}
	})
}

func TestLoad_BlobBackendValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "unknown backend", env: map[string]string{"BLOB_BACKEND": "redis"}, wantErr: true},
		{name: "postgres without url", env: map[string]string{"BLOB_BACKEND": "postgres", "DB_URL": ""}, wantErr: true},
		{name: "postgres with url", env: map[string]string{"BLOB_BACKEND": "POSTGRES", "DB_URL": "postgres://localhost/frc"}},
		{name: "s3 without bucket", env: map[string]string{"BLOB_BACKEND": "s3", "S3_BUCKET": ""}, wantErr: true},
		{name: "s3 without keys", env: map[string]string{"BLOB_BACKEND": "s3", "S3_BUCKET": "frc", "S3_ACCESS_KEY_ID": ""}, wantErr: true},
		{name: "s3 complete", env: map[string]string{
			"BLOB_BACKEND":         "s3",
			"S3_BUCKET":            "frc",
			"S3_ACCESS_KEY_ID":     "key",
			"S3_SECRET_ACCESS_KEY": "secret",
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			_, err := Load()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_DemoRangeValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DEMO_TEAM_MIN", "9999")
	t.Setenv("DEMO_TEAM_MAX", "9970")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for inverted demo range")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "frc-scores-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "frc-scores-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://scores.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}
