package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/resilience"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	CurrentSeason int

	FRCAPIBaseURL    string
	FRCAPIUsername   string
	FRCAPIToken      string
	FRCAPITimeout    time.Duration
	FRCAPIMaxRetries int
	FRCAPICircuit    resilience.CircuitBreakerConfig

	TBABaseURL             string
	TBAAuthKey             string
	TBATimeout             time.Duration
	TBAMaxRetries          int
	TBACircuit             resilience.CircuitBreakerConfig
	TBAOffseasonEventTypes []string

	StatboticsBaseURL string
	StatboticsTimeout time.Duration
	StatboticsCircuit resilience.CircuitBreakerConfig

	CacheEnabled     bool
	CacheTTL         time.Duration
	FanoutMaxWorkers int
	DemoTeamMin      int
	DemoTeamMax      int

	BlobBackend       string
	DBURL             string
	S3Bucket          string
	S3Prefix          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3UsePathStyle    bool

	HighScoreInterval   time.Duration
	HighScoreRunOnStart bool
	InternalJobToken    string

	MetricsEnabled    bool
	WorkerMetricsAddr string

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

const (
	BlobBackendMemory   = "memory"
	BlobBackendPostgres = "postgres"
	BlobBackendS3       = "s3"
)

const firstSeason = 1992

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            strings.TrimSpace(getEnv("APP_SERVICE_NAME", "frc-scores-api")),
		ServiceVersion:         strings.TrimSpace(getEnv("APP_SERVICE_VERSION", "dev")),
		HTTPAddr:               strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:               logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		FRCAPIBaseURL:          strings.TrimSpace(getEnv("FRC_API_BASE_URL", "https://frc-api.firstinspires.org/v3.0")),
		FRCAPIUsername:         strings.TrimSpace(getEnv("FRC_API_USERNAME", "")),
		FRCAPIToken:            strings.TrimSpace(getEnv("FRC_API_TOKEN", "")),
		TBABaseURL:             strings.TrimSpace(getEnv("TBA_BASE_URL", "https://www.thebluealliance.com/api/v3")),
		TBAAuthKey:             strings.TrimSpace(getEnv("TBA_AUTH_KEY", "")),
		TBAOffseasonEventTypes: splitCSV(getEnv("TBA_OFFSEASON_EVENT_TYPES", "Offseason,Preseason")),
		StatboticsBaseURL:      strings.TrimSpace(getEnv("STATBOTICS_BASE_URL", "https://api.statbotics.io")),
		BlobBackend:            strings.ToLower(strings.TrimSpace(getEnv("BLOB_BACKEND", BlobBackendMemory))),
		DBURL:                  strings.TrimSpace(getEnv("DB_URL", "")),
		S3Bucket:               strings.TrimSpace(getEnv("S3_BUCKET", "")),
		S3Prefix:               strings.TrimSpace(getEnv("S3_PREFIX", "")),
		S3Region:               strings.TrimSpace(getEnv("S3_REGION", "auto")),
		S3Endpoint:             strings.TrimSpace(getEnv("S3_ENDPOINT", "")),
		S3AccessKeyID:          strings.TrimSpace(getEnv("S3_ACCESS_KEY_ID", "")),
		S3SecretAccessKey:      strings.TrimSpace(getEnv("S3_SECRET_ACCESS_KEY", "")),
		InternalJobToken:       strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		WorkerMetricsAddr:      strings.TrimSpace(getEnv("WORKER_METRICS_ADDR", ":9090")),
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
	}
	cfg.PyroscopeBasicAuthPassword = getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")

	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.SwaggerEnabled, err = strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault)); err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}
	if cfg.ReadTimeout, err = getEnvAsPositiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}

	if cfg.CurrentSeason, err = getEnvAsInt("FRC_CURRENT_SEASON", time.Now().UTC().Year()); err != nil {
		return Config{}, fmt.Errorf("parse FRC_CURRENT_SEASON: %w", err)
	}
	if cfg.CurrentSeason < firstSeason {
		return Config{}, fmt.Errorf("FRC_CURRENT_SEASON must be >= %d", firstSeason)
	}

	if cfg.FRCAPITimeout, err = getEnvAsPositiveDuration("FRC_API_TIMEOUT", "20s"); err != nil {
		return Config{}, err
	}
	if cfg.FRCAPIMaxRetries, err = getEnvAsNonNegativeInt("FRC_API_MAX_RETRIES", 2); err != nil {
		return Config{}, err
	}
	if cfg.FRCAPICircuit, err = loadCircuit("FRC_API"); err != nil {
		return Config{}, err
	}

	if cfg.TBATimeout, err = getEnvAsPositiveDuration("TBA_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}
	if cfg.TBAMaxRetries, err = getEnvAsNonNegativeInt("TBA_MAX_RETRIES", 2); err != nil {
		return Config{}, err
	}
	if cfg.TBACircuit, err = loadCircuit("TBA"); err != nil {
		return Config{}, err
	}

	if cfg.StatboticsTimeout, err = getEnvAsPositiveDuration("STATBOTICS_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.StatboticsCircuit, err = loadCircuit("STATBOTICS"); err != nil {
		return Config{}, err
	}

	if cfg.CacheEnabled, err = strconv.ParseBool(getEnv("CACHE_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	if cfg.CacheTTL, err = getEnvAsPositiveDuration("CACHE_TTL", "60s"); err != nil {
		return Config{}, err
	}
	if cfg.FanoutMaxWorkers, err = getEnvAsInt("FANOUT_MAX_WORKERS", 8); err != nil {
		return Config{}, fmt.Errorf("parse FANOUT_MAX_WORKERS: %w", err)
	}
	if cfg.FanoutMaxWorkers < 1 {
		return Config{}, fmt.Errorf("FANOUT_MAX_WORKERS must be >= 1")
	}

	if cfg.DemoTeamMin, err = getEnvAsInt("DEMO_TEAM_MIN", 9970); err != nil {
		return Config{}, fmt.Errorf("parse DEMO_TEAM_MIN: %w", err)
	}
	if cfg.DemoTeamMax, err = getEnvAsInt("DEMO_TEAM_MAX", 9999); err != nil {
		return Config{}, fmt.Errorf("parse DEMO_TEAM_MAX: %w", err)
	}
	if cfg.DemoTeamMin > cfg.DemoTeamMax {
		return Config{}, fmt.Errorf("DEMO_TEAM_MIN must be <= DEMO_TEAM_MAX")
	}

	switch cfg.BlobBackend {
	case BlobBackendMemory:
	case BlobBackendPostgres:
		if cfg.DBURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required when BLOB_BACKEND=postgres")
		}
	case BlobBackendS3:
		if cfg.S3Bucket == "" {
			return Config{}, fmt.Errorf("S3_BUCKET is required when BLOB_BACKEND=s3")
		}
		if cfg.S3AccessKeyID == "" || cfg.S3SecretAccessKey == "" {
			return Config{}, fmt.Errorf("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required when BLOB_BACKEND=s3")
		}
	default:
		return Config{}, fmt.Errorf("invalid BLOB_BACKEND %q: valid values are %s, %s, %s", cfg.BlobBackend, BlobBackendMemory, BlobBackendPostgres, BlobBackendS3)
	}
	if cfg.S3UsePathStyle, err = strconv.ParseBool(getEnv("S3_USE_PATH_STYLE", "false")); err != nil {
		return Config{}, fmt.Errorf("parse S3_USE_PATH_STYLE: %w", err)
	}

	if cfg.HighScoreInterval, err = getEnvAsPositiveDuration("HIGHSCORE_INTERVAL", "30m"); err != nil {
		return Config{}, err
	}
	if cfg.HighScoreRunOnStart, err = strconv.ParseBool(getEnv("HIGHSCORE_RUN_ON_START", "true")); err != nil {
		return Config{}, fmt.Errorf("parse HIGHSCORE_RUN_ON_START: %w", err)
	}

	if cfg.MetricsEnabled, err = strconv.ParseBool(getEnv("METRICS_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	if cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	if cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return Config{}, err
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return cfg, nil
}

// loadCircuit reads <prefix>_CIRCUIT_{ENABLED,FAILURE_COUNT,OPEN_TIMEOUT,HALF_OPEN_MAX_REQ}.
func loadCircuit(prefix string) (resilience.CircuitBreakerConfig, error) {
	defaults := resilience.DefaultCircuitBreakerConfig()
	key := prefix + "_CIRCUIT_"

	enabled, err := strconv.ParseBool(getEnv(key+"ENABLED", strconv.FormatBool(defaults.Enabled)))
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %sENABLED: %w", key, err)
	}
	failures, err := getEnvAsInt(key+"FAILURE_COUNT", defaults.FailureThreshold)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %sFAILURE_COUNT: %w", key, err)
	}
	if failures < 1 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("%sFAILURE_COUNT must be >= 1", key)
	}
	openTimeout, err := getEnvAsPositiveDuration(key+"OPEN_TIMEOUT", defaults.OpenTimeout.String())
	if err != nil {
		return resilience.CircuitBreakerConfig{}, err
	}
	halfOpen, err := getEnvAsInt(key+"HALF_OPEN_MAX_REQ", defaults.HalfOpenMaxReq)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %sHALF_OPEN_MAX_REQ: %w", key, err)
	}
	if halfOpen < 1 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("%sHALF_OPEN_MAX_REQ must be >= 1", key)
	}

	return resilience.CircuitBreakerConfig{
		Enabled:          enabled,
		FailureThreshold: failures,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpen,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return out, nil
}

func getEnvAsNonNegativeInt(key string, fallback int) (int, error) {
	out, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out < 0 {
		return 0, fmt.Errorf("%s must be >= 0", key)
	}
	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
