package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/frc-scores/external/frcapi"
	"github.com/riskibarqy/frc-scores/external/statbotics"
	"github.com/riskibarqy/frc-scores/external/tba"
	"github.com/riskibarqy/frc-scores/internal/config"
	"github.com/riskibarqy/frc-scores/internal/domain/highscore"
	"github.com/riskibarqy/frc-scores/internal/infrastructure/blob"
	"github.com/riskibarqy/frc-scores/internal/infrastructure/repository/blobstore"
	cacherepo "github.com/riskibarqy/frc-scores/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/frc-scores/internal/interfaces/httpapi"
	"github.com/riskibarqy/frc-scores/internal/platform/cache"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/metrics"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
	"github.com/riskibarqy/frc-scores/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"
)

// Services is every usecase the binaries serve, built over one set of
// providers and one storage backend.
type Services struct {
	Schedule  *usecase.ScheduleService
	Offseason *usecase.OffseasonService
	HighScore *usecase.HighScoreService
	Team      *usecase.TeamService
	Event     *usecase.EventService
	Stats     *usecase.StatsService
}

// NewServices wires providers, storage and usecases. m may be nil. The
// returned cleanup releases the storage backend and must be called once.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger, m *metrics.Service) (*Services, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	var observer upstream.CallObserver
	var recomputeObserver usecase.RecomputeObserver
	if m != nil {
		observer = m
		recomputeObserver = m
	}

	var responseCache upstream.Cache
	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
		responseCache = store
	}

	frc := frcapi.NewClient(frcapi.ClientConfig{
		BaseURL:        cfg.FRCAPIBaseURL,
		Username:       cfg.FRCAPIUsername,
		Token:          cfg.FRCAPIToken,
		Timeout:        cfg.FRCAPITimeout,
		MaxRetries:     cfg.FRCAPIMaxRetries,
		Cache:          responseCache,
		CacheTTL:       cfg.CacheTTL,
		Logger:         logger.Named("frcapi"),
		Observer:       observer,
		CircuitBreaker: cfg.FRCAPICircuit,
	})
	blueAlliance := tba.NewClient(tba.ClientConfig{
		BaseURL:        cfg.TBABaseURL,
		AuthKey:        cfg.TBAAuthKey,
		Timeout:        cfg.TBATimeout,
		MaxRetries:     cfg.TBAMaxRetries,
		Cache:          responseCache,
		CacheTTL:       cfg.CacheTTL,
		Logger:         logger.Named("tba"),
		Observer:       observer,
		CircuitBreaker: cfg.TBACircuit,
	})
	stats := statbotics.NewClient(statbotics.ClientConfig{
		BaseURL:        cfg.StatboticsBaseURL,
		Timeout:        cfg.StatboticsTimeout,
		Logger:         logger.Named("statbotics"),
		Observer:       observer,
		CircuitBreaker: cfg.StatboticsCircuit,
	})

	blobStore, closeStore, err := openBlobStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var highScores highscore.Repository = blobstore.NewHighScoreRepository(blobStore)
	if store != nil {
		highScores = cacherepo.NewHighScoreRepository(highScores, store, cfg.CacheTTL)
	}

	schedule := usecase.NewScheduleService(frc, logger)
	services := &Services{
		Schedule:  schedule,
		Offseason: usecase.NewOffseasonService(blueAlliance, cfg.TBAOffseasonEventTypes, logger),
		HighScore: usecase.NewHighScoreService(
			frc,
			schedule,
			highScores,
			usecase.HighScoreServiceConfig{
				DemoRange:  highscore.DemoRange{Min: cfg.DemoTeamMin, Max: cfg.DemoTeamMax},
				MaxWorkers: cfg.FanoutMaxWorkers,
				Observer:   recomputeObserver,
			},
			logger,
		),
		Team:  usecase.NewTeamService(frc, frc, cfg.FanoutMaxWorkers, logger),
		Event: usecase.NewEventService(frc, frc, frc, logger),
		Stats: usecase.NewStatsService(stats, logger),
	}

	return services, closeStore, nil
}

// NewHTTPServer builds the API server. The returned cleanup must run after
// the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var m *metrics.Service
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		reg := metrics.NewRegistry()
		m = metrics.NewService(reg)
		metricsHandler = metrics.NewHandler(reg)
	}

	services, cleanup, err := NewServices(ctx, cfg, logger, m)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		ScheduleService:  services.Schedule,
		OffseasonService: services.Offseason,
		HighScoreService: services.HighScore,
		TeamService:      services.Team,
		EventService:     services.Event,
		StatsService:     services.Stats,
		CurrentSeason:    cfg.CurrentSeason,
		Logger:           logger,
	})
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:             logger,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
		Metrics:            m,
		MetricsHandler:     metricsHandler,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func openBlobStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (blob.Store, func(), error) {
	noop := func() {}

	switch cfg.BlobBackend {
	case config.BlobBackendPostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("blob store ready", "backend", cfg.BlobBackend, "db", dbNameFromURL(cfg.DBURL))
		return blob.NewPostgresStore(db), func() {
			if err := db.Close(); err != nil {
				logger.Warn("close database failed", "error", err)
			}
		}, nil
	case config.BlobBackendS3:
		store, err := blob.NewS3Store(ctx, blob.S3Config{
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			AccessKeySecret: cfg.S3SecretAccessKey,
			UsePathStyle:    cfg.S3UsePathStyle,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init s3 blob store: %w", err)
		}
		logger.Info("blob store ready", "backend", cfg.BlobBackend, "bucket", cfg.S3Bucket)
		return store, noop, nil
	case config.BlobBackendMemory, "":
		logger.Warn("blob store is in memory, high scores are lost on restart")
		return blob.NewMemoryStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported blob backend %q", cfg.BlobBackend)
	}
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.ServiceName)
	db, err := otelsqlx.Open(
		"postgres",
		dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
