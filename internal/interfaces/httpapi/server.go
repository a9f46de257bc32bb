package httpapi

import (
	"net/http"

	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/metrics"
)

type RouterConfig struct {
	Logger             *logging.Logger
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	InternalJobToken   string
	// Metrics is optional; MetricsHandler is mounted at /metrics when set.
	Metrics        *metrics.Service
	MetricsHandler http.Handler
}

func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled, cfg.MetricsHandler)
	registerSeasonRoutes(mux, handler)
	registerOffseasonRoutes(mux, handler)
	registerStatsRoutes(mux, handler)
	registerInternalJobRoutes(mux, handler, cfg.InternalJobToken)

	routed := RequestMetrics(cfg.Metrics, mux)
	return RequestTracing(RequestID(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, routed)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "request_id", requestIDFromContext(ctx))
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
