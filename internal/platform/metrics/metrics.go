package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "frc_scores"

// Service holds every Prometheus collector the binaries export. A nil
// *Service is valid and records nothing.
type Service struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	UpstreamCalls      *prometheus.CounterVec
	UpstreamDuration   *prometheus.HistogramVec
	HighScoreRuns      *prometheus.CounterVec
	HighScoreDuration  prometheus.Histogram
	HighScoreLastBuilt prometheus.Gauge
}

// NewRegistry returns a private registry preloaded with the Go runtime and
// process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewHandler returns an http.Handler for the given Gatherer, falling back to
// the default one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the collectors on registerer, falling
// back to the default registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		UpstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Provider calls by API and outcome.",
		}, []string{"api", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_seconds",
			Help:      "Provider call latency including retries.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		}, []string{"api"}),
		HighScoreRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "highscore_recompute_runs_total",
			Help:      "High score recompute runs by outcome.",
		}, []string{"outcome"}),
		HighScoreDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "highscore_recompute_duration_seconds",
			Help:      "Duration of a full high score recompute.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		HighScoreLastBuilt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "highscore_last_success_timestamp_seconds",
			Help:      "Unix time of the last successful recompute.",
		}),
	}

	reg.MustRegister(
		s.HTTPRequests,
		s.HTTPDuration,
		s.UpstreamCalls,
		s.UpstreamDuration,
		s.HighScoreRuns,
		s.HighScoreDuration,
		s.HighScoreLastBuilt,
	)

	return s
}

func (s *Service) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (s *Service) ObserveUpstreamCall(api, outcome string, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.UpstreamCalls.WithLabelValues(api, outcome).Inc()
	s.UpstreamDuration.WithLabelValues(api).Observe(elapsed.Seconds())
}

// ObserveRecompute records one recompute run; succeeded also stamps the
// last success gauge.
func (s *Service) ObserveRecompute(succeeded bool, elapsed time.Duration) {
	if s == nil {
		return
	}
	outcome := "failed"
	if succeeded {
		outcome = "ok"
		s.HighScoreLastBuilt.SetToCurrentTime()
	}
	s.HighScoreRuns.WithLabelValues(outcome).Inc()
	s.HighScoreDuration.Observe(elapsed.Seconds())
}
