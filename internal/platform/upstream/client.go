package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const maxResponseBytes = 8 << 20

// Cache is the memoization collaborator; values are raw response bodies.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// CallObserver is told about every call that reached the network, once per
// coalesced flight.
type CallObserver interface {
	ObserveUpstreamCall(api, outcome string, elapsed time.Duration)
}

const (
	OutcomeOK          = "ok"
	OutcomeError       = "error"
	OutcomeCircuitOpen = "circuit_open"
)

type Config struct {
	API            string
	BaseURL        string
	Headers        map[string]string
	HTTPClient     *http.Client
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Cache          Cache
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Observer       CallObserver
}

// Client performs JSON GETs against one provider with retry, breaker,
// request coalescing and optional response memoization.
type Client struct {
	api        string
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
	cache      Cache
	cacheTTL   time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	observer   CallObserver
	flight     singleflight.Group
	// flightTimeout bounds one coalesced request including every retry.
	flightTimeout time.Duration
}

func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	api := strings.TrimSpace(cfg.API)
	if api == "" {
		api = "upstream"
	}

	headers := make(map[string]string, len(cfg.Headers))
	for key, value := range cfg.Headers {
		headers[key] = value
	}

	maxRetries := max(cfg.MaxRetries, 0)
	flightTimeout := time.Duration(maxRetries+1) * httpClient.Timeout
	for attempt := 1; attempt <= maxRetries; attempt++ {
		flightTimeout += time.Duration(attempt) * backoff
	}

	return &Client{
		api:        api,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		headers:    headers,
		httpClient: httpClient,
		maxRetries: maxRetries,
		backoff:    backoff,
		cache:      cfg.Cache,
		cacheTTL:   cfg.CacheTTL,
		logger:     logger.With("api", api),
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		observer:   cfg.Observer,

		flightTimeout: flightTimeout,
	}
}

func (c *Client) API() string {
	return c.api
}

// Get fetches path with query and decodes the JSON body into target. An
// empty body leaves target untouched.
func (c *Client) Get(ctx context.Context, path string, query url.Values, target any) error {
	raw, err := c.GetRaw(ctx, path, query)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s payload path=%s", c.api, path)
	}
	return nil
}

func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.buildURL(path, query)
	key := c.cacheKey(fullURL)

	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx, key); ok {
			return []byte(cached), nil
		}
	}

	// The flight ignores caller cancellation and is bounded by flightTimeout.
	// Each caller waits on its own ctx.
	flight := c.flight.DoChan(key, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.flightTimeout)
		defer cancel()

		started := time.Now()
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.execute(flightCtx, fullURL)
			return reqErr
		}, IsTransient)
		if crerr.Is(execErr, resilience.ErrCircuitOpen) {
			c.observe(OutcomeCircuitOpen, started)
			c.logger.WarnContext(flightCtx, "circuit breaker rejected request", "state", string(c.breaker.State()), "path", path)
			return nil, crerr.Wrapf(execErr, "%s is temporarily unavailable", c.api)
		}
		if execErr != nil {
			c.observe(OutcomeError, started)
			return nil, execErr
		}
		c.observe(OutcomeOK, started)
		if c.cache != nil {
			c.cache.Set(flightCtx, key, string(raw), c.cacheTTL)
		}
		return raw, nil
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result = <-flight:
	}
	if result.Err != nil {
		return nil, result.Err
	}

	raw, ok := result.Val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", result.Val)
	}
	return raw, nil
}

func (c *Client) observe(outcome string, started time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstreamCall(c.api, outcome, time.Since(started))
	}
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		raw, err := c.once(ctx, fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !IsTransient(err) || attempt == c.maxRetries {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * c.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "upstream request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) once(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, Transient(crerr.Wrapf(err, "%s send request", c.api))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, Transient(crerr.Wrapf(err, "%s read response body", c.api))
	}
	if len(raw) > maxResponseBytes {
		return nil, crerr.Wrapf(ErrResponseTooLarge, "%s response exceeds %d bytes", c.api, maxResponseBytes)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	return nil, NewProviderError(c.api, resp.StatusCode, raw)
}

func (c *Client) buildURL(path string, query url.Values) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	if !strings.HasPrefix(path, "/") {
		_ = buf.WriteByte('/')
	}
	_, _ = buf.WriteString(path)
	if encoded := query.Encode(); encoded != "" {
		_ = buf.WriteByte('?')
		_, _ = buf.WriteString(encoded)
	}
	return buf.String()
}

func (c *Client) cacheKey(fullURL string) string {
	return c.api + ":" + fullURL
}
