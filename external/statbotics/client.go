package statbotics

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/resilience"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
	"github.com/riskibarqy/frc-scores/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	apiName        = "statbotics"
	defaultBaseURL = "https://api.statbotics.io"
)

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Observer       upstream.CallObserver
}

// Client reads team ratings from Statbotics. The API is public and
// unauthenticated.
type Client struct {
	http     *fasthttp.Client
	baseURL  string
	timeout  time.Duration
	logger   *logging.Logger
	breaker  *resilience.CircuitBreaker
	observer upstream.CallObserver
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                apiName,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL:  baseURL,
		timeout:  timeout,
		logger:   logger.With("api", apiName),
		breaker:  resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		observer: cfg.Observer,
	}
}

type teamYearPayload struct {
	Team     int     `json:"team"`
	Year     int     `json:"year"`
	Name     string  `json:"name"`
	District *string `json:"district"`
	EPA      struct {
		TotalPoints struct {
			Mean float64 `json:"mean"`
			SD   float64 `json:"sd"`
		} `json:"total_points"`
		Breakdown struct {
			AutoPoints    float64 `json:"auto_points"`
			TeleopPoints  float64 `json:"teleop_points"`
			EndgamePoints float64 `json:"endgame_points"`
		} `json:"breakdown"`
		Ranks struct {
			Total struct {
				Rank int `json:"rank"`
			} `json:"total"`
			Country struct {
				Rank int `json:"rank"`
			} `json:"country"`
		} `json:"ranks"`
	} `json:"epa"`
	Record struct {
		Wins    int     `json:"wins"`
		Losses  int     `json:"losses"`
		Ties    int     `json:"ties"`
		WinRate float64 `json:"winrate"`
	} `json:"record"`
}

func (c *Client) FetchTeamYear(ctx context.Context, teamNumber, year int) (usecase.TeamYearStats, error) {
	path := fmt.Sprintf("/v3/team_year/%d/%d", teamNumber, year)

	started := time.Now()
	var raw []byte
	err := c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.get(ctx, path)
		return reqErr
	}, upstream.IsTransient)
	c.observe(err, started)
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			return usecase.TeamYearStats{}, crerr.Wrapf(err, "%s is temporarily unavailable", apiName)
		}
		return usecase.TeamYearStats{}, fmt.Errorf("fetch team year team=%d year=%d: %w", teamNumber, year, err)
	}

	var payload teamYearPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return usecase.TeamYearStats{}, crerr.Wrapf(err, "decode %s payload path=%s", apiName, path)
	}

	out := usecase.TeamYearStats{
		TeamNumber:    payload.Team,
		Year:          payload.Year,
		Name:          payload.Name,
		EPAMean:       payload.EPA.TotalPoints.Mean,
		EPASD:         payload.EPA.TotalPoints.SD,
		AutoPoints:    payload.EPA.Breakdown.AutoPoints,
		TeleopPoints:  payload.EPA.Breakdown.TeleopPoints,
		EndgamePoints: payload.EPA.Breakdown.EndgamePoints,
		Wins:          payload.Record.Wins,
		Losses:        payload.Record.Losses,
		Ties:          payload.Record.Ties,
		WinRate:       payload.Record.WinRate,
		TotalRank:     payload.EPA.Ranks.Total.Rank,
		CountryRank:   payload.EPA.Ranks.Country.Rank,
	}
	if payload.District != nil {
		out.District = strings.ToUpper(*payload.District)
	}
	return out, nil
}

func (c *Client) observe(err error, started time.Time) {
	if c.observer == nil {
		return
	}
	outcome := upstream.OutcomeOK
	switch {
	case crerr.Is(err, resilience.ErrCircuitOpen):
		outcome = upstream.OutcomeCircuitOpen
	case err != nil:
		outcome = upstream.OutcomeError
	}
	c.observer.ObserveUpstreamCall(apiName, outcome, time.Since(started))
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		c.logger.WarnContext(ctx, "statbotics request failed", "path", path, "error", err)
		return nil, upstream.Transient(crerr.Wrapf(err, "%s send request", apiName))
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status >= 200 && status < 300 {
		return body, nil
	}
	return nil, upstream.NewProviderError(apiName, status, body)
}
