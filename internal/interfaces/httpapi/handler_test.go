package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riskibarqy/frc-scores/internal/domain/award"
	"github.com/riskibarqy/frc-scores/internal/domain/breakdown"
	"github.com/riskibarqy/frc-scores/internal/domain/event"
	"github.com/riskibarqy/frc-scores/internal/domain/highscore"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	alliancemock "github.com/riskibarqy/frc-scores/internal/mocks/domain/alliance"
	awardmock "github.com/riskibarqy/frc-scores/internal/mocks/domain/award"
	eventmock "github.com/riskibarqy/frc-scores/internal/mocks/domain/event"
	highscoremock "github.com/riskibarqy/frc-scores/internal/mocks/domain/highscore"
	rankingmock "github.com/riskibarqy/frc-scores/internal/mocks/domain/ranking"
	teammock "github.com/riskibarqy/frc-scores/internal/mocks/domain/team"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/metrics"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
	"github.com/riskibarqy/frc-scores/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testJobToken = "job-secret"

type stubScheduleProvider struct {
	schedule []usecase.ExternalScheduleEntry
	err      error
}

func (s stubScheduleProvider) FetchSchedule(context.Context, match.Query) ([]usecase.ExternalScheduleEntry, error) {
	return s.schedule, s.err
}

func (s stubScheduleProvider) FetchResults(context.Context, match.Query) ([]usecase.ExternalResult, error) {
	return nil, nil
}

func (s stubScheduleProvider) FetchScoreDetails(context.Context, match.Query) (map[int]breakdown.Raw, error) {
	return nil, nil
}

type routerDeps struct {
	events    *eventmock.Source
	awards    *awardmock.Source
	repo      *highscoremock.Repository
	schedules stubScheduleProvider
}

func newTestRouter(t *testing.T, deps routerDeps) http.Handler {
	t.Helper()

	if deps.events == nil {
		deps.events = eventmock.NewSource(t)
	}
	if deps.awards == nil {
		deps.awards = awardmock.NewSource(t)
	}
	if deps.repo == nil {
		deps.repo = highscoremock.NewRepository(t)
	}

	logger := logging.NewNop()
	scheduleService := usecase.NewScheduleService(deps.schedules, logger)
	handler := NewHandler(HandlerConfig{
		ScheduleService: scheduleService,
		HighScoreService: usecase.NewHighScoreService(
			deps.events,
			scheduleService,
			deps.repo,
			usecase.HighScoreServiceConfig{MaxWorkers: 2},
			logger,
		),
		TeamService:   usecase.NewTeamService(teammock.NewSource(t), deps.awards, 2, logger),
		EventService:  usecase.NewEventService(deps.events, rankingmock.NewSource(t), alliancemock.NewSource(t), logger),
		CurrentSeason: 2025,
		Logger:        logger,
	})
	return NewRouter(handler, RouterConfig{Logger: logger, InternalJobToken: testJobToken})
}

func decodeEnvelope(t *testing.T, body string) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, sonic.UnmarshalString(body, &out))
	return out
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, routerDeps{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec.Body.String())
	assert.Equal(t, googleAPIVersion, env["apiVersion"])
}

func TestRouter_ListEvents_CurrentSeason(t *testing.T) {
	t.Parallel()

	events := eventmock.NewSource(t)
	events.
		On("ListEvents", mock.Anything, 2025).
		Return([]event.Event{{Code: "CAFR", Name: "Central Valley Regional", Official: true}}, nil).
		Once()

	router := newTestRouter(t, routerDeps{events: events})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/current/events", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec.Body.String())
	data, ok := env["data"].([]any)
	require.True(t, ok, "data should be a list")
	require.Len(t, data, 1)
	assert.Equal(t, "CAFR", data[0].(map[string]any)["code"])
}

func TestRouter_InvalidSeasonIsBadRequest(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, routerDeps{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/19x4/events", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_HybridSchedule_UnavailableScheduleIsNoContent(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, routerDeps{
		schedules: stubScheduleProvider{err: &upstream.ProviderError{API: "frc-events", StatusCode: http.StatusBadGateway}},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/2024/schedule/CAFR?level=qual", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouter_HybridSchedule_RejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, routerDeps{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/2024/schedule/CAFR?level=final", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_BatchAwards_ReportsPerTeamOutcome(t *testing.T) {
	t.Parallel()

	awards := awardmock.NewSource(t)
	awards.
		On("ListTeamAwards", mock.Anything, 2024, 254).
		Return([]award.Award{{AwardID: 1, TeamNumber: 254, EventCode: "CAFR", Name: "Winner"}}, nil).
		Once()
	awards.
		On("ListTeamAwards", mock.Anything, 2024, 9999).
		Return(nil, nil).
		Once()
	awards.
		On("ListTeamAwards", mock.Anything, 2024, 1678).
		Return(nil, errors.New("connection reset")).
		Once()

	router := newTestRouter(t, routerDeps{awards: awards})
	body := strings.NewReader(`{"teamNumbers":[254,9999,1678]}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/2024/awards/batch", body))

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := decodeEnvelope(t, rec.Body.String())["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["254"].(map[string]any)["status"])
	assert.Equal(t, "absent", data["9999"].(map[string]any)["status"])
	failed := data["1678"].(map[string]any)
	assert.Equal(t, "failed", failed["status"])
	assert.Contains(t, failed["error"], "connection reset")
}

func TestRouter_BatchAwards_ValidatesBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "empty list", body: `{"teamNumbers":[]}`},
		{name: "non positive team", body: `{"teamNumbers":[0]}`},
		{name: "unknown field", body: `{"teams":[254]}`},
		{name: "malformed", body: `{"teamNumbers":`},
	}

	router := newTestRouter(t, routerDeps{})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/2024/awards/batch", strings.NewReader(tc.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRouter_ListHighScores_MissingSeasonIsNoContent(t *testing.T) {
	t.Parallel()

	repo := highscoremock.NewRepository(t)
	repo.On("List", mock.Anything, 2023).Return(nil, false, nil).Once()

	router := newTestRouter(t, routerDeps{repo: repo})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/2023/highscores", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_ListHighScores_FiltersScope(t *testing.T) {
	t.Parallel()

	repo := highscoremock.NewRepository(t)
	repo.
		On("List", mock.Anything, 2024).
		Return([]highscore.Record{
			{Key: "2024overallqual", Year: 2024},
			{Key: "2024overallqualCA", Year: 2024, Scope: "CA"},
		}, true, nil).
		Once()

	router := newTestRouter(t, routerDeps{repo: repo})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/2024/highscores?scope=ca", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec.Body.String())["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "2024overallqualCA", data[0].(map[string]any)["key"])
}

func TestRouter_RecomputeJobRequiresToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, routerDeps{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/recompute-highscores", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RecomputeJobRunsForRequestedSeason(t *testing.T) {
	t.Parallel()

	events := eventmock.NewSource(t)
	events.On("ListEvents", mock.Anything, 2024).Return([]event.Event{}, nil).Once()
	repo := highscoremock.NewRepository(t)
	repo.On("Save", mock.Anything, 2024, mock.Anything).Return(nil).Once()

	router := newTestRouter(t, routerDeps{events: events, repo: repo})
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/recompute-highscores", strings.NewReader(`{"season":2024}`))
	req.Header.Set(internalJobTokenHeader, testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec.Body.String())["data"].(map[string]any)
	assert.EqualValues(t, 2024, data["season"])
}

func TestRouter_SwaggerDisabled(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, routerDeps{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RequestIDIsEchoedOrMinted(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, routerDeps{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-123")
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "has spaces")
	router.ServeHTTP(rec, req)
	minted := rec.Header().Get(requestIDHeader)
	assert.NotEqual(t, "has spaces", minted)
	assert.Len(t, minted, 36)
}

func TestRouter_MetricsRecordRoutePattern(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	svc := metrics.NewService(reg)
	logger := logging.NewNop()
	handler := NewHandler(HandlerConfig{CurrentSeason: 2025, Logger: logger})
	router := NewRouter(handler, RouterConfig{
		Logger:         logger,
		Metrics:        svc,
		MetricsHandler: metrics.NewHandler(reg),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="GET /healthz"`)
}
