package statbotics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
	})
}

func TestClient_FetchTeamYearMapsRatings(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/team_year/254/2024", r.URL.Path)
		_, _ = w.Write([]byte(`{"team":254,"year":2024,"name":"The Cheesy Poofs","district":null,
			"epa":{"total_points":{"mean":72.4,"sd":9.1},"breakdown":{"auto_points":20.5,"teleop_points":40.1,"endgame_points":11.8},
			       "ranks":{"total":{"rank":3},"country":{"rank":2}}},
			"record":{"wins":40,"losses":5,"ties":1,"winrate":0.88}}`))
	})

	stats, err := client.FetchTeamYear(context.Background(), 254, 2024)
	require.NoError(t, err)
	require.Equal(t, 254, stats.TeamNumber)
	require.InDelta(t, 72.4, stats.EPAMean, 0.001)
	require.InDelta(t, 11.8, stats.EndgamePoints, 0.001)
	require.Equal(t, 40, stats.Wins)
	require.Equal(t, 3, stats.TotalRank)
	require.Empty(t, stats.District)
}

func TestClient_FetchTeamYearNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Team Year not found"}`))
	})

	_, err := client.FetchTeamYear(context.Background(), 99999, 2024)
	require.Error(t, err)
	require.True(t, upstream.IsNotFound(err))
	require.False(t, upstream.IsTransient(err))
}

func TestClient_FetchTeamYearServerErrorIsTransient(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchTeamYear(context.Background(), 254, 2024)
	require.Error(t, err)
	require.True(t, upstream.IsTransient(err))
}

func TestClient_FetchTeamYearHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request should not be sent")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.FetchTeamYear(ctx, 254, 2024)
	require.ErrorIs(t, err, context.Canceled)
}
