package tba

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
		BaseURL:    server.URL,
		AuthKey:    "secret",
		Logger:     logging.NewNop(),
	})
}

func TestClient_FetchEventsMapsDistrictAndType(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-TBA-Auth-Key"))
		assert.Equal(t, "/events/2024", r.URL.Path)
		_, _ = w.Write([]byte(`[{"key":"2024cc","name":"Chezy Champs","event_type_string":"Offseason","start_date":"2024-09-27","district":null},{"key":"2024miket","event_type_string":"District","district":{"abbreviation":"fim"}}]`))
	})

	events, err := client.FetchEvents(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "2024cc", events[0].Code)
	require.Equal(t, "Offseason", events[0].Type)
	require.NotNil(t, events[0].Start)
	require.Equal(t, time.Date(2024, 9, 27, 0, 0, 0, 0, time.UTC), *events[0].Start)
	require.Equal(t, "FIM", events[1].DistrictCode)
}

func TestClient_FetchEventMatchesKeepsYoutubeVideos(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/event/2024cc/matches", r.URL.Path)
		_, _ = w.Write([]byte(`[{"key":"2024cc_sf1m1","comp_level":"sf","set_number":1,"match_number":1,
			"alliances":{"red":{"score":120,"team_keys":["frc254","frc1678","frc604"],"surrogate_team_keys":[],"dq_team_keys":["frc604"]},
			             "blue":{"score":-1,"team_keys":["frc971","frc973","frc649"]}},
			"time":1727452800,"post_result_time":null,
			"score_breakdown":{"red":{"totalPoints":120}},
			"videos":[{"type":"youtube","key":"abc123"},{"type":"tba","key":"ignored"}]}]`))
	})

	matches, err := client.FetchEventMatches(context.Background(), "2024CC")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	got := matches[0]
	require.Equal(t, "sf", got.CompLevel)
	require.Equal(t, []string{"abc123"}, got.VideoKeys)
	require.Equal(t, []string{"frc604"}, got.Alliances["red"].DQTeamKeys)
	require.NotNil(t, got.Alliances["blue"].Score)
	require.Equal(t, -1, *got.Alliances["blue"].Score)
	require.Nil(t, got.PostResultTime)
	require.NotNil(t, got.ScoreBreakdown["red"])
}

func TestClient_FetchEventRankingsFlattensRecord(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rankings":[{"team_key":"frc254","rank":1,"sort_orders":[2.5,140],"record":{"wins":7,"losses":1,"ties":0},"qual_average":null,"dq":0,"matches_played":8}]}`))
	})

	rankings, err := client.FetchEventRankings(context.Background(), "2024cc")
	require.NoError(t, err)
	require.Len(t, rankings, 1)
	require.Equal(t, 7, rankings[0].Wins)
	require.Equal(t, []float64{2.5, 140}, rankings[0].SortOrders)
	require.Zero(t, rankings[0].QualAverage)
}

func TestClient_FetchEventAlliancesUsesBackupIn(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Alliance 1","picks":["frc254","frc1678"],"backup":{"in":"frc8","out":"frc1678"}},{"picks":["frc971","frc973"],"backup":null}]`))
	})

	alliances, err := client.FetchEventAlliances(context.Background(), "2024cc")
	require.NoError(t, err)
	require.Len(t, alliances, 2)
	require.Equal(t, "frc8", alliances[0].Backup)
	require.Empty(t, alliances[1].Backup)
}
