package tba

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/frc-scores/internal/domain/event"
	"github.com/riskibarqy/frc-scores/internal/domain/team"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/resilience"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
	"github.com/riskibarqy/frc-scores/internal/usecase"
)

const (
	apiName        = "tba"
	defaultBaseURL = "https://www.thebluealliance.com/api/v3"
	dateLayout     = "2006-01-02"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	AuthKey        string
	Timeout        time.Duration
	MaxRetries     int
	Cache          upstream.Cache
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Observer       upstream.CallObserver
}

// Client reads The Blue Alliance, used for off-season events the season
// provider does not carry.
type Client struct {
	api    *upstream.Client
	logger *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		api: upstream.NewClient(upstream.Config{
			API:            apiName,
			BaseURL:        baseURL,
			Headers:        map[string]string{"X-TBA-Auth-Key": strings.TrimSpace(cfg.AuthKey)},
			HTTPClient:     cfg.HTTPClient,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Cache:          cfg.Cache,
			CacheTTL:       cfg.CacheTTL,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
			Observer:       cfg.Observer,
		}),
		logger: logger,
	}
}

func (c *Client) FetchEvents(ctx context.Context, year int) ([]event.Event, error) {
	var payload []eventItem
	if err := c.api.Get(ctx, fmt.Sprintf("/events/%d", year), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch events year=%d: %w", year, err)
	}

	out := make([]event.Event, 0, len(payload))
	for _, item := range payload {
		ev := event.Event{
			Code:    item.Key,
			Name:    item.Name,
			Type:    item.EventTypeString,
			City:    item.City,
			Country: item.Country,
			Start:   parseDate(item.StartDate),
			End:     parseDate(item.EndDate),
		}
		if item.District != nil {
			ev.DistrictCode = strings.ToUpper(item.District.Abbreviation)
		}
		out = append(out, ev)
	}
	return out, nil
}

func (c *Client) FetchEventMatches(ctx context.Context, eventKey string) ([]usecase.ExternalAltMatch, error) {
	var payload []matchItem
	if err := c.api.Get(ctx, eventPath(eventKey, "matches"), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch matches event=%s: %w", eventKey, err)
	}

	out := make([]usecase.ExternalAltMatch, 0, len(payload))
	for _, item := range payload {
		alliances := make(map[string]usecase.ExternalAltAllianceSlot, len(item.Alliances))
		for color, slot := range item.Alliances {
			alliances[strings.ToLower(color)] = usecase.ExternalAltAllianceSlot{
				Score:             slot.Score,
				TeamKeys:          slot.TeamKeys,
				SurrogateTeamKeys: slot.SurrogateTeamKeys,
				DQTeamKeys:        slot.DQTeamKeys,
			}
		}

		var videos []string
		for _, video := range item.Videos {
			if video.Type == "youtube" && video.Key != "" {
				videos = append(videos, video.Key)
			}
		}

		out = append(out, usecase.ExternalAltMatch{
			Key:            item.Key,
			CompLevel:      item.CompLevel,
			SetNumber:      item.SetNumber,
			MatchNumber:    item.MatchNumber,
			Alliances:      alliances,
			Time:           item.Time,
			ActualTime:     item.ActualTime,
			PredictedTime:  item.PredictedTime,
			PostResultTime: item.PostResultTime,
			ScoreBreakdown: item.ScoreBreakdown,
			VideoKeys:      videos,
		})
	}
	return out, nil
}

func (c *Client) FetchEventTeams(ctx context.Context, eventKey string) ([]team.Team, error) {
	var payload []teamItem
	if err := c.api.Get(ctx, eventPath(eventKey, "teams"), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch teams event=%s: %w", eventKey, err)
	}

	out := make([]team.Team, 0, len(payload))
	for _, item := range payload {
		out = append(out, team.Team{
			Number:     item.TeamNumber,
			NameFull:   item.Name,
			NameShort:  item.Nickname,
			City:       item.City,
			StateProv:  item.StateProv,
			Country:    item.Country,
			RookieYear: item.RookieYear,
			School:     item.SchoolName,
			Website:    item.Website,
		})
	}
	return out, nil
}

func (c *Client) FetchEventRankings(ctx context.Context, eventKey string) ([]usecase.ExternalAltRanking, error) {
	var payload rankingsEnvelope
	if err := c.api.Get(ctx, eventPath(eventKey, "rankings"), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch rankings event=%s: %w", eventKey, err)
	}

	out := make([]usecase.ExternalAltRanking, 0, len(payload.Rankings))
	for _, item := range payload.Rankings {
		r := usecase.ExternalAltRanking{
			TeamKey:       item.TeamKey,
			Rank:          item.Rank,
			SortOrders:    item.SortOrders,
			DQ:            item.DQ,
			MatchesPlayed: item.MatchesPlayed,
		}
		if item.Record != nil {
			r.Wins = item.Record.Wins
			r.Losses = item.Record.Losses
			r.Ties = item.Record.Ties
		}
		if item.QualAverage != nil {
			r.QualAverage = *item.QualAverage
		}
		out = append(out, r)
	}
	return out, nil
}

func (c *Client) FetchEventAlliances(ctx context.Context, eventKey string) ([]usecase.ExternalAltAlliance, error) {
	var payload []allianceItem
	if err := c.api.Get(ctx, eventPath(eventKey, "alliances"), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch alliances event=%s: %w", eventKey, err)
	}

	out := make([]usecase.ExternalAltAlliance, 0, len(payload))
	for _, item := range payload {
		a := usecase.ExternalAltAlliance{Name: item.Name, Picks: item.Picks}
		if item.Backup != nil {
			a.Backup = item.Backup.In
		}
		out = append(out, a)
	}
	return out, nil
}

func eventPath(eventKey, resource string) string {
	return "/event/" + url.PathEscape(strings.ToLower(strings.TrimSpace(eventKey))) + "/" + resource
}

func parseDate(raw string) *time.Time {
	parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return nil
	}
	return &parsed
}
