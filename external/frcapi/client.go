package frcapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/frc-scores/internal/domain/alliance"
	"github.com/riskibarqy/frc-scores/internal/domain/award"
	"github.com/riskibarqy/frc-scores/internal/domain/breakdown"
	"github.com/riskibarqy/frc-scores/internal/domain/event"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/riskibarqy/frc-scores/internal/domain/ranking"
	"github.com/riskibarqy/frc-scores/internal/domain/team"
	"github.com/riskibarqy/frc-scores/internal/platform/fanout"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/resilience"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
	"github.com/riskibarqy/frc-scores/internal/usecase"
)

const (
	apiName        = "frc-events"
	defaultBaseURL = "https://frc-api.firstinspires.org/v3.0"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Username       string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Cache          upstream.Cache
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Observer       upstream.CallObserver
}

// Client reads the FRC Events API. It serves schedules, results, rosters,
// rankings and awards for official events.
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

	credentials := base64.StdEncoding.EncodeToString([]byte(strings.TrimSpace(cfg.Username) + ":" + strings.TrimSpace(cfg.Token)))
	return &Client{
		api: upstream.NewClient(upstream.Config{
			API:            apiName,
			BaseURL:        baseURL,
			Headers:        map[string]string{"Authorization": "Basic " + credentials},
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

func (c *Client) FetchSchedule(ctx context.Context, q match.Query) ([]usecase.ExternalScheduleEntry, error) {
	path := fmt.Sprintf("/%d/schedule/%s", q.Season, url.PathEscape(q.EventCode))
	var payload scheduleEnvelope
	if err := c.api.Get(ctx, path, levelQuery(q.Level), &payload); err != nil {
		return nil, fmt.Errorf("fetch schedule season=%d event=%s: %w", q.Season, q.EventCode, err)
	}

	out := make([]usecase.ExternalScheduleEntry, 0, len(payload.Schedule))
	for _, item := range payload.Schedule {
		level, ok := match.ParseLevel(item.TournamentLevel)
		if !ok {
			level = q.Level
		}
		teams := make([]match.Participant, 0, len(item.Teams))
		for _, t := range item.Teams {
			teams = append(teams, match.Participant{
				TeamNumber: t.TeamNumber,
				Station:    match.Station(t.Station),
				Surrogate:  t.Surrogate,
			})
		}
		out = append(out, usecase.ExternalScheduleEntry{
			MatchNumber: item.MatchNumber,
			Description: item.Description,
			Level:       level,
			Field:       item.Field,
			StartTime:   parseProviderTime(item.StartTime),
			Teams:       teams,
		})
	}
	return out, nil
}

func (c *Client) FetchResults(ctx context.Context, q match.Query) ([]usecase.ExternalResult, error) {
	path := fmt.Sprintf("/%d/matches/%s", q.Season, url.PathEscape(q.EventCode))
	var payload matchesEnvelope
	if err := c.api.Get(ctx, path, levelQuery(q.Level), &payload); err != nil {
		return nil, fmt.Errorf("fetch matches season=%d event=%s: %w", q.Season, q.EventCode, err)
	}

	out := make([]usecase.ExternalResult, 0, len(payload.Matches))
	for _, item := range payload.Matches {
		teams := make([]match.Participant, 0, len(item.Teams))
		for _, t := range item.Teams {
			teams = append(teams, match.Participant{
				TeamNumber: t.TeamNumber,
				Station:    match.Station(t.Station),
				DQ:         t.DQ,
			})
		}
		result := usecase.ExternalResult{
			MatchNumber:    item.MatchNumber,
			ActualStart:    parseProviderTime(item.ActualStartTime),
			AutoStart:      parseProviderTime(item.AutoStartTime),
			PostResultTime: parseProviderTime(item.PostResultTime),
			ScoreRedFinal:  item.ScoreRedFinal,
			ScoreRedFoul:   item.ScoreRedFoul,
			ScoreRedAuto:   item.ScoreRedAuto,
			ScoreBlueFinal: item.ScoreBlueFinal,
			ScoreBlueFoul:  item.ScoreBlueFoul,
			ScoreBlueAuto:  item.ScoreBlueAuto,
			Teams:          teams,
			IsReplay:       item.IsReplay,
		}
		if item.MatchVideoLink != nil {
			result.VideoLink = strings.TrimSpace(*item.MatchVideoLink)
		}
		// A posted result without both finals is not a usable result yet.
		if result.PostResultTime != nil && (result.ScoreRedFinal == nil || result.ScoreBlueFinal == nil) {
			result.PostResultTime = nil
		}
		out = append(out, result)
	}
	return out, nil
}

// FetchScoreDetails returns the color-keyed breakdown per match number.
func (c *Client) FetchScoreDetails(ctx context.Context, q match.Query) (map[int]breakdown.Raw, error) {
	level := q.Level
	if level == "" {
		level = match.LevelQualification
	}
	path := fmt.Sprintf("/%d/scores/%s/%s", q.Season, url.PathEscape(q.EventCode), level)
	var payload scoresEnvelope
	if err := c.api.Get(ctx, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch scores season=%d event=%s: %w", q.Season, q.EventCode, err)
	}

	out := make(map[int]breakdown.Raw, len(payload.MatchScores))
	for _, item := range payload.MatchScores {
		number := breakdown.Int(item, "matchNumber")
		if number <= 0 {
			continue
		}
		list, _ := item["alliances"].([]any)
		alliances := make([]breakdown.Raw, 0, len(list))
		for _, entry := range list {
			if obj, ok := entry.(map[string]any); ok {
				alliances = append(alliances, obj)
			}
		}
		out[number] = breakdown.FromAllianceList(alliances)
	}
	return out, nil
}

func (c *Client) ListEvents(ctx context.Context, season int) ([]event.Event, error) {
	var payload eventsEnvelope
	if err := c.api.Get(ctx, fmt.Sprintf("/%d/events", season), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch events season=%d: %w", season, err)
	}

	out := make([]event.Event, 0, len(payload.Events))
	for _, item := range payload.Events {
		out = append(out, event.Event{
			Code:         strings.ToUpper(strings.TrimSpace(item.Code)),
			Name:         item.Name,
			Type:         item.Type,
			DistrictCode: strings.TrimSpace(item.DistrictCode),
			City:         item.City,
			Country:      item.Country,
			Start:        parseProviderTime(item.DateStart),
			End:          parseProviderTime(item.DateEnd),
			Official:     isOfficialType(item.Type),
		})
	}
	return out, nil
}

func (c *Client) ListDistricts(ctx context.Context, season int) ([]event.District, error) {
	var payload districtsEnvelope
	if err := c.api.Get(ctx, fmt.Sprintf("/%d/districts", season), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch districts season=%d: %w", season, err)
	}

	out := make([]event.District, 0, len(payload.Districts))
	for _, item := range payload.Districts {
		out = append(out, event.District{Code: item.Code, Name: item.Name})
	}
	return out, nil
}

func (c *Client) ListTeamsPage(ctx context.Context, q team.Query, page int) (fanout.Page[team.Team], error) {
	query := url.Values{}
	if q.EventCode != "" {
		query.Set("eventCode", q.EventCode)
	}
	if q.DistrictCode != "" {
		query.Set("districtCode", q.DistrictCode)
	}
	if q.TeamNumber > 0 {
		query.Set("teamNumber", strconv.Itoa(q.TeamNumber))
	}
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}

	var payload teamsEnvelope
	if err := c.api.Get(ctx, fmt.Sprintf("/%d/teams", q.Season), query, &payload); err != nil {
		return fanout.Page[team.Team]{}, fmt.Errorf("fetch teams season=%d page=%d: %w", q.Season, page, err)
	}

	items := make([]team.Team, 0, len(payload.Teams))
	for _, item := range payload.Teams {
		items = append(items, team.Team{
			Number:       item.TeamNumber,
			NameFull:     item.NameFull,
			NameShort:    item.NameShort,
			City:         item.City,
			StateProv:    item.StateProv,
			Country:      item.Country,
			RookieYear:   item.RookieYear,
			RobotName:    item.RobotName,
			School:       item.SchoolName,
			Website:      item.Website,
			DistrictCode: item.DistrictCode,
		})
	}
	return fanout.Page[team.Team]{
		Items:          items,
		PageCurrent:    payload.PageCurrent,
		PageTotal:      payload.PageTotal,
		ItemCountPage:  payload.TeamCountPage,
		ItemCountTotal: payload.TeamCountTotal,
	}, nil
}

// GetAvatar returns an empty Encoded value when the team has no avatar.
func (c *Client) GetAvatar(ctx context.Context, season, teamNumber int) (team.Avatar, error) {
	query := url.Values{"teamNumber": {strconv.Itoa(teamNumber)}}
	var payload avatarsEnvelope
	if err := c.api.Get(ctx, fmt.Sprintf("/%d/avatars", season), query, &payload); err != nil {
		return team.Avatar{}, fmt.Errorf("fetch avatar season=%d team=%d: %w", season, teamNumber, err)
	}

	for _, item := range payload.Teams {
		if item.TeamNumber == teamNumber && item.EncodedAvatar != nil {
			return team.Avatar{TeamNumber: teamNumber, Encoded: *item.EncodedAvatar}, nil
		}
	}
	return team.Avatar{TeamNumber: teamNumber}, nil
}

func (c *Client) ListTeamAwards(ctx context.Context, season, teamNumber int) ([]award.Award, error) {
	var payload awardsEnvelope
	if err := c.api.Get(ctx, fmt.Sprintf("/%d/awards/team/%d", season, teamNumber), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch awards season=%d team=%d: %w", season, teamNumber, err)
	}

	out := make([]award.Award, 0, len(payload.Awards))
	for _, item := range payload.Awards {
		a := award.Award{
			AwardID:    item.AwardID,
			TeamNumber: item.TeamNumber,
			EventCode:  item.EventCode,
			Name:       item.Name,
			Series:     item.Series,
		}
		if item.Person != nil {
			a.Person = *item.Person
		}
		out = append(out, a)
	}
	return out, nil
}

func (c *Client) ListRankings(ctx context.Context, season int, eventCode string) ([]ranking.Ranking, error) {
	var payload rankingsEnvelope
	if err := c.api.Get(ctx, fmt.Sprintf("/%d/rankings/%s", season, url.PathEscape(eventCode)), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch rankings season=%d event=%s: %w", season, eventCode, err)
	}

	out := make([]ranking.Ranking, 0, len(payload.Rankings))
	for _, item := range payload.Rankings {
		out = append(out, ranking.Ranking{
			TeamNumber: item.TeamNumber,
			Rank:       item.Rank,
			SortOrders: ranking.PadSortOrders([]float64{
				item.SortOrder1, item.SortOrder2, item.SortOrder3,
				item.SortOrder4, item.SortOrder5, item.SortOrder6,
			}),
			Wins:          item.Wins,
			Losses:        item.Losses,
			Ties:          item.Ties,
			QualAverage:   item.QualAverage,
			DQ:            item.DQ,
			MatchesPlayed: item.MatchesPlayed,
		})
	}
	return out, nil
}

func (c *Client) ListAlliances(ctx context.Context, season int, eventCode string) ([]alliance.Selection, error) {
	var payload alliancesEnvelope
	if err := c.api.Get(ctx, fmt.Sprintf("/%d/alliances/%s", season, url.PathEscape(eventCode)), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch alliances season=%d event=%s: %w", season, eventCode, err)
	}

	out := make([]alliance.Selection, 0, len(payload.Alliances))
	for _, item := range payload.Alliances {
		out = append(out, alliance.Selection{
			Number:  item.Number,
			Name:    item.Name,
			Captain: item.Captain,
			Round1:  item.Round1,
			Round2:  positive(item.Round2),
			Round3:  positive(item.Round3),
			Backup:  positive(item.Backup),
		})
	}
	return out, nil
}

func levelQuery(level match.TournamentLevel) url.Values {
	if level == "" {
		level = match.LevelQualification
	}
	return url.Values{"tournamentLevel": {string(level)}}
}

func isOfficialType(eventType string) bool {
	normalized := strings.ToLower(strings.TrimSpace(eventType))
	return normalized != "" && !strings.HasPrefix(normalized, "offseason")
}

func positive(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}
