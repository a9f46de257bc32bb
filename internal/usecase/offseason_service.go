package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/frc-scores/internal/domain/alliance"
	"github.com/riskibarqy/frc-scores/internal/domain/event"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/riskibarqy/frc-scores/internal/domain/ranking"
	"github.com/riskibarqy/frc-scores/internal/domain/team"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
)

// OffseasonService serves off-season events from the alternate provider in
// the canonical shapes.
type OffseasonService struct {
	provider AlternateProvider
	filter   event.TypeFilter
	logger   *logging.Logger
}

func NewOffseasonService(provider AlternateProvider, eventTypes []string, logger *logging.Logger) *OffseasonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &OffseasonService{
		provider: provider,
		filter:   event.NewTypeFilter(eventTypes),
		logger:   logger.Named("offseason_service"),
	}
}

func (s *OffseasonService) ListEvents(ctx context.Context, year int) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OffseasonService.ListEvents")
	defer span.End()

	if year <= 0 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	events, err := s.provider.FetchEvents(ctx, year)
	if err != nil {
		return nil, s.providerErr(ctx, err, "fetch events", "year", year)
	}

	filtered := s.filter.Filter(events)
	for i := range filtered {
		filtered[i].Official = false
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: no off-season events year=%d", ErrNoData, year)
	}
	return filtered, nil
}

// HybridSchedule returns one level of an off-season event. The season used
// for breakdown normalization comes from the event key prefix.
func (s *OffseasonService) HybridSchedule(ctx context.Context, eventKey string, level match.TournamentLevel) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OffseasonService.HybridSchedule")
	defer span.End()

	eventKey, season, err := parseEventKey(eventKey)
	if err != nil {
		return nil, err
	}

	items, err := s.provider.FetchEventMatches(ctx, eventKey)
	if err != nil {
		return nil, s.providerErr(ctx, err, "fetch event matches", "event", eventKey)
	}

	adapted := AdaptAltMatches(season, items)
	out := make([]match.Match, 0, len(adapted))
	for _, m := range adapted {
		if level == "" || m.Level == level {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no matches event=%s level=%s", ErrNoData, eventKey, level)
	}
	return out, nil
}

func (s *OffseasonService) ListTeams(ctx context.Context, eventKey string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OffseasonService.ListTeams")
	defer span.End()

	eventKey, _, err := parseEventKey(eventKey)
	if err != nil {
		return nil, err
	}

	teams, err := s.provider.FetchEventTeams(ctx, eventKey)
	if err != nil {
		return nil, s.providerErr(ctx, err, "fetch event teams", "event", eventKey)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: no teams event=%s", ErrNoData, eventKey)
	}
	return teams, nil
}

func (s *OffseasonService) ListRankings(ctx context.Context, eventKey string) ([]ranking.Ranking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OffseasonService.ListRankings")
	defer span.End()

	eventKey, _, err := parseEventKey(eventKey)
	if err != nil {
		return nil, err
	}

	items, err := s.provider.FetchEventRankings(ctx, eventKey)
	if err != nil {
		return nil, s.providerErr(ctx, err, "fetch event rankings", "event", eventKey)
	}

	rankings := AdaptAltRankings(items)
	if len(rankings) == 0 {
		return nil, fmt.Errorf("%w: no rankings event=%s", ErrNoData, eventKey)
	}
	if err := ranking.Validate(rankings); err != nil {
		return nil, fmt.Errorf("rankings event=%s: %w", eventKey, err)
	}
	return rankings, nil
}

func (s *OffseasonService) ListAlliances(ctx context.Context, eventKey string) ([]alliance.Selection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OffseasonService.ListAlliances")
	defer span.End()

	eventKey, _, err := parseEventKey(eventKey)
	if err != nil {
		return nil, err
	}

	items, err := s.provider.FetchEventAlliances(ctx, eventKey)
	if err != nil {
		return nil, s.providerErr(ctx, err, "fetch event alliances", "event", eventKey)
	}

	selections := AdaptAltAlliances(items)
	if len(selections) == 0 {
		return nil, fmt.Errorf("%w: no alliances event=%s", ErrNoData, eventKey)
	}
	return selections, nil
}

// providerErr maps a provider failure: not found is absence of data,
// everything else is an unavailable dependency.
func (s *OffseasonService) providerErr(ctx context.Context, err error, op string, args ...any) error {
	if upstream.IsNotFound(err) {
		return fmt.Errorf("%w: %s: %v", ErrNoData, op, err)
	}
	s.logger.WarnContext(ctx, op+" failed", append(args, "error", err)...)
	return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
}

// parseEventKey validates keys like "2024cc" and returns the season prefix.
func parseEventKey(raw string) (string, int, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if len(key) < 5 {
		return "", 0, fmt.Errorf("%w: event key %q is invalid", ErrInvalidInput, raw)
	}
	season, err := strconv.Atoi(key[:4])
	if err != nil || season < 1992 {
		return "", 0, fmt.Errorf("%w: event key %q must start with a season", ErrInvalidInput, raw)
	}
	return key, season, nil
}
