package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/frc-scores/internal/domain/alliance"
	"github.com/riskibarqy/frc-scores/internal/domain/event"
	"github.com/riskibarqy/frc-scores/internal/domain/ranking"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
)

// EventService serves season calendar, rankings and alliance selections
// from the season provider.
type EventService struct {
	events    event.Source
	rankings  ranking.Source
	alliances alliance.Source
	logger    *logging.Logger
}

func NewEventService(events event.Source, rankings ranking.Source, alliances alliance.Source, logger *logging.Logger) *EventService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{
		events:    events,
		rankings:  rankings,
		alliances: alliances,
		logger:    logger.Named("event_service"),
	}
}

func (s *EventService) ListEvents(ctx context.Context, season int) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListEvents")
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	events, err := s.events.ListEvents(ctx, season)
	if err != nil {
		return nil, s.providerErr(ctx, err, "list events", "season", season)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no events season=%d", ErrNoData, season)
	}
	return events, nil
}

func (s *EventService) ListDistricts(ctx context.Context, season int) ([]event.District, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListDistricts")
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	districts, err := s.events.ListDistricts(ctx, season)
	if err != nil {
		return nil, s.providerErr(ctx, err, "list districts", "season", season)
	}
	if len(districts) == 0 {
		return nil, fmt.Errorf("%w: no districts season=%d", ErrNoData, season)
	}
	return districts, nil
}

// ListRankings rejects a snapshot where two teams share a rank.
func (s *EventService) ListRankings(ctx context.Context, season int, eventCode string) ([]ranking.Ranking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListRankings")
	defer span.End()

	eventCode, err := normalizeEventCode(season, eventCode)
	if err != nil {
		return nil, err
	}
	rankings, err := s.rankings.ListRankings(ctx, season, eventCode)
	if err != nil {
		return nil, s.providerErr(ctx, err, "list rankings", "season", season, "event", eventCode)
	}
	if len(rankings) == 0 {
		return nil, fmt.Errorf("%w: no rankings season=%d event=%s", ErrNoData, season, eventCode)
	}
	if err := ranking.Validate(rankings); err != nil {
		return nil, fmt.Errorf("rankings season=%d event=%s: %w", season, eventCode, err)
	}
	return rankings, nil
}

func (s *EventService) ListAlliances(ctx context.Context, season int, eventCode string) ([]alliance.Selection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListAlliances")
	defer span.End()

	eventCode, err := normalizeEventCode(season, eventCode)
	if err != nil {
		return nil, err
	}
	selections, err := s.alliances.ListAlliances(ctx, season, eventCode)
	if err != nil {
		return nil, s.providerErr(ctx, err, "list alliances", "season", season, "event", eventCode)
	}

	out := make([]alliance.Selection, 0, len(selections))
	for _, sel := range selections {
		if err := sel.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip incomplete alliance", "season", season, "event", eventCode, "error", err)
			continue
		}
		out = append(out, sel)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no alliances season=%d event=%s", ErrNoData, season, eventCode)
	}
	return out, nil
}

func (s *EventService) providerErr(ctx context.Context, err error, op string, args ...any) error {
	if upstream.IsNotFound(err) {
		return fmt.Errorf("%w: %s: %v", ErrNoData, op, err)
	}
	s.logger.WarnContext(ctx, op+" failed", append(args, "error", err)...)
	return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
}

func normalizeEventCode(season int, eventCode string) (string, error) {
	eventCode = strings.ToUpper(strings.TrimSpace(eventCode))
	if season <= 0 {
		return "", fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if eventCode == "" {
		return "", fmt.Errorf("%w: event code is required", ErrInvalidInput)
	}
	return eventCode, nil
}
