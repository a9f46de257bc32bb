package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/frc-scores/internal/domain/event"
	"github.com/riskibarqy/frc-scores/internal/domain/highscore"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/riskibarqy/frc-scores/internal/platform/fanout"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
)

type hybridScheduleReader interface {
	HybridSchedule(ctx context.Context, q match.Query) ([]match.Match, error)
}

// RecomputeObserver is told how every recompute run ended.
type RecomputeObserver interface {
	ObserveRecompute(succeeded bool, elapsed time.Duration)
}

type HighScoreServiceConfig struct {
	DemoRange  highscore.DemoRange
	MaxWorkers int
	Observer   RecomputeObserver
}

// HighScoreService recomputes and serves per-season leaderboards.
type HighScoreService struct {
	events    event.Source
	schedules hybridScheduleReader
	repo      highscore.Repository
	demo      highscore.DemoRange
	workers   int
	observer  RecomputeObserver
	logger    *logging.Logger
}

type RecomputeResult struct {
	Season        int                `json:"season"`
	EventsScanned int                `json:"eventsScanned"`
	FailedFetches int                `json:"failedFetches"`
	MatchesUsed   int                `json:"matchesUsed"`
	Records       []highscore.Record `json:"records"`
	DurationMs    int64              `json:"durationMs"`
}

type eventLevelKey struct {
	EventCode string
	Level     match.TournamentLevel
}

func NewHighScoreService(
	events event.Source,
	schedules hybridScheduleReader,
	repo highscore.Repository,
	cfg HighScoreServiceConfig,
	logger *logging.Logger,
) *HighScoreService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DemoRange == (highscore.DemoRange{}) {
		cfg.DemoRange = highscore.DefaultDemoRange()
	}
	return &HighScoreService{
		events:    events,
		schedules: schedules,
		repo:      repo,
		demo:      cfg.DemoRange,
		workers:   cfg.MaxWorkers,
		observer:  cfg.Observer,
		logger:    logger.Named("highscore_service"),
	}
}

// Recompute rebuilds every record of season from official events and
// replaces what is stored. A failed event fetch drops that event only.
func (s *HighScoreService) Recompute(ctx context.Context, season int) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HighScoreService.Recompute")
	defer span.End()

	if season <= 0 {
		return RecomputeResult{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	start := time.Now()
	result, err := s.recompute(ctx, season, start)
	if s.observer != nil {
		s.observer.ObserveRecompute(err == nil, time.Since(start))
	}
	return result, err
}

func (s *HighScoreService) recompute(ctx context.Context, season int, start time.Time) (RecomputeResult, error) {
	events, err := s.events.ListEvents(ctx, season)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("%w: list events season=%d: %v", ErrDependencyUnavailable, season, err)
	}

	districtByEvent := make(map[string]string, len(events))
	keys := make([]eventLevelKey, 0, 2*len(events))
	for _, e := range events {
		if !e.Official {
			continue
		}
		districtByEvent[e.Code] = e.DistrictCode
		keys = append(keys,
			eventLevelKey{EventCode: e.Code, Level: match.LevelQualification},
			eventLevelKey{EventCode: e.Code, Level: match.LevelPlayoff},
		)
	}

	outcomes, err := fanout.RunBatch(ctx, keys, s.workers, func(ctx context.Context, key eventLevelKey) fanout.Outcome[[]match.Match] {
		matches, fetchErr := s.schedules.HybridSchedule(ctx, match.Query{Season: season, EventCode: key.EventCode, Level: key.Level})
		if fetchErr != nil {
			if errors.Is(fetchErr, ErrNoData) {
				return fanout.Absent[[]match.Match]()
			}
			return fanout.Failed[[]match.Match](fetchErr)
		}
		return fanout.OK(matches)
	})
	if err != nil {
		return RecomputeResult{}, err
	}

	result := RecomputeResult{Season: season, EventsScanned: len(districtByEvent)}
	corpus := make([]highscore.EventMatch, 0)
	for _, key := range keys {
		outcome := outcomes[key]
		switch outcome.Status {
		case fanout.StatusOK:
			for _, m := range outcome.Value {
				corpus = append(corpus, highscore.EventMatch{
					EventCode:    key.EventCode,
					DistrictCode: districtByEvent[key.EventCode],
					Match:        m,
				})
			}
		case fanout.StatusFailed:
			result.FailedFetches++
			s.logger.WarnContext(ctx, "skip event in high score recompute", "season", season, "event", key.EventCode, "level", string(key.Level), "error", outcome.Err)
		}
	}

	eligible := highscore.Eligible(corpus, s.demo)
	result.MatchesUsed = len(eligible)
	result.Records = highscore.Classify(season, "", eligible)
	for _, district := range districtsOf(eligible) {
		scoped := highscore.ByDistrict(eligible, district)
		result.Records = append(result.Records, highscore.Classify(season, district, scoped)...)
	}

	if err := s.repo.Save(ctx, season, result.Records); err != nil {
		return RecomputeResult{}, fmt.Errorf("save high scores season=%d: %w", season, err)
	}

	result.DurationMs = time.Since(start).Milliseconds()
	s.logger.InfoContext(ctx, "high scores recomputed",
		"season", season,
		"events", result.EventsScanned,
		"failed_fetches", result.FailedFetches,
		"matches", result.MatchesUsed,
		"records", len(result.Records),
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

// List returns stored records of season, limited to scope when set. An
// empty scope returns the global records only.
func (s *HighScoreService) List(ctx context.Context, season int, scope string) ([]highscore.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HighScoreService.List")
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	records, exists, err := s.repo.List(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list high scores season=%d: %w", season, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: high scores season=%d", ErrNoData, season)
	}

	scope = strings.ToUpper(strings.TrimSpace(scope))
	out := make([]highscore.Record, 0, len(records))
	for _, record := range records {
		if strings.EqualFold(record.Scope, scope) {
			out = append(out, record)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: high scores season=%d scope=%s", ErrNoData, season, scope)
	}
	return out, nil
}

func districtsOf(corpus []highscore.EventMatch) []string {
	seen := make(map[string]struct{})
	for _, em := range corpus {
		if em.DistrictCode != "" {
			seen[em.DistrictCode] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
