package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/frc-scores/internal/domain/breakdown"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
)

// BuildHybridSchedule merges schedule and results by match number. The
// schedule is the base; a result, when one exists, overlays scores, timing,
// video, replay and per-station DQ flags. Inputs are not modified and the
// output is ordered by match number.
func BuildHybridSchedule(schedule []ExternalScheduleEntry, results []ExternalResult) []match.Match {
	resultByNumber := make(map[int]ExternalResult, len(results))
	for _, result := range results {
		resultByNumber[result.MatchNumber] = result
	}

	seen := make(map[int]struct{}, len(schedule))
	out := make([]match.Match, 0, len(schedule))
	for _, entry := range schedule {
		if _, dup := seen[entry.MatchNumber]; dup {
			continue
		}
		seen[entry.MatchNumber] = struct{}{}

		item := match.Match{
			Number:         entry.MatchNumber,
			Description:    entry.Description,
			Level:          entry.Level,
			Field:          entry.Field,
			ScheduledStart: entry.StartTime,
			Teams:          append([]match.Participant(nil), entry.Teams...),
		}

		if result, ok := resultByNumber[entry.MatchNumber]; ok {
			overlayResult(&item, result)
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func overlayResult(item *match.Match, result ExternalResult) {
	item.ActualStart = result.ActualStart
	item.AutoStart = result.AutoStart
	item.PostResultTime = result.PostResultTime
	item.ScoreRedFinal = result.ScoreRedFinal
	item.ScoreRedFoul = result.ScoreRedFoul
	item.ScoreRedAuto = result.ScoreRedAuto
	item.ScoreBlueFinal = result.ScoreBlueFinal
	item.ScoreBlueFoul = result.ScoreBlueFoul
	item.ScoreBlueAuto = result.ScoreBlueAuto
	item.VideoLink = result.VideoLink
	item.IsReplay = result.IsReplay

	dqByStation := make(map[match.Station]bool, len(result.Teams))
	for _, p := range result.Teams {
		dqByStation[p.Station] = p.DQ
	}
	for i := range item.Teams {
		if dq, ok := dqByStation[item.Teams[i].Station]; ok {
			item.Teams[i].DQ = dq
		}
	}
}

// ScheduleService serves hybrid schedules from the season provider.
type ScheduleService struct {
	provider ScheduleProvider
	logger   *logging.Logger
}

func NewScheduleService(provider ScheduleProvider, logger *logging.Logger) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleService{
		provider: provider,
		logger:   logger.Named("schedule_service"),
	}
}

// HybridSchedule returns ErrNoData only when the schedule itself cannot be
// fetched. Missing results or score details degrade to schedule-only data.
func (s *ScheduleService) HybridSchedule(ctx context.Context, q match.Query) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.HybridSchedule")
	defer span.End()

	q.EventCode = strings.ToUpper(strings.TrimSpace(q.EventCode))
	if q.Season <= 0 {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if q.EventCode == "" {
		return nil, fmt.Errorf("%w: event code is required", ErrInvalidInput)
	}
	if q.Level == "" {
		q.Level = match.LevelQualification
	}

	schedule, err := s.provider.FetchSchedule(ctx, q)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch schedule failed", "season", q.Season, "event", q.EventCode, "level", string(q.Level), "error", err)
		return nil, fmt.Errorf("%w: schedule season=%d event=%s level=%s: %v", ErrNoData, q.Season, q.EventCode, q.Level, err)
	}
	if len(schedule) == 0 {
		return nil, fmt.Errorf("%w: empty schedule season=%d event=%s level=%s", ErrNoData, q.Season, q.EventCode, q.Level)
	}

	results, err := s.provider.FetchResults(ctx, q)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch results failed, serving schedule only", "season", q.Season, "event", q.EventCode, "level", string(q.Level), "error", err)
		results = nil
	}

	matches := BuildHybridSchedule(schedule, results)
	if len(results) == 0 {
		return matches, nil
	}

	details, err := s.provider.FetchScoreDetails(ctx, q)
	if err != nil {
		if !upstream.IsNotFound(err) {
			s.logger.WarnContext(ctx, "fetch score details failed", "season", q.Season, "event", q.EventCode, "level", string(q.Level), "error", err)
		}
		return matches, nil
	}
	attachBreakdowns(q.Season, matches, details)

	return matches, nil
}

func attachBreakdowns(season int, matches []match.Match, details map[int]breakdown.Raw) {
	for i := range matches {
		if !matches[i].Played() {
			continue
		}
		raw, ok := details[matches[i].Number]
		if !ok {
			continue
		}
		score := breakdown.Normalize(season, raw)
		score.MatchNumber = matches[i].Number
		score.Level = matches[i].Level
		matches[i].Breakdown = &score
	}
}
