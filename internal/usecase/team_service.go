package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/frc-scores/internal/domain/award"
	"github.com/riskibarqy/frc-scores/internal/domain/team"
	"github.com/riskibarqy/frc-scores/internal/platform/fanout"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
)

const maxBatchTeams = 200

// TeamListing is a merged roster. FailedPages is non-empty when the merge
// is an undercount.
type TeamListing struct {
	Teams       fanout.Page[team.Team] `json:"teams"`
	FailedPages []int                  `json:"failedPages,omitempty"`
}

type TeamService struct {
	teams   team.Source
	awards  award.Source
	workers int
	logger  *logging.Logger
}

func NewTeamService(teams team.Source, awards award.Source, maxWorkers int, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teams:   teams,
		awards:  awards,
		workers: maxWorkers,
		logger:  logger.Named("team_service"),
	}
}

func (s *TeamService) ListTeams(ctx context.Context, q team.Query) (TeamListing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	q.EventCode = strings.ToUpper(strings.TrimSpace(q.EventCode))
	q.DistrictCode = strings.ToUpper(strings.TrimSpace(q.DistrictCode))
	if q.Season <= 0 {
		return TeamListing{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	page, err := fanout.Depaginate(ctx, func(ctx context.Context, page int) (fanout.Page[team.Team], error) {
		return s.teams.ListTeamsPage(ctx, q, page)
	}, s.workers)

	var partial *fanout.PartialError
	switch {
	case errors.As(err, &partial):
		s.logger.WarnContext(ctx, "team listing is partial",
			"season", q.Season,
			"event", q.EventCode,
			"district", q.DistrictCode,
			"failed_pages", partial.FailedPages,
			"error", err,
		)
	case err != nil:
		if upstream.IsNotFound(err) {
			return TeamListing{}, fmt.Errorf("%w: teams season=%d: %v", ErrNoData, q.Season, err)
		}
		return TeamListing{}, fmt.Errorf("%w: list teams season=%d: %v", ErrDependencyUnavailable, q.Season, err)
	}

	if len(page.Items) == 0 {
		return TeamListing{}, fmt.Errorf("%w: no teams season=%d", ErrNoData, q.Season)
	}

	listing := TeamListing{Teams: page}
	if partial != nil {
		listing.FailedPages = partial.FailedPages
	}
	return listing, nil
}

// BatchAwards looks up awards for every team independently; one failing
// team never fails the batch.
func (s *TeamService) BatchAwards(ctx context.Context, season int, teamNumbers []int) (map[int]fanout.Outcome[[]award.Award], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.BatchAwards")
	defer span.End()

	numbers, err := validateBatch(season, teamNumbers)
	if err != nil {
		return nil, err
	}

	return fanout.RunBatch(ctx, numbers, s.workers, func(ctx context.Context, number int) fanout.Outcome[[]award.Award] {
		awards, fetchErr := s.awards.ListTeamAwards(ctx, season, number)
		switch {
		case fetchErr == nil && len(awards) == 0:
			return fanout.Absent[[]award.Award]()
		case fetchErr == nil:
			return fanout.OK(awards)
		case upstream.IsNotFound(fetchErr):
			return fanout.Absent[[]award.Award]()
		default:
			s.logger.WarnContext(ctx, "fetch team awards failed", "season", season, "team", number, "error", fetchErr)
			return fanout.Failed[[]award.Award](fetchErr)
		}
	})
}

func (s *TeamService) BatchAvatars(ctx context.Context, season int, teamNumbers []int) (map[int]fanout.Outcome[team.Avatar], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.BatchAvatars")
	defer span.End()

	numbers, err := validateBatch(season, teamNumbers)
	if err != nil {
		return nil, err
	}

	return fanout.RunBatch(ctx, numbers, s.workers, func(ctx context.Context, number int) fanout.Outcome[team.Avatar] {
		avatar, fetchErr := s.teams.GetAvatar(ctx, season, number)
		switch {
		case fetchErr == nil && avatar.Encoded == "":
			return fanout.Absent[team.Avatar]()
		case fetchErr == nil:
			return fanout.OK(avatar)
		case upstream.IsNotFound(fetchErr):
			return fanout.Absent[team.Avatar]()
		default:
			s.logger.WarnContext(ctx, "fetch team avatar failed", "season", season, "team", number, "error", fetchErr)
			return fanout.Failed[team.Avatar](fetchErr)
		}
	})
}

func validateBatch(season int, teamNumbers []int) ([]int, error) {
	if season <= 0 {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if len(teamNumbers) == 0 {
		return nil, fmt.Errorf("%w: team numbers are required", ErrInvalidInput)
	}
	if len(teamNumbers) > maxBatchTeams {
		return nil, fmt.Errorf("%w: at most %d teams per batch", ErrInvalidInput, maxBatchTeams)
	}

	seen := make(map[int]struct{}, len(teamNumbers))
	out := make([]int, 0, len(teamNumbers))
	for _, number := range teamNumbers {
		if number <= 0 {
			return nil, fmt.Errorf("%w: team number %d is invalid", ErrInvalidInput, number)
		}
		if _, ok := seen[number]; ok {
			continue
		}
		seen[number] = struct{}{}
		out = append(out, number)
	}
	return out, nil
}
