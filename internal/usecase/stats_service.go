package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
)

type StatsService struct {
	provider StatsProvider
	logger   *logging.Logger
}

func NewStatsService(provider StatsProvider, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{provider: provider, logger: logger.Named("stats_service")}
}

func (s *StatsService) TeamYear(ctx context.Context, teamNumber, year int) (TeamYearStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamYear")
	defer span.End()

	if teamNumber <= 0 {
		return TeamYearStats{}, fmt.Errorf("%w: team number is required", ErrInvalidInput)
	}
	if year <= 0 {
		return TeamYearStats{}, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	stats, err := s.provider.FetchTeamYear(ctx, teamNumber, year)
	if err != nil {
		if upstream.IsNotFound(err) {
			return TeamYearStats{}, fmt.Errorf("%w: stats team=%d year=%d", ErrNoData, teamNumber, year)
		}
		s.logger.WarnContext(ctx, "fetch team year stats failed", "team", teamNumber, "year", year, "error", err)
		return TeamYearStats{}, fmt.Errorf("%w: stats team=%d year=%d: %v", ErrDependencyUnavailable, teamNumber, year, err)
	}
	return stats, nil
}
