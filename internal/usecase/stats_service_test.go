package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/platform/upstream"
)

type stubStatsProvider struct {
	stats TeamYearStats
	err   error
}

func (s stubStatsProvider) FetchTeamYear(context.Context, int, int) (TeamYearStats, error) {
	return s.stats, s.err
}

func TestStatsService_TeamYear(t *testing.T) {
	t.Parallel()

	service := NewStatsService(stubStatsProvider{stats: TeamYearStats{TeamNumber: 254, Year: 2024, EPAMean: 61.2}}, logging.NewNop())
	got, err := service.TeamYear(context.Background(), 254, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EPAMean != 61.2 {
		t.Fatalf("unexpected stats %+v", got)
	}

	missing := NewStatsService(stubStatsProvider{err: &upstream.ProviderError{API: "statbotics", StatusCode: 404}}, logging.NewNop())
	if _, err := missing.TeamYear(context.Background(), 9999, 2024); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}

	if _, err := service.TeamYear(context.Background(), 0, 2024); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
