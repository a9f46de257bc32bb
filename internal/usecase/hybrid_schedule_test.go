package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/frc-scores/internal/domain/breakdown"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
)

type stubScheduleProvider struct {
	schedule    []ExternalScheduleEntry
	scheduleErr error
	results     []ExternalResult
	resultsErr  error
	details     map[int]breakdown.Raw
	detailsErr  error
	calls       []match.Query
}

func (s *stubScheduleProvider) FetchSchedule(_ context.Context, q match.Query) ([]ExternalScheduleEntry, error) {
	s.calls = append(s.calls, q)
	return s.schedule, s.scheduleErr
}

func (s *stubScheduleProvider) FetchResults(context.Context, match.Query) ([]ExternalResult, error) {
	return s.results, s.resultsErr
}

func (s *stubScheduleProvider) FetchScoreDetails(context.Context, match.Query) (map[int]breakdown.Raw, error) {
	return s.details, s.detailsErr
}

func fixedTime(minute int) *time.Time {
	t := time.Date(2024, 3, 8, 9, minute, 0, 0, time.UTC)
	return &t
}

func lineup(teams ...int) []match.Participant {
	out := make([]match.Participant, 0, len(teams))
	for i, team := range teams {
		color := match.Red
		if i >= 3 {
			color = match.Blue
		}
		out = append(out, match.Participant{TeamNumber: team, Station: match.NewStation(color, i%3+1)})
	}
	return out
}

func sampleSchedule() []ExternalScheduleEntry {
	return []ExternalScheduleEntry{
		{MatchNumber: 2, Description: "Qualification 2", Level: match.LevelQualification, StartTime: fixedTime(7), Teams: lineup(971, 973, 1678, 254, 604, 649)},
		{MatchNumber: 1, Description: "Qualification 1", Level: match.LevelQualification, StartTime: fixedTime(0), Teams: lineup(100, 115, 199, 841, 846, 852)},
	}
}

func sampleResults() []ExternalResult {
	dqTeams := lineup(100, 115, 199, 841, 846, 852)
	dqTeams[4].DQ = true
	return []ExternalResult{
		{
			MatchNumber:    1,
			ActualStart:    fixedTime(1),
			PostResultTime: fixedTime(4),
			ScoreRedFinal:  intPtr(64),
			ScoreRedFoul:   intPtr(5),
			ScoreBlueFinal: intPtr(58),
			ScoreBlueFoul:  intPtr(0),
			Teams:          dqTeams,
			VideoLink:      "https://example.org/q1",
		},
	}
}

func TestBuildHybridSchedule_OverlaysResultsAndDQ(t *testing.T) {
	t.Parallel()

	got := BuildHybridSchedule(sampleSchedule(), sampleResults())
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Number != 1 || got[1].Number != 2 {
		t.Fatalf("expected ordering by match number, got %d,%d", got[0].Number, got[1].Number)
	}

	first := got[0]
	if !first.Played() || !first.Scored() {
		t.Fatalf("expected match 1 to be played and scored")
	}
	if *first.ScoreRedFinal != 64 || *first.ScoreBlueFinal != 58 {
		t.Fatalf("unexpected scores %+v", first)
	}
	if first.VideoLink != "https://example.org/q1" {
		t.Fatalf("unexpected video link %q", first.VideoLink)
	}
	if !first.Teams[4].DQ || first.Teams[4].TeamNumber != 846 {
		t.Fatalf("expected team 846 at Blue2 to be disqualified, got %+v", first.Teams[4])
	}
	for i, p := range first.Teams {
		if i != 4 && p.DQ {
			t.Fatalf("unexpected DQ on %+v", p)
		}
	}

	second := got[1]
	if second.Played() || second.ScoreRedFinal != nil || second.ScoreBlueFinal != nil {
		t.Fatalf("expected unplayed match 2 to have no scores, got %+v", second)
	}
}

func TestBuildHybridSchedule_IsIdempotent(t *testing.T) {
	t.Parallel()

	schedule := sampleSchedule()
	results := sampleResults()

	first := BuildHybridSchedule(schedule, results)
	second := BuildHybridSchedule(schedule, results)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output across runs")
	}
	if schedule[1].Teams[4].DQ {
		t.Fatalf("input schedule must not be mutated")
	}
}

func TestScheduleService_ResultsFailureServesScheduleOnly(t *testing.T) {
	t.Parallel()

	provider := &stubScheduleProvider{schedule: sampleSchedule(), resultsErr: errors.New("status 500")}
	service := NewScheduleService(provider, logging.NewNop())

	got, err := service.HybridSchedule(context.Background(), match.Query{Season: 2024, EventCode: " cafr ", Level: match.LevelQualification})
	if err != nil {
		t.Fatalf("expected schedule-only result, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, m := range got {
		if m.ScoreRedFinal != nil || m.Played() {
			t.Fatalf("expected null scores, got %+v", m)
		}
	}
	if provider.calls[0].EventCode != "CAFR" {
		t.Fatalf("expected normalized event code, got %q", provider.calls[0].EventCode)
	}
}

func TestScheduleService_ScheduleFailureIsNoData(t *testing.T) {
	t.Parallel()

	provider := &stubScheduleProvider{scheduleErr: errors.New("timeout")}
	service := NewScheduleService(provider, logging.NewNop())

	got, err := service.HybridSchedule(context.Background(), match.Query{Season: 2024, EventCode: "CAFR"})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil matches, got %+v", got)
	}
}

func TestScheduleService_AttachesNormalizedBreakdown(t *testing.T) {
	t.Parallel()

	provider := &stubScheduleProvider{
		schedule: sampleSchedule(),
		results:  sampleResults(),
		details: map[int]breakdown.Raw{
			1: {
				"blue": map[string]any{"totalPoints": float64(58), "melodyBonusAchieved": true},
				"red":  map[string]any{"totalPoints": float64(64)},
			},
			2: {
				"blue": map[string]any{"totalPoints": float64(1)},
			},
		},
	}
	service := NewScheduleService(provider, logging.NewNop())

	got, err := service.HybridSchedule(context.Background(), match.Query{Season: 2024, EventCode: "CAFR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Breakdown == nil || got[0].Breakdown.Winner != match.WinnerRed {
		t.Fatalf("expected red-win breakdown on match 1, got %+v", got[0].Breakdown)
	}
	if got[0].Breakdown.Bonuses["melodyBonusAchieved"] != true {
		t.Fatalf("expected match-level bonus")
	}
	if got[1].Breakdown != nil {
		t.Fatalf("unplayed match must not carry a breakdown")
	}
}

func TestScheduleService_RejectsMissingEventCode(t *testing.T) {
	t.Parallel()

	service := NewScheduleService(&stubScheduleProvider{}, logging.NewNop())
	if _, err := service.HybridSchedule(context.Background(), match.Query{Season: 2024}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
