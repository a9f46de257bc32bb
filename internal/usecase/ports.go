package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/frc-scores/internal/domain/breakdown"
	"github.com/riskibarqy/frc-scores/internal/domain/event"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/riskibarqy/frc-scores/internal/domain/team"
)

// ScheduleProvider is the season provider's split schedule/result feed.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, q match.Query) ([]ExternalScheduleEntry, error)
	FetchResults(ctx context.Context, q match.Query) ([]ExternalResult, error)
	FetchScoreDetails(ctx context.Context, q match.Query) (map[int]breakdown.Raw, error)
}

// ExternalScheduleEntry is who plays when, published before the match.
type ExternalScheduleEntry struct {
	MatchNumber int
	Description string
	Level       match.TournamentLevel
	Field       string
	StartTime   *time.Time
	Teams       []match.Participant
}

// ExternalResult is what happened, published after the match.
type ExternalResult struct {
	MatchNumber    int
	ActualStart    *time.Time
	AutoStart      *time.Time
	PostResultTime *time.Time
	ScoreRedFinal  *int
	ScoreRedFoul   *int
	ScoreRedAuto   *int
	ScoreBlueFinal *int
	ScoreBlueFoul  *int
	ScoreBlueAuto  *int
	Teams          []match.Participant
	VideoLink      string
	IsReplay       *bool
}

// AlternateProvider is the historical-data provider used for off-season
// events. Identifiers are program prefixed ("frc254") and times are epoch
// seconds.
type AlternateProvider interface {
	FetchEvents(ctx context.Context, year int) ([]event.Event, error)
	FetchEventMatches(ctx context.Context, eventKey string) ([]ExternalAltMatch, error)
	FetchEventTeams(ctx context.Context, eventKey string) ([]team.Team, error)
	FetchEventRankings(ctx context.Context, eventKey string) ([]ExternalAltRanking, error)
	FetchEventAlliances(ctx context.Context, eventKey string) ([]ExternalAltAlliance, error)
}

type ExternalAltMatch struct {
	Key            string
	CompLevel      string
	SetNumber      int
	MatchNumber    int
	Alliances      map[string]ExternalAltAllianceSlot
	Time           *int64
	ActualTime     *int64
	PredictedTime  *int64
	PostResultTime *int64
	ScoreBreakdown breakdown.Raw
	VideoKeys      []string
}

type ExternalAltAllianceSlot struct {
	Score             *int
	TeamKeys          []string
	SurrogateTeamKeys []string
	DQTeamKeys        []string
}

type ExternalAltRanking struct {
	TeamKey       string
	Rank          int
	SortOrders    []float64
	Wins          int
	Losses        int
	Ties          int
	QualAverage   float64
	DQ            int
	MatchesPlayed int
}

type ExternalAltAlliance struct {
	Name   string
	Picks  []string
	Backup string
}

// StatsProvider serves team performance ratings.
type StatsProvider interface {
	FetchTeamYear(ctx context.Context, teamNumber, year int) (TeamYearStats, error)
}

type TeamYearStats struct {
	TeamNumber    int     `json:"teamNumber"`
	Year          int     `json:"year"`
	Name          string  `json:"name"`
	District      string  `json:"district,omitempty"`
	EPAMean       float64 `json:"epaMean"`
	EPASD         float64 `json:"epaSd"`
	AutoPoints    float64 `json:"autoPoints"`
	TeleopPoints  float64 `json:"teleopPoints"`
	EndgamePoints float64 `json:"endgamePoints"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	WinRate       float64 `json:"winRate"`
	TotalRank     int     `json:"totalRank,omitempty"`
	CountryRank   int     `json:"countryRank,omitempty"`
}
