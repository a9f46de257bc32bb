package team

import (
	"context"

	"github.com/riskibarqy/frc-scores/internal/platform/fanout"
)

// Query filters a team listing. Zero values mean "any".
type Query struct {
	Season       int
	EventCode    string
	DistrictCode string
	TeamNumber   int
}

// Source describes how use cases read rosters and team media.
type Source interface {
	ListTeamsPage(ctx context.Context, q Query, page int) (fanout.Page[Team], error)
	GetAvatar(ctx context.Context, season, teamNumber int) (Avatar, error)
}
