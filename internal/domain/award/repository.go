package award

import "context"

// Source describes how use cases read award history.
type Source interface {
	ListTeamAwards(ctx context.Context, season, teamNumber int) ([]Award, error)
}
