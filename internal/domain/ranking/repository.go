package ranking

import "context"

// Source describes how use cases read event rankings.
type Source interface {
	ListRankings(ctx context.Context, season int, eventCode string) ([]Ranking, error)
}
