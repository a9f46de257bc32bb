package event

import "context"

// Source describes how use cases read the season calendar.
type Source interface {
	ListEvents(ctx context.Context, season int) ([]Event, error)
	ListDistricts(ctx context.Context, season int) ([]District, error)
}
