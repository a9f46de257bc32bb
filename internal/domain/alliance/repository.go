package alliance

import "context"

// Source describes how use cases read alliance selections.
type Source interface {
	ListAlliances(ctx context.Context, season int, eventCode string) ([]Selection, error)
}
