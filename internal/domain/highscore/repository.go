package highscore

import "context"

// Repository stores the full record set of a season. Save replaces.
type Repository interface {
	Save(ctx context.Context, year int, records []Record) error
	List(ctx context.Context, year int) ([]Record, bool, error)
}
