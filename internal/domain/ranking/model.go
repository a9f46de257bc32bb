package ranking

import "fmt"

// SortOrderCount is the fixed number of tiebreak values carried per ranking.
const SortOrderCount = 6

// Ranking is one team's position in an event snapshot.
type Ranking struct {
	TeamNumber    int                     `json:"teamNumber"`
	Rank          int                     `json:"rank"`
	SortOrders    [SortOrderCount]float64 `json:"sortOrders"`
	Wins          int                     `json:"wins"`
	Losses        int                     `json:"losses"`
	Ties          int                     `json:"ties"`
	QualAverage   float64                 `json:"qualAverage"`
	DQ            int                     `json:"dq"`
	MatchesPlayed int                     `json:"matchesPlayed"`
}

// PadSortOrders copies up to six values and zero-fills the rest.
func PadSortOrders(values []float64) [SortOrderCount]float64 {
	var out [SortOrderCount]float64
	copy(out[:], values)
	return out
}

// Validate checks that ranks are positive and unique within one snapshot.
func Validate(rankings []Ranking) error {
	seen := make(map[int]int, len(rankings))
	for _, r := range rankings {
		if r.Rank <= 0 {
			return fmt.Errorf("team %d has non-positive rank %d", r.TeamNumber, r.Rank)
		}
		if other, ok := seen[r.Rank]; ok {
			return fmt.Errorf("rank %d shared by teams %d and %d", r.Rank, other, r.TeamNumber)
		}
		seen[r.Rank] = r.TeamNumber
	}
	return nil
}
