package highscore

import (
	"strconv"

	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/valyala/bytebufferpool"
)

type Category string

const (
	CategoryOverall        Category = "overall"
	CategoryPenaltyFree    Category = "penaltyFree"
	CategoryTBAPenaltyFree Category = "TBAPenaltyFree"
	CategoryOffsetting     Category = "offsetting"
)

// Categories lists every bucket in output order.
var Categories = []Category{CategoryOverall, CategoryPenaltyFree, CategoryTBAPenaltyFree, CategoryOffsetting}

type Level string

const (
	LevelQual    Level = "qual"
	LevelPlayoff Level = "playoff"
)

func LevelOf(level match.TournamentLevel) Level {
	if level == match.LevelPlayoff {
		return LevelPlayoff
	}
	return LevelQual
}

// EventMatch is a corpus entry: a hybrid match plus where it was played.
type EventMatch struct {
	EventCode    string
	DistrictCode string
	Match        match.Match
}

// Record is the leader of one bucket.
type Record struct {
	Key       string      `json:"key"`
	Year      int         `json:"year"`
	Category  Category    `json:"category"`
	Level     Level       `json:"level"`
	Scope     string      `json:"scope,omitempty"`
	EventCode string      `json:"eventCode"`
	Match     match.Match `json:"match"`
	Alliance  match.Color `json:"alliance"`
	Score     int         `json:"score"`
}

// RecordKey is the storage identity year+category+level[+scope].
func RecordKey(year int, category Category, level Level, scope string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(strconv.Itoa(year))
	_, _ = buf.WriteString(string(category))
	_, _ = buf.WriteString(string(level))
	_, _ = buf.WriteString(scope)
	return buf.String()
}

// DemoRange is the inclusive block of team numbers reserved for
// demonstration and placeholder teams.
type DemoRange struct {
	Min int
	Max int
}

func DefaultDemoRange() DemoRange {
	return DemoRange{Min: 9970, Max: 9999}
}

func (r DemoRange) Contains(teamNumber int) bool {
	return r.Min > 0 && teamNumber >= r.Min && teamNumber <= r.Max
}
