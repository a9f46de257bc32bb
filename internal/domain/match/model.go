package match

import (
	"strconv"
	"strings"
	"time"
)

type TournamentLevel string

const (
	LevelQualification TournamentLevel = "Qualification"
	LevelPlayoff       TournamentLevel = "Playoff"
)

// ParseLevel accepts the long form or the short "qual"/"playoff" form.
func ParseLevel(value string) (TournamentLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "qualification", "qual", "qm":
		return LevelQualification, true
	case "playoff", "playoffs", "elim":
		return LevelPlayoff, true
	default:
		return "", false
	}
}

type Color string

const (
	Blue Color = "Blue"
	Red  Color = "Red"
)

// Colors is the fixed alliance order used whenever one alliance must be
// picked as the representative.
var Colors = []Color{Blue, Red}

func ParseColor(value string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "blue":
		return Blue, true
	case "red":
		return Red, true
	default:
		return "", false
	}
}

// Station identifies a seat, e.g. "Red1".
type Station string

func NewStation(color Color, seat int) Station {
	return Station(string(color) + strconv.Itoa(seat))
}

func (s Station) Color() Color {
	if strings.HasPrefix(string(s), string(Red)) {
		return Red
	}
	return Blue
}

// Label renders the human form, "Red 2".
func (s Station) Label() string {
	value := string(s)
	for _, color := range Colors {
		if seat, ok := strings.CutPrefix(value, string(color)); ok {
			return string(color) + " " + seat
		}
	}
	return value
}

type Participant struct {
	TeamNumber int     `json:"teamNumber"`
	Station    Station `json:"station"`
	Surrogate  bool    `json:"surrogate"`
	DQ         bool    `json:"dq"`
}

// Bracket is the inferred playoff placement of a match.
type Bracket struct {
	PlayoffNumber int    `json:"playoffNumber"`
	Round         int    `json:"round"`
	RoundLabel    string `json:"roundLabel"`
	CompLevel     string `json:"compLevel"`
	SetNumber     int    `json:"setNumber"`
}

// Match is one schedule entry merged with its result, when a result exists.
type Match struct {
	Number         int             `json:"matchNumber"`
	Description    string          `json:"description"`
	Level          TournamentLevel `json:"tournamentLevel"`
	Field          string          `json:"field,omitempty"`
	ScheduledStart *time.Time      `json:"startTime,omitempty"`
	ActualStart    *time.Time      `json:"actualStartTime,omitempty"`
	AutoStart      *time.Time      `json:"autoStartTime,omitempty"`
	PostResultTime *time.Time      `json:"postResultTime,omitempty"`
	ScoreRedFinal  *int            `json:"scoreRedFinal,omitempty"`
	ScoreRedFoul   *int            `json:"scoreRedFoul,omitempty"`
	ScoreRedAuto   *int            `json:"scoreRedAuto,omitempty"`
	ScoreBlueFinal *int            `json:"scoreBlueFinal,omitempty"`
	ScoreBlueFoul  *int            `json:"scoreBlueFoul,omitempty"`
	ScoreBlueAuto  *int            `json:"scoreBlueAuto,omitempty"`
	Teams          []Participant   `json:"teams"`
	Breakdown      *Score          `json:"scoreBreakdown,omitempty"`
	VideoLink      string          `json:"matchVideoLink,omitempty"`
	IsReplay       *bool           `json:"isReplay,omitempty"`
	Bracket        *Bracket        `json:"bracket,omitempty"`
}

// Played reports whether a result was posted for the match.
func (m Match) Played() bool {
	return m.PostResultTime != nil
}

// Scored reports whether both final scores are present.
func (m Match) Scored() bool {
	return m.ScoreRedFinal != nil && m.ScoreBlueFinal != nil
}

func (m Match) TeamNumbers() []int {
	out := make([]int, 0, len(m.Teams))
	for _, p := range m.Teams {
		out = append(out, p.TeamNumber)
	}
	return out
}

// FinalScore returns the final score of color, or zero when unscored.
func (m Match) FinalScore(color Color) int {
	if color == Red {
		return deref(m.ScoreRedFinal)
	}
	return deref(m.ScoreBlueFinal)
}

// FoulScore returns the foul points awarded to color, or zero when unknown.
func (m Match) FoulScore(color Color) int {
	if color == Red {
		return deref(m.ScoreRedFoul)
	}
	return deref(m.ScoreBlueFoul)
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// Query selects one event's matches at one tournament level.
type Query struct {
	Season    int
	EventCode string
	Level     TournamentLevel
}
