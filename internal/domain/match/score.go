package match

// Winner codes follow the provider convention.
type Winner int

const (
	WinnerTie  Winner = -1
	WinnerBlue Winner = 0
	WinnerRed  Winner = 1
)

func (w Winner) String() string {
	switch w {
	case WinnerBlue:
		return "blue"
	case WinnerRed:
		return "red"
	default:
		return "tie"
	}
}

// DecideWinner compares final scores strictly.
func DecideWinner(blue, red int) Winner {
	switch {
	case blue > red:
		return WinnerBlue
	case red > blue:
		return WinnerRed
	default:
		return WinnerTie
	}
}

// AllianceScore holds the season-invariant fields of one alliance plus the
// season-specific bonus values.
type AllianceScore struct {
	Alliance      Color          `json:"alliance"`
	TotalPoints   int            `json:"totalPoints"`
	AutoPoints    int            `json:"autoPoints"`
	TeleopPoints  int            `json:"teleopPoints"`
	EndgamePoints int            `json:"endgamePoints"`
	FoulCount     int            `json:"foulCount"`
	TechFoulCount int            `json:"techFoulCount"`
	FoulPoints    int            `json:"foulPoints"`
	RankingPoints int            `json:"rankingPoints"`
	Bonuses       map[string]any `json:"bonuses,omitempty"`
}

// Score is a normalized breakdown. Alliances holds exactly one entry per color.
type Score struct {
	MatchNumber int                     `json:"matchNumber"`
	Level       TournamentLevel         `json:"tournamentLevel"`
	Winner      Winner                  `json:"winner"`
	Alliances   map[Color]AllianceScore `json:"alliances"`
	Bonuses     map[string]any          `json:"bonuses,omitempty"`
}

// Alliance returns the score of color and whether it is present.
func (s *Score) Alliance(color Color) (AllianceScore, bool) {
	if s == nil {
		return AllianceScore{}, false
	}
	score, ok := s.Alliances[color]
	return score, ok
}

// Complete reports whether both alliances are present.
func (s *Score) Complete() bool {
	if s == nil {
		return false
	}
	for _, color := range Colors {
		if _, ok := s.Alliances[color]; !ok {
			return false
		}
	}
	return true
}
