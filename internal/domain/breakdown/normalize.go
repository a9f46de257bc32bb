package breakdown

import (
	"strings"

	"github.com/riskibarqy/frc-scores/internal/domain/match"
)

// Normalize converts a color-keyed breakdown ("blue"/"red") into a Score.
// Missing or mistyped fields take their zero value; an alliance missing
// from raw is emitted with zero fields so both colors are always present.
func Normalize(season int, raw Raw) match.Score {
	alliances := map[match.Color]Raw{
		match.Blue: lookupColor(raw, match.Blue),
		match.Red:  lookupColor(raw, match.Red),
	}

	fields, ok := SeasonBonuses(season)
	if !ok {
		fields = discoverBonuses(alliances[match.Blue], alliances[match.Red])
	}

	score := match.Score{
		Winner:    match.WinnerTie,
		Alliances: make(map[match.Color]match.AllianceScore, len(match.Colors)),
		Bonuses:   make(map[string]any, len(fields)),
	}
	for _, color := range match.Colors {
		score.Alliances[color] = allianceScore(color, alliances[color], fields)
	}

	for _, field := range fields {
		if field.Kind == KindBool {
			achieved := false
			for _, color := range match.Colors {
				achieved = achieved || Bool(alliances[color], field.Name)
			}
			score.Bonuses[field.Name] = achieved
			continue
		}
		score.Bonuses[field.Name] = score.Alliances[match.Colors[0]].Bonuses[field.Name]
	}

	score.Winner = match.DecideWinner(
		score.Alliances[match.Blue].TotalPoints,
		score.Alliances[match.Red].TotalPoints,
	)
	return score
}

// FromAllianceList adapts the list form ({"alliance":"Blue", ...}) used by
// the season provider into the color-keyed form Normalize reads.
func FromAllianceList(items []Raw) Raw {
	out := make(Raw, len(items))
	for _, item := range items {
		name, _ := String(item, "alliance")
		color, ok := match.ParseColor(name)
		if !ok {
			continue
		}
		out[strings.ToLower(string(color))] = map[string]any(item)
	}
	return out
}

func allianceScore(color match.Color, raw Raw, fields []BonusField) match.AllianceScore {
	score := match.AllianceScore{
		Alliance:      color,
		TotalPoints:   Int(raw, "totalPoints"),
		AutoPoints:    Int(raw, "autoPoints"),
		TeleopPoints:  Int(raw, "teleopPoints"),
		EndgamePoints: IntAny(raw, "endGamePoints", "endgamePoints", "endGameTotalStagePoints"),
		FoulCount:     IntAny(raw, "foulCount", "minorFoulCount"),
		TechFoulCount: IntAny(raw, "techFoulCount", "majorFoulCount"),
		FoulPoints:    Int(raw, "foulPoints"),
		RankingPoints: IntAny(raw, "rp", "rankingPoints"),
	}
	if len(fields) > 0 {
		score.Bonuses = make(map[string]any, len(fields))
		for _, field := range fields {
			score.Bonuses[field.Name] = read(raw, field)
		}
	}
	return score
}

func lookupColor(raw Raw, color match.Color) Raw {
	if nested := Map(raw, strings.ToLower(string(color))); nested != nil {
		return nested
	}
	return Map(raw, string(color))
}
