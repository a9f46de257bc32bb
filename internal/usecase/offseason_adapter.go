package usecase

import (
	"sort"
	"strconv"
	"time"

	"github.com/riskibarqy/frc-scores/internal/domain/alliance"
	"github.com/riskibarqy/frc-scores/internal/domain/bracket"
	"github.com/riskibarqy/frc-scores/internal/domain/breakdown"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/riskibarqy/frc-scores/internal/domain/ranking"
	"github.com/riskibarqy/frc-scores/internal/domain/team"
)

// postResultOffset is how long after the scheduled start a played match is
// assumed to have posted when the provider omits the time.
const postResultOffset = 3 * time.Minute

const youtubeWatchURL = "https://www.youtube.com/watch?v="

// stationOrder is the order participants are emitted in.
var stationOrder = []match.Color{match.Red, match.Blue}

// AdaptAltMatches converts alternate-provider matches into hybrid matches.
// Qualification matches keep their number; playoff matches are numbered and
// labeled by bracket inference. Qualification matches come first.
func AdaptAltMatches(season int, items []ExternalAltMatch) []match.Match {
	quals := make([]match.Match, 0, len(items))
	playoffItems := make([]ExternalAltMatch, 0)
	for _, item := range items {
		if item.CompLevel == "qm" {
			m := adaptAltMatch(season, item)
			m.Number = item.MatchNumber
			m.Level = match.LevelQualification
			m.Description = "Qualification " + strconv.Itoa(item.MatchNumber)
			stampBreakdown(&m)
			quals = append(quals, m)
			continue
		}
		playoffItems = append(playoffItems, item)
	}
	sort.SliceStable(quals, func(i, j int) bool { return quals[i].Number < quals[j].Number })

	entries := make([]bracket.Entry, len(playoffItems))
	for i, item := range playoffItems {
		entries[i] = bracket.Entry{CompLevel: item.CompLevel, SetNumber: item.SetNumber, MatchNumber: item.MatchNumber}
	}
	_, placements := bracket.Assign(entries)

	out := make([]match.Match, 0, len(quals)+len(placements))
	out = append(out, quals...)
	for _, placement := range placements {
		item := playoffItems[placement.Index]
		m := adaptAltMatch(season, item)
		m.Number = placement.PlayoffNumber
		m.Level = match.LevelPlayoff
		m.Description = placement.Label
		m.Bracket = &match.Bracket{
			PlayoffNumber: placement.PlayoffNumber,
			Round:         placement.Round,
			RoundLabel:    placement.Label,
			CompLevel:     item.CompLevel,
			SetNumber:     item.SetNumber,
		}
		stampBreakdown(&m)
		out = append(out, m)
	}
	return out
}

func adaptAltMatch(season int, item ExternalAltMatch) match.Match {
	m := match.Match{
		ScheduledStart: epochTime(item.Time),
		ActualStart:    epochTime(item.ActualTime),
		PostResultTime: epochTime(item.PostResultTime),
	}
	if m.ScheduledStart == nil {
		m.ScheduledStart = epochTime(item.PredictedTime)
	}

	for _, color := range stationOrder {
		slot, ok := item.Alliances[colorKey(color)]
		if !ok {
			continue
		}
		surrogates := keySet(slot.SurrogateTeamKeys)
		dqs := keySet(slot.DQTeamKeys)
		for i, key := range slot.TeamKeys {
			number, ok := team.NumberFromKey(key)
			if !ok {
				continue
			}
			m.Teams = append(m.Teams, match.Participant{
				TeamNumber: number,
				Station:    match.NewStation(color, i+1),
				Surrogate:  surrogates[key],
				DQ:         dqs[key],
			})
		}

		score := validScore(slot.Score)
		if color == match.Red {
			m.ScoreRedFinal = score
		} else {
			m.ScoreBlueFinal = score
		}
	}

	if len(item.ScoreBreakdown) > 0 {
		normalized := breakdown.Normalize(season, item.ScoreBreakdown)
		m.Breakdown = &normalized
		if red, ok := normalized.Alliance(match.Red); ok {
			m.ScoreRedFoul = intPtr(red.FoulPoints)
			m.ScoreRedAuto = intPtr(red.AutoPoints)
		}
		if blue, ok := normalized.Alliance(match.Blue); ok {
			m.ScoreBlueFoul = intPtr(blue.FoulPoints)
			m.ScoreBlueAuto = intPtr(blue.AutoPoints)
		}
		backfillTiming(&m)
	}

	if len(item.VideoKeys) > 0 && item.VideoKeys[0] != "" {
		m.VideoLink = youtubeWatchURL + item.VideoKeys[0]
	}
	return m
}

// stampBreakdown keys the breakdown by the hybrid match's final number and
// level, the same way season-provider breakdowns are attached.
func stampBreakdown(m *match.Match) {
	if m.Breakdown == nil {
		return
	}
	m.Breakdown.MatchNumber = m.Number
	m.Breakdown.Level = m.Level
}

// backfillTiming fills derived times for a match known to be played.
func backfillTiming(m *match.Match) {
	if m.ScheduledStart == nil {
		return
	}
	if m.ActualStart == nil {
		m.ActualStart = m.ScheduledStart
	}
	if m.AutoStart == nil {
		m.AutoStart = m.ScheduledStart
	}
	if m.PostResultTime == nil && m.Scored() {
		posted := m.ScheduledStart.Add(postResultOffset)
		m.PostResultTime = &posted
	}
}

// AdaptAltRankings maps rankings, dropping rows with unparseable team keys.
func AdaptAltRankings(items []ExternalAltRanking) []ranking.Ranking {
	out := make([]ranking.Ranking, 0, len(items))
	for _, item := range items {
		number, ok := team.NumberFromKey(item.TeamKey)
		if !ok {
			continue
		}
		out = append(out, ranking.Ranking{
			TeamNumber:    number,
			Rank:          item.Rank,
			SortOrders:    ranking.PadSortOrders(item.SortOrders),
			Wins:          item.Wins,
			Losses:        item.Losses,
			Ties:          item.Ties,
			QualAverage:   item.QualAverage,
			DQ:            item.DQ,
			MatchesPlayed: item.MatchesPlayed,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}

// AdaptAltAlliances numbers alliances in provider order; picks are captain
// first, then rounds one to three.
func AdaptAltAlliances(items []ExternalAltAlliance) []alliance.Selection {
	out := make([]alliance.Selection, 0, len(items))
	for i, item := range items {
		picks := make([]int, 0, len(item.Picks))
		for _, key := range item.Picks {
			if number, ok := team.NumberFromKey(key); ok {
				picks = append(picks, number)
			}
		}
		if len(picks) < 2 {
			continue
		}

		sel := alliance.Selection{
			Number:  i + 1,
			Name:    item.Name,
			Captain: picks[0],
			Round1:  picks[1],
		}
		if len(picks) > 2 {
			sel.Round2 = intPtr(picks[2])
		}
		if len(picks) > 3 {
			sel.Round3 = intPtr(picks[3])
		}
		if backup, ok := team.NumberFromKey(item.Backup); ok {
			sel.Backup = intPtr(backup)
		}
		out = append(out, sel)
	}
	return out
}

func epochTime(seconds *int64) *time.Time {
	if seconds == nil || *seconds <= 0 {
		return nil
	}
	t := time.Unix(*seconds, 0).UTC()
	return &t
}

// validScore treats the provider's negative placeholder as unscored.
func validScore(score *int) *int {
	if score == nil || *score < 0 {
		return nil
	}
	return intPtr(*score)
}

func colorKey(color match.Color) string {
	if color == match.Red {
		return "red"
	}
	return "blue"
}

func keySet(keys []string) map[string]bool {
	out := make(map[string]bool, len(keys))
	for _, key := range keys {
		out[key] = true
	}
	return out
}

func intPtr(v int) *int {
	return &v
}
