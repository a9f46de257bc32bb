package highscore

import "github.com/riskibarqy/frc-scores/internal/domain/match"

// Eligible keeps played, fully scored matches without any demo team.
func Eligible(corpus []EventMatch, demo DemoRange) []EventMatch {
	out := make([]EventMatch, 0, len(corpus))
	for _, em := range corpus {
		if !em.Match.Played() || !em.Match.Scored() {
			continue
		}
		if hasDemoTeam(em.Match, demo) {
			continue
		}
		out = append(out, em)
	}
	return out
}

// ByDistrict keeps matches played at events in district.
func ByDistrict(corpus []EventMatch, district string) []EventMatch {
	out := make([]EventMatch, 0, len(corpus))
	for _, em := range corpus {
		if em.DistrictCode == district {
			out = append(out, em)
		}
	}
	return out
}

// Classify buckets an eligible corpus and returns one record per non-empty
// bucket per level, qualification first. Input matches are not modified.
func Classify(year int, scope string, corpus []EventMatch) []Record {
	leaders := make(map[Level]map[Category]*EventMatch, 2)

	for i := range corpus {
		em := &corpus[i]
		level := LevelOf(em.Match.Level)
		if leaders[level] == nil {
			leaders[level] = make(map[Category]*EventMatch, len(Categories))
		}
		for _, category := range categoriesFor(em.Match) {
			current := leaders[level][category]
			if current == nil || outranks(*em, *current) {
				leaders[level][category] = em
			}
		}
	}

	records := make([]Record, 0, 2*len(Categories))
	for _, level := range []Level{LevelQual, LevelPlayoff} {
		for _, category := range Categories {
			leader := leaders[level][category]
			if leader == nil {
				continue
			}
			alliance := winningAlliance(leader.Match)
			records = append(records, Record{
				Key:       RecordKey(year, category, level, scope),
				Year:      year,
				Category:  category,
				Level:     level,
				Scope:     scope,
				EventCode: leader.EventCode,
				Match:     leader.Match,
				Alliance:  alliance,
				Score:     leader.Match.FinalScore(alliance),
			})
		}
	}
	return records
}

// categoriesFor applies the bucket rules. penaltyFree and offsetting are
// exclusive; overall and TBAPenaltyFree are evaluated on their own.
func categoriesFor(m match.Match) []Category {
	blueFoul := m.FoulScore(match.Blue)
	redFoul := m.FoulScore(match.Red)

	out := []Category{CategoryOverall}
	if blueFoul == 0 && redFoul == 0 {
		out = append(out, CategoryPenaltyFree)
	} else if blueFoul == redFoul {
		out = append(out, CategoryOffsetting)
	}
	if m.FoulScore(winningAlliance(m)) == 0 {
		out = append(out, CategoryTBAPenaltyFree)
	}
	return out
}

// outranks orders bucket candidates by combined alliance score, then by
// the higher single alliance score, then by event code and match number
// ascending. The order is total, so the leader is independent of corpus order.
func outranks(candidate, leader EventMatch) bool {
	if c, l := combinedScore(candidate.Match), combinedScore(leader.Match); c != l {
		return c > l
	}
	if c, l := topScore(candidate.Match), topScore(leader.Match); c != l {
		return c > l
	}
	if candidate.EventCode != leader.EventCode {
		return candidate.EventCode < leader.EventCode
	}
	return candidate.Match.Number < leader.Match.Number
}

func combinedScore(m match.Match) int {
	return m.FinalScore(match.Blue) + m.FinalScore(match.Red)
}

func topScore(m match.Match) int {
	return m.FinalScore(winningAlliance(m))
}

func winningAlliance(m match.Match) match.Color {
	if m.FinalScore(match.Blue) >= m.FinalScore(match.Red) {
		return match.Blue
	}
	return match.Red
}

func hasDemoTeam(m match.Match, demo DemoRange) bool {
	for _, p := range m.Teams {
		if demo.Contains(p.TeamNumber) {
			return true
		}
	}
	return false
}
