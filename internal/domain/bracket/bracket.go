package bracket

import (
	"fmt"
	"sort"
	"strings"
)

// Size is the number of playoff alliances.
type Size int

const (
	Size2 Size = 2
	Size4 Size = 4
	Size8 Size = 8
)

// Level is a normalized playoff completion level.
type Level string

const (
	LevelEighth  Level = "ef"
	LevelQuarter Level = "qf"
	LevelSemi    Level = "sf"
	LevelFinal   Level = "f"
)

var levelPriority = map[Level]int{
	LevelEighth:  0,
	LevelQuarter: 1,
	LevelSemi:    2,
	LevelFinal:   3,
}

// ParseLevel accepts alternate-provider codes and season-provider names.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ef", "eighthfinal", "octofinal":
		return LevelEighth, true
	case "qf", "quarterfinal", "quarterfinals":
		return LevelQuarter, true
	case "sf", "semifinal", "semifinals":
		return LevelSemi, true
	case "f", "final", "finals":
		return LevelFinal, true
	default:
		return "", false
	}
}

// Entry is one raw playoff match.
type Entry struct {
	CompLevel   string
	SetNumber   int
	MatchNumber int
}

// Placement is the inferred position of Entry at Index in the input.
type Placement struct {
	Index         int
	PlayoffNumber int
	Round         int
	Label         string
}

type roundTable struct {
	rounds     []int
	finalRound int
}

var tables = map[Size]roundTable{
	Size8: {rounds: []int{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 4, 4, 5}, finalRound: 6},
	Size4: {rounds: []int{1, 1, 2, 2, 3}, finalRound: 4},
	Size2: {rounds: nil, finalRound: 1},
}

// InferSize derives bracket size from the shape of quarterfinal and
// semifinal sets, since providers do not report it.
func InferSize(entries []Entry) Size {
	qf := make(map[int]struct{})
	sf := make(map[int]struct{})
	for _, entry := range entries {
		level, ok := ParseLevel(entry.CompLevel)
		if !ok {
			continue
		}
		switch level {
		case LevelQuarter:
			qf[entry.SetNumber] = struct{}{}
		case LevelSemi:
			sf[entry.SetNumber] = struct{}{}
		}
	}

	switch {
	case len(qf) >= 4 || len(sf) >= 8:
		return Size8
	case len(sf) >= 2:
		return Size4
	default:
		return Size2
	}
}

// RoundFor maps a 1-based sequential playoff number to its round and label.
func RoundFor(size Size, playoffNumber int) (int, string) {
	table, ok := tables[size]
	if !ok {
		table = tables[Size2]
	}

	if playoffNumber >= 1 && playoffNumber <= len(table.rounds) {
		round := table.rounds[playoffNumber-1]
		return round, fmt.Sprintf("Match %d (R%d)", playoffNumber, round)
	}

	finalIndex := playoffNumber - len(table.rounds)
	if finalIndex <= 2 {
		return table.finalRound, fmt.Sprintf("Final %d", max(finalIndex, 1))
	}
	return table.finalRound, fmt.Sprintf("Final Tiebreaker %d", finalIndex-2)
}

// Assign orders playoff entries by (level, set, match), numbers them from 1
// and labels each one. Entries with an unknown level are skipped.
func Assign(entries []Entry) (Size, []Placement) {
	size := InferSize(entries)

	type indexed struct {
		index int
		level Level
		entry Entry
	}
	ordered := make([]indexed, 0, len(entries))
	for i, entry := range entries {
		level, ok := ParseLevel(entry.CompLevel)
		if !ok {
			continue
		}
		ordered = append(ordered, indexed{index: i, level: level, entry: entry})
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if levelPriority[a.level] != levelPriority[b.level] {
			return levelPriority[a.level] < levelPriority[b.level]
		}
		if a.entry.SetNumber != b.entry.SetNumber {
			return a.entry.SetNumber < b.entry.SetNumber
		}
		return a.entry.MatchNumber < b.entry.MatchNumber
	})

	placements := make([]Placement, 0, len(ordered))
	for i, item := range ordered {
		number := i + 1
		round, label := RoundFor(size, number)
		placements = append(placements, Placement{
			Index:         item.index,
			PlayoffNumber: number,
			Round:         round,
			Label:         label,
		})
	}
	return size, placements
}
