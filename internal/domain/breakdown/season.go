package breakdown

import (
	"sort"
	"strings"
)

type Kind string

const (
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// BonusField describes one season-specific alliance field surfaced in the
// bonus extension map.
type BonusField struct {
	Name string
	Kind Kind
}

// ExcludedBonusField is never treated as a bonus during discovery.
const ExcludedBonusField = "coopertitionBonusAchieved"

var seasonBonuses = map[int][]BonusField{
	2019: {
		{Name: "completeRocketRankingPoint", Kind: KindBool},
		{Name: "habDockingRankingPoint", Kind: KindBool},
	},
	2020: {
		{Name: "shieldEnergizedRankingPoint", Kind: KindBool},
		{Name: "shieldOperationalRankingPoint", Kind: KindBool},
	},
	2021: {
		{Name: "shieldEnergizedRankingPoint", Kind: KindBool},
		{Name: "shieldOperationalRankingPoint", Kind: KindBool},
	},
	2022: {
		{Name: "cargoBonusRankingPoint", Kind: KindBool},
		{Name: "hangarBonusRankingPoint", Kind: KindBool},
		{Name: "quintetAchieved", Kind: KindBool},
	},
	2023: {
		{Name: "sustainabilityBonusAchieved", Kind: KindBool},
		{Name: "activationBonusAchieved", Kind: KindBool},
		{Name: "coopertitionCriteriaMet", Kind: KindBool},
	},
	2024: {
		{Name: "melodyBonusAchieved", Kind: KindBool},
		{Name: "ensembleBonusAchieved", Kind: KindBool},
		{Name: "melodyBonusThreshold", Kind: KindInt},
		{Name: "ensembleBonusStagePoints", Kind: KindInt},
		{Name: "ensembleBonusOnStageRobotsThreshold", Kind: KindInt},
	},
	2025: {
		{Name: "autoBonusAchieved", Kind: KindBool},
		{Name: "coralBonusAchieved", Kind: KindBool},
		{Name: "bargeBonusAchieved", Kind: KindBool},
	},
}

// SeasonBonuses returns the registered bonus fields for season.
func SeasonBonuses(season int) ([]BonusField, bool) {
	fields, ok := seasonBonuses[season]
	if !ok {
		return nil, false
	}
	out := make([]BonusField, len(fields))
	copy(out, fields)
	return out, true
}

// discoverBonuses is the fallback for seasons without a registry entry: any
// key containing "bonus" in any alliance object, kind taken from the value.
func discoverBonuses(alliances ...Raw) []BonusField {
	seen := make(map[string]Kind)
	for _, raw := range alliances {
		for key, value := range raw {
			if key == ExcludedBonusField || !strings.Contains(strings.ToLower(key), "bonus") {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = kindOf(value)
		}
	}

	out := make([]BonusField, 0, len(seen))
	for name, kind := range seen {
		out = append(out, BonusField{Name: name, Kind: kind})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func kindOf(value any) Kind {
	switch value.(type) {
	case bool:
		return KindBool
	case string:
		return KindString
	default:
		return KindInt
	}
}

func read(raw Raw, field BonusField) any {
	switch field.Kind {
	case KindBool:
		return Bool(raw, field.Name)
	case KindString:
		value, _ := String(raw, field.Name)
		return value
	default:
		return Int(raw, field.Name)
	}
}
