package breakdown

import (
	"testing"

	"github.com/riskibarqy/frc-scores/internal/domain/match"
)

func TestNormalize_MissingIntegerFieldDefaultsToZero(t *testing.T) {
	t.Parallel()

	raw := Raw{
		"blue": map[string]any{"totalPoints": float64(88), "autoPoints": "not a number"},
		"red":  map[string]any{"totalPoints": float64(70), "foulCount": true},
	}

	score := Normalize(2024, raw)
	blue, ok := score.Alliance(match.Blue)
	if !ok {
		t.Fatalf("expected blue alliance")
	}
	if blue.TeleopPoints != 0 || blue.AutoPoints != 0 {
		t.Fatalf("expected missing and mistyped fields to be zero, got %+v", blue)
	}
	red, _ := score.Alliance(match.Red)
	if red.FoulCount != 0 {
		t.Fatalf("expected mistyped foul count to be zero, got %d", red.FoulCount)
	}
	if score.Winner != match.WinnerBlue {
		t.Fatalf("expected blue win, got %v", score.Winner)
	}
}

func TestNormalize_BoolBonusIsORedAcrossAlliances(t *testing.T) {
	t.Parallel()

	raw := Raw{
		"blue": map[string]any{"melodyBonusAchieved": true, "melodyBonusThreshold": float64(18)},
		"red":  map[string]any{"melodyBonusAchieved": false, "melodyBonusThreshold": float64(21)},
	}

	score := Normalize(2024, raw)
	if got := score.Bonuses["melodyBonusAchieved"]; got != true {
		t.Fatalf("expected match-level bonus true, got %v", got)
	}
	if got := score.Bonuses["ensembleBonusAchieved"]; got != false {
		t.Fatalf("expected unset bonus false, got %v", got)
	}
	if got := score.Bonuses["melodyBonusThreshold"]; got != 18 {
		t.Fatalf("expected first alliance threshold, got %v", got)
	}
	red, _ := score.Alliance(match.Red)
	if red.Bonuses["melodyBonusAchieved"] != false {
		t.Fatalf("expected red alliance bonus false")
	}
}

func TestNormalize_AlwaysEmitsBothAlliances(t *testing.T) {
	t.Parallel()

	score := Normalize(2025, Raw{"blue": map[string]any{"totalPoints": float64(5)}})
	if !score.Complete() {
		t.Fatalf("expected both alliances, got %+v", score.Alliances)
	}
	if score.Winner != match.WinnerBlue {
		t.Fatalf("expected blue win")
	}
}

func TestNormalize_UnregisteredSeasonDiscoversBonusFields(t *testing.T) {
	t.Parallel()

	raw := Raw{
		"blue": map[string]any{"orbitBonusAchieved": false, "coopertitionBonusAchieved": true, "totalPoints": float64(40)},
		"red":  map[string]any{"orbitBonusAchieved": true, "coopertitionBonusAchieved": true, "totalPoints": float64(40)},
	}

	score := Normalize(2031, raw)
	if score.Bonuses["orbitBonusAchieved"] != true {
		t.Fatalf("expected discovered bonus to be ORed")
	}
	if _, ok := score.Bonuses[ExcludedBonusField]; ok {
		t.Fatalf("excluded field must not be surfaced")
	}
	if score.Winner != match.WinnerTie {
		t.Fatalf("expected tie, got %v", score.Winner)
	}
}

func TestNormalize_EndgameAliases(t *testing.T) {
	t.Parallel()

	raw := Raw{
		"blue": map[string]any{"endGameTotalStagePoints": float64(12), "minorFoulCount": float64(2), "majorFoulCount": float64(1)},
		"red":  map[string]any{"endGamePoints": float64(9)},
	}
	score := Normalize(2024, raw)
	blue, _ := score.Alliance(match.Blue)
	red, _ := score.Alliance(match.Red)
	if blue.EndgamePoints != 12 || red.EndgamePoints != 9 {
		t.Fatalf("unexpected endgame points blue=%d red=%d", blue.EndgamePoints, red.EndgamePoints)
	}
	if blue.FoulCount != 2 || blue.TechFoulCount != 1 {
		t.Fatalf("unexpected foul counts %+v", blue)
	}
}

func TestFromAllianceList(t *testing.T) {
	t.Parallel()

	raw := FromAllianceList([]Raw{
		{"alliance": "Blue", "totalPoints": float64(10)},
		{"alliance": "Red", "totalPoints": float64(20)},
		{"alliance": "Green", "totalPoints": float64(99)},
	})
	score := Normalize(2023, raw)
	if score.Winner != match.WinnerRed {
		t.Fatalf("expected red win, got %v", score.Winner)
	}
	if len(raw) != 2 {
		t.Fatalf("expected unknown alliance to be dropped, got %d entries", len(raw))
	}
}
