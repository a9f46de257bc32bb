package match

import "testing"

func TestStationLabelAndColor(t *testing.T) {
	t.Parallel()

	station := NewStation(Red, 2)
	if station != "Red2" {
		t.Fatalf("unexpected station id %q", station)
	}
	if station.Label() != "Red 2" {
		t.Fatalf("unexpected label %q", station.Label())
	}
	if station.Color() != Red {
		t.Fatalf("unexpected color %q", station.Color())
	}
	if Station("Blue3").Color() != Blue {
		t.Fatalf("expected blue station")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]TournamentLevel{
		"Qualification": LevelQualification,
		"qual":          LevelQualification,
		"Playoff":       LevelPlayoff,
		"playoff":       LevelPlayoff,
	}
	for input, want := range cases {
		got, ok := ParseLevel(input)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %q, %v", input, got, ok)
		}
	}
	if _, ok := ParseLevel("practice"); ok {
		t.Fatalf("expected practice to be rejected")
	}
}

func TestDecideWinner(t *testing.T) {
	t.Parallel()

	if DecideWinner(100, 80) != WinnerBlue {
		t.Fatalf("expected blue")
	}
	if DecideWinner(80, 100) != WinnerRed {
		t.Fatalf("expected red")
	}
	if DecideWinner(90, 90) != WinnerTie {
		t.Fatalf("expected tie")
	}
}

func TestMatchPlayedAndScored(t *testing.T) {
	t.Parallel()

	blue, red := 10, 12
	m := Match{ScoreBlueFinal: &blue}
	if m.Played() || m.Scored() {
		t.Fatalf("expected unplayed and unscored")
	}
	m.ScoreRedFinal = &red
	if !m.Scored() {
		t.Fatalf("expected scored")
	}
	if m.FinalScore(Red) != 12 || m.FoulScore(Blue) != 0 {
		t.Fatalf("unexpected score accessors")
	}
}
