package bracket

import "testing"

func sets(level string, count int) []Entry {
	out := make([]Entry, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, Entry{CompLevel: level, SetNumber: i, MatchNumber: 1})
	}
	return out
}

func TestInferSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		entries []Entry
		want    Size
	}{
		{name: "four quarterfinal sets", entries: append(sets("qf", 4), sets("sf", 1)...), want: Size8},
		{name: "four quarterfinal sets no semis", entries: sets("qf", 4), want: Size8},
		{name: "eight double elimination sets", entries: sets("sf", 13), want: Size8},
		{name: "three semifinal sets", entries: sets("sf", 3), want: Size4},
		{name: "one semifinal set", entries: sets("sf", 1), want: Size2},
		{name: "finals only", entries: sets("f", 1), want: Size2},
		{name: "empty", entries: nil, want: Size2},
		{name: "provider names", entries: sets("Quarterfinal", 4), want: Size8},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := InferSize(tc.entries); got != tc.want {
				t.Fatalf("InferSize() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRoundFor_EightAllianceTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		number int
		round  int
		label  string
	}{
		{number: 1, round: 1, label: "Match 1 (R1)"},
		{number: 5, round: 2, label: "Match 5 (R2)"},
		{number: 10, round: 3, label: "Match 10 (R3)"},
		{number: 12, round: 4, label: "Match 12 (R4)"},
		{number: 13, round: 5, label: "Match 13 (R5)"},
		{number: 14, round: 6, label: "Final 1"},
		{number: 15, round: 6, label: "Final 2"},
		{number: 16, round: 6, label: "Final Tiebreaker 1"},
		{number: 17, round: 6, label: "Final Tiebreaker 2"},
	}
	for _, tc := range cases {
		round, label := RoundFor(Size8, tc.number)
		if round != tc.round || label != tc.label {
			t.Fatalf("RoundFor(8, %d) = (%d, %q), want (%d, %q)", tc.number, round, label, tc.round, tc.label)
		}
	}
}

func TestRoundFor_SmallBrackets(t *testing.T) {
	t.Parallel()

	if round, label := RoundFor(Size4, 5); round != 3 || label != "Match 5 (R3)" {
		t.Fatalf("unexpected 4-alliance match 5: %d %q", round, label)
	}
	if round, label := RoundFor(Size4, 7); round != 4 || label != "Final 2" {
		t.Fatalf("unexpected 4-alliance match 7: %d %q", round, label)
	}
	if round, label := RoundFor(Size2, 1); round != 1 || label != "Final 1" {
		t.Fatalf("unexpected 2-alliance match 1: %d %q", round, label)
	}
	if round, label := RoundFor(Size2, 3); round != 1 || label != "Final Tiebreaker 1" {
		t.Fatalf("unexpected 2-alliance match 3: %d %q", round, label)
	}
}

func TestAssign_OrdersByLevelSetAndMatch(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{CompLevel: "f", SetNumber: 1, MatchNumber: 2},
		{CompLevel: "sf", SetNumber: 2, MatchNumber: 1},
		{CompLevel: "f", SetNumber: 1, MatchNumber: 1},
		{CompLevel: "sf", SetNumber: 1, MatchNumber: 1},
		{CompLevel: "qm", SetNumber: 1, MatchNumber: 40},
	}

	size, placements := Assign(entries)
	if size != Size4 {
		t.Fatalf("expected 4-alliance bracket, got %d", size)
	}
	if len(placements) != 4 {
		t.Fatalf("expected qualification entry to be skipped, got %d placements", len(placements))
	}

	wantOrder := []int{3, 1, 2, 0}
	for i, placement := range placements {
		if placement.Index != wantOrder[i] {
			t.Fatalf("placement %d index = %d, want %d", i, placement.Index, wantOrder[i])
		}
		if placement.PlayoffNumber != i+1 {
			t.Fatalf("placement %d number = %d", i, placement.PlayoffNumber)
		}
	}
	if placements[3].Label != "Match 4 (R2)" {
		t.Fatalf("unexpected label %q", placements[3].Label)
	}
}
