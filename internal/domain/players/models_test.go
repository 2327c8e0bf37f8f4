package players

import "testing"

func TestPositionKnown(t *testing.T) {
	for _, pos := range Positions {
		if !pos.Known() {
			t.Fatalf("expected %q to be known", pos)
		}
	}
	for _, pos := range []Position{"", "G", "PG/SG", "F-C"} {
		if pos.Known() {
			t.Fatalf("expected %q to be unknown", pos)
		}
	}
}

func TestCombinedTeamRow(t *testing.T) {
	cases := []struct {
		team string
		want bool
	}{
		{"2TM", true},
		{"3TM", true},
		{"TOT", false},
		{"BOS", false},
		{"", false},
	}
	for _, tc := range cases {
		p := Player{Team: tc.team}
		if got := p.CombinedTeamRow(); got != tc.want {
			t.Fatalf("CombinedTeamRow(%q): expected %v, got %v", tc.team, tc.want, got)
		}
	}
}
