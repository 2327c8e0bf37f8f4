package stats

import (
	"testing"

	"nba-fantasy-service/internal/domain/players"
)

func TestDefaultCoefficientsCoverEveryPosition(t *testing.T) {
	set := DefaultCoefficients()
	for _, pos := range players.Positions {
		if _, ok := set[pos]; !ok {
			t.Fatalf("missing coefficient row for %q", pos)
		}
	}
}

func TestForPositionFallsBackToPointGuard(t *testing.T) {
	set := DefaultCoefficients()

	got := set.ForPosition(players.Position("G-F"))
	if got != set[players.PointGuard] {
		t.Fatalf("expected point-guard fallback, got %+v", got)
	}
}

func TestBoxPlusMinusDotProduct(t *testing.T) {
	set := CoefficientSet{
		players.Center: {Points: 1.0, Blocks: 2.0, Turnovers: -1.0},
	}
	// Center row exists, point-guard fallback must not trigger.
	set[players.PointGuard] = Coefficients{Points: 100.0}

	p := players.Player{Pos: players.Center, Points: 10.0, Blocks: 2.0, Turnovers: 3.0}

	want := 10.0 + 4.0 - 3.0
	if got := BoxPlusMinus(p, set); !almostEqual(got, want) {
		t.Fatalf("expected BPM %v, got %v", want, got)
	}
}
