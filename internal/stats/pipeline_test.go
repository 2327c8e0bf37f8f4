package stats

import (
	"errors"
	"testing"

	"nba-fantasy-service/internal/domain/players"
)

func TestPipelineRun(t *testing.T) {
	rows := []players.Player{
		{Name: "Solo", Team: "BOS", Pos: players.PointGuard, Assists: 6.0, Points: 14.0},
		{Name: "Traded", Team: "CHI", Pos: players.Center, Points: 12.0, Blocks: 1.5},
		{Name: "Traded", Team: "2TM", Pos: players.Center, Points: 13.0, Blocks: 1.5},
	}

	p := NewPipeline(TieBreakPoints, DefaultScoringWeights(), nil)
	out, err := p.Run(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("expected 2 enriched rows, got %d", len(out))
	}
	if out[1].Team != "2TM" {
		t.Fatalf("expected combined row for traded player, got %+v", out[1])
	}
	for _, row := range out {
		if row.FantasyPoints == 0 {
			t.Fatalf("expected derived fantasy points for %q", row.Name)
		}
		if row.Archetype == "" {
			t.Fatalf("expected archetype for %q", row.Name)
		}
	}
	if out[0].Archetype != players.PlaymakingGuard {
		t.Fatalf("expected playmaking guard, got %q", out[0].Archetype)
	}
	if out[1].Archetype != players.RimProtector {
		t.Fatalf("expected rim protector, got %q", out[1].Archetype)
	}
}

func TestPipelineRunPropagatesIdentityError(t *testing.T) {
	p := NewPipeline(TieBreakPoints, DefaultScoringWeights(), nil)

	_, err := p.Run([]players.Player{{Name: "", Team: "BOS"}})
	if !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("expected ErrMissingIdentity, got %v", err)
	}
}

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline(TieBreak(""), ScoringWeights{}, nil)

	if p.tieBreak != TieBreakPoints {
		t.Fatalf("expected points tie-break default, got %q", p.tieBreak)
	}
	if p.weights != DefaultScoringWeights() {
		t.Fatalf("expected default weights, got %+v", p.weights)
	}
	if p.coeffs == nil {
		t.Fatal("expected default coefficients")
	}
}

func TestPipelineSetCoefficients(t *testing.T) {
	p := NewPipeline(TieBreakPoints, DefaultScoringWeights(), nil)

	custom := CoefficientSet{players.PointGuard: {Points: 5.0}}
	p.SetCoefficients(custom)

	out, err := p.Run([]players.Player{{Name: "Solo", Team: "BOS", Pos: players.PointGuard, Points: 2.0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(out[0].BoxPlusMinus, 10.0) {
		t.Fatalf("expected BPM from custom coefficients, got %v", out[0].BoxPlusMinus)
	}

	p.SetCoefficients(nil)
	if p.coeffs == nil {
		t.Fatal("nil set must not clear coefficients")
	}
}
