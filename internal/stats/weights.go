package stats

import "nba-fantasy-service/internal/domain/players"

// ScoringWeights holds the per-category point values used for fantasy scoring.
type ScoringWeights struct {
	Points    float64 `json:"pts"`
	Rebounds  float64 `json:"trb"`
	Assists   float64 `json:"ast"`
	Steals    float64 `json:"stl"`
	Blocks    float64 `json:"blk"`
	Turnovers float64 `json:"tov"`
}

// DefaultScoringWeights returns standard-league scoring values.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Points:    1.0,
		Rebounds:  1.25,
		Assists:   1.5,
		Steals:    2.0,
		Blocks:    2.0,
		Turnovers: -1.0,
	}
}

// IsZero reports whether no weight has been set.
func (w ScoringWeights) IsZero() bool {
	return w == ScoringWeights{}
}

// FantasyPoints computes the weighted fantasy score for a single row.
func FantasyPoints(p players.Player, w ScoringWeights) float64 {
	return p.Points*w.Points +
		p.Rebounds*w.Rebounds +
		p.Assists*w.Assists +
		p.Steals*w.Steals +
		p.Blocks*w.Blocks +
		p.Turnovers*w.Turnovers
}

// ApplyWeights returns a copy of rows with fantasy points recomputed using w.
// Every other derived metric is left untouched; fantasy scoring feeds ranking
// but none of the other formulas.
func ApplyWeights(rows []players.Player, w ScoringWeights) []players.Player {
	out := make([]players.Player, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].FantasyPoints = FantasyPoints(out[i], w)
	}
	return out
}
