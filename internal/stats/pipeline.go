package stats

import "nba-fantasy-service/internal/domain/players"

// Pipeline runs the full derivation sequence over a raw season table:
// duplicate resolution, metric derivation, then archetype classification.
type Pipeline struct {
	tieBreak TieBreak
	weights  ScoringWeights
	coeffs   CoefficientSet
}

// NewPipeline constructs a Pipeline, substituting defaults for zero-value
// options.
func NewPipeline(tb TieBreak, w ScoringWeights, coeffs CoefficientSet) *Pipeline {
	if !tb.Valid() {
		tb = TieBreakPoints
	}
	if w.IsZero() {
		w = DefaultScoringWeights()
	}
	if coeffs == nil {
		coeffs = DefaultCoefficients()
	}
	return &Pipeline{tieBreak: tb, weights: w, coeffs: coeffs}
}

// SetCoefficients replaces the BPM coefficient table for subsequent runs.
func (p *Pipeline) SetCoefficients(coeffs CoefficientSet) {
	if coeffs != nil {
		p.coeffs = coeffs
	}
}

// Weights returns the scoring weights the pipeline derives with.
func (p *Pipeline) Weights() ScoringWeights {
	return p.weights
}

// Run transforms raw rows into the enriched table. The input slice is not
// modified. The only failure mode is malformed identity data, which aborts
// the whole load.
func (p *Pipeline) Run(rows []players.Player) ([]players.Player, error) {
	deduped, err := Deduplicate(rows, p.tieBreak, p.weights)
	if err != nil {
		return nil, err
	}
	enriched := Derive(deduped, p.coeffs, p.weights)
	for i := range enriched {
		enriched[i].Archetype = Classify(enriched[i])
	}
	return enriched, nil
}
