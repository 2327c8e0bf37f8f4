package stats

import "nba-fantasy-service/internal/domain/players"

// Free-throw possession factor used by the advanced shooting formulas.
// Usage rate keeps the older 0.44 factor from its own formula.
const ftaPossessionFactor = 0.475

// astTovFloor substitutes for the denominator when a player averages zero
// turnovers, so the ratio stays finite.
const astTovFloor = 0.1

// Derive returns a copy of rows with every derived metric populated. It is a
// pure function of its input: the source slice is never modified, no row can
// produce NaN or Inf, and zero denominators resolve to the documented
// fallback values.
func Derive(rows []players.Player, coeffs CoefficientSet, w ScoringWeights) []players.Player {
	if coeffs == nil {
		coeffs = DefaultCoefficients()
	}
	if w.IsZero() {
		w = DefaultScoringWeights()
	}
	out := make([]players.Player, len(rows))
	copy(out, rows)
	for i := range out {
		deriveRow(&out[i], coeffs, w)
	}
	return out
}

func deriveRow(p *players.Player, coeffs CoefficientSet, w ScoringWeights) {
	p.FantasyPoints = FantasyPoints(*p, w)
	p.Efficiency = p.Points + p.Rebounds + p.Assists + p.Steals + p.Blocks - p.Turnovers

	p.UsageRate = 0
	if p.Minutes > 0 {
		p.UsageRate = (p.FGAttempted + 0.44*p.FTAttempted + p.Assists) / p.Minutes * 100
	}

	p.TrueShooting = 0
	if tsDen := 2 * (p.FGAttempted + ftaPossessionFactor*p.FTAttempted); tsDen > 0 {
		p.TrueShooting = p.Points / tsDen
	}

	p.FreeThrowRate = 0
	p.EffectiveFG = 0
	if p.FGAttempted > 0 {
		p.FreeThrowRate = p.FTMade / p.FGAttempted
		p.EffectiveFG = (p.FGMade + 0.5*p.ThreePMade) / p.FGAttempted
	}

	if p.Turnovers > 0 {
		p.AssistTurnover = p.Assists / p.Turnovers
	} else {
		p.AssistTurnover = p.Assists / astTovFloor
	}

	p.AssistPct = 0
	p.TurnoverPct = 0
	if den := p.FGAttempted + ftaPossessionFactor*p.FTAttempted + p.Assists + p.Turnovers; den > 0 {
		p.AssistPct = p.Assists / den
		p.TurnoverPct = p.Turnovers / den
	}

	p.GameScore = p.Points +
		0.4*p.FGMade -
		0.7*p.FGAttempted -
		0.4*(p.FTAttempted-p.FTMade) +
		0.7*p.OffRebounds +
		0.3*p.DefRebounds +
		p.Steals +
		0.7*p.Assists +
		0.7*p.Blocks -
		0.4*p.Fouls -
		p.Turnovers

	p.BoxPlusMinus = BoxPlusMinus(*p, coeffs)
}
