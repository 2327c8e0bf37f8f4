package stats

import "nba-fantasy-service/internal/domain/players"

// Coefficients holds one position's linear-regression weights for the Box
// Plus/Minus estimate.
type Coefficients struct {
	Points      float64 `json:"pts"`
	ThreePMade  float64 `json:"threeP"`
	Assists     float64 `json:"ast"`
	Turnovers   float64 `json:"tov"`
	OffRebounds float64 `json:"orb"`
	DefRebounds float64 `json:"drb"`
	Steals      float64 `json:"stl"`
	Blocks      float64 `json:"blk"`
	Fouls       float64 `json:"pf"`
	FGAttempted float64 `json:"fga"`
	FTAttempted float64 `json:"fta"`
}

// CoefficientSet maps each position to its BPM coefficient row.
type CoefficientSet map[players.Position]Coefficients

// DefaultCoefficients returns the embedded fallback coefficient table used
// when the coefficient workbook is unavailable.
func DefaultCoefficients() CoefficientSet {
	return CoefficientSet{
		players.PointGuard: {
			Points: 0.86, ThreePMade: 0.39, Assists: 0.72, Turnovers: -0.88,
			OffRebounds: 0.60, DefRebounds: 0.15, Steals: 1.77, Blocks: 0.58,
			Fouls: -0.21, FGAttempted: -0.56, FTAttempted: -0.24,
		},
		players.ShootingGuard: {
			Points: 0.88, ThreePMade: 0.42, Assists: 0.68, Turnovers: -0.85,
			OffRebounds: 0.58, DefRebounds: 0.14, Steals: 1.72, Blocks: 0.62,
			Fouls: -0.22, FGAttempted: -0.58, FTAttempted: -0.25,
		},
		players.SmallForward: {
			Points: 0.85, ThreePMade: 0.40, Assists: 0.65, Turnovers: -0.82,
			OffRebounds: 0.55, DefRebounds: 0.18, Steals: 1.65, Blocks: 0.75,
			Fouls: -0.24, FGAttempted: -0.55, FTAttempted: -0.23,
		},
		players.PowerForward: {
			Points: 0.82, ThreePMade: 0.45, Assists: 0.70, Turnovers: -0.80,
			OffRebounds: 0.50, DefRebounds: 0.20, Steals: 1.60, Blocks: 0.85,
			Fouls: -0.26, FGAttempted: -0.52, FTAttempted: -0.22,
		},
		players.Center: {
			Points: 0.80, ThreePMade: 0.50, Assists: 0.74, Turnovers: -0.78,
			OffRebounds: 0.45, DefRebounds: 0.22, Steals: 1.55, Blocks: 0.90,
			Fouls: -0.28, FGAttempted: -0.50, FTAttempted: -0.20,
		},
	}
}

// ForPosition returns the coefficient row for pos. Unknown positions fall
// back to the point-guard row.
func (c CoefficientSet) ForPosition(pos players.Position) Coefficients {
	if row, ok := c[pos]; ok {
		return row
	}
	return c[players.PointGuard]
}

// BoxPlusMinus computes the position-weighted linear impact estimate for a
// single row.
func BoxPlusMinus(p players.Player, c CoefficientSet) float64 {
	row := c.ForPosition(p.Pos)
	return p.Points*row.Points +
		p.ThreePMade*row.ThreePMade +
		p.Assists*row.Assists +
		p.Turnovers*row.Turnovers +
		p.OffRebounds*row.OffRebounds +
		p.DefRebounds*row.DefRebounds +
		p.Steals*row.Steals +
		p.Blocks*row.Blocks +
		p.Fouls*row.Fouls +
		p.FGAttempted*row.FGAttempted +
		p.FTAttempted*row.FTAttempted
}
