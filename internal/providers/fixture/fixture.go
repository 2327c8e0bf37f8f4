package fixture

import (
	"context"

	"nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/stats"
)

// Provider returns a static roster useful for local testing and
// bootstrapping. It includes a mid-season trade (per-team stints plus the
// combined-team row) so the duplicate resolver is exercised end to end.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a deterministic set of raw season rows.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx

	return []players.Player{
		{
			Name: "Dana Whitfield", Team: "BOS", Pos: players.PointGuard, Age: 27, Games: 74,
			Minutes: 34.2, Points: 22.5, Rebounds: 4.1, OffRebounds: 0.7, DefRebounds: 3.4,
			Assists: 7.8, Steals: 1.3, Blocks: 0.3, Turnovers: 2.9, Fouls: 2.1,
			FGMade: 7.9, FGAttempted: 17.2, ThreePMade: 2.8, FTMade: 3.9, FTAttempted: 4.4,
			FGPct: 0.459, ThreePPct: 0.371, FTPct: 0.886,
		},
		{
			Name: "Marcus Vale", Team: "LAL", Pos: players.ShootingGuard, Age: 24, Games: 69,
			Minutes: 31.8, Points: 18.4, Rebounds: 3.6, OffRebounds: 0.9, DefRebounds: 2.7,
			Assists: 2.4, Steals: 1.6, Blocks: 0.4, Turnovers: 1.8, Fouls: 2.4,
			FGMade: 6.7, FGAttempted: 14.8, ThreePMade: 2.3, FTMade: 2.7, FTAttempted: 3.2,
			FGPct: 0.453, ThreePPct: 0.358, FTPct: 0.844,
		},
		{
			Name: "Theo Brandt", Team: "MIL", Pos: players.SmallForward, Age: 29, Games: 78,
			Minutes: 33.5, Points: 20.8, Rebounds: 6.2, OffRebounds: 1.4, DefRebounds: 4.8,
			Assists: 3.1, Steals: 0.9, Blocks: 0.7, Turnovers: 2.2, Fouls: 2.0,
			FGMade: 7.6, FGAttempted: 15.9, ThreePMade: 2.1, FTMade: 3.5, FTAttempted: 4.1,
			FGPct: 0.478, ThreePPct: 0.362, FTPct: 0.854,
		},
		{
			Name: "Jalen Okafor", Team: "DEN", Pos: players.Center, Age: 28, Games: 80,
			Minutes: 34.9, Points: 24.6, Rebounds: 12.1, OffRebounds: 2.9, DefRebounds: 9.2,
			Assists: 8.7, Steals: 1.2, Blocks: 0.8, Turnovers: 3.1, Fouls: 2.5,
			FGMade: 9.8, FGAttempted: 17.1, ThreePMade: 1.0, FTMade: 4.0, FTAttempted: 4.9,
			FGPct: 0.573, ThreePPct: 0.346, FTPct: 0.816,
		},
		{
			Name: "Rudy Castellanos", Team: "UTA", Pos: players.Center, Age: 31, Games: 66,
			Minutes: 30.6, Points: 13.2, Rebounds: 11.5, OffRebounds: 3.4, DefRebounds: 8.1,
			Assists: 1.2, Steals: 0.7, Blocks: 2.2, Turnovers: 1.7, Fouls: 3.0,
			FGMade: 5.2, FGAttempted: 7.8, ThreePMade: 0.0, FTMade: 2.8, FTAttempted: 4.3,
			FGPct: 0.664, ThreePPct: 0.0, FTPct: 0.642,
		},
		// Mid-season trade: two stints plus the combined-team aggregate.
		{
			Name: "Isaiah Mercer", Team: "CHI", Pos: players.PowerForward, Age: 26, Games: 29,
			Minutes: 28.1, Points: 14.9, Rebounds: 7.4, OffRebounds: 1.8, DefRebounds: 5.6,
			Assists: 2.0, Steals: 0.8, Blocks: 1.4, Turnovers: 1.6, Fouls: 2.7,
			FGMade: 5.8, FGAttempted: 11.3, ThreePMade: 1.1, FTMade: 2.2, FTAttempted: 2.9,
			FGPct: 0.513, ThreePPct: 0.329, FTPct: 0.759,
		},
		{
			Name: "Isaiah Mercer", Team: "PHX", Pos: players.PowerForward, Age: 26, Games: 33,
			Minutes: 30.4, Points: 16.8, Rebounds: 8.0, OffRebounds: 2.0, DefRebounds: 6.0,
			Assists: 2.3, Steals: 0.9, Blocks: 1.6, Turnovers: 1.9, Fouls: 2.6,
			FGMade: 6.4, FGAttempted: 12.1, ThreePMade: 1.3, FTMade: 2.7, FTAttempted: 3.4,
			FGPct: 0.529, ThreePPct: 0.341, FTPct: 0.794,
		},
		{
			Name: "Isaiah Mercer", Team: "2TM", Pos: players.PowerForward, Age: 26, Games: 62,
			Minutes: 29.3, Points: 15.9, Rebounds: 7.7, OffRebounds: 1.9, DefRebounds: 5.8,
			Assists: 2.2, Steals: 0.9, Blocks: 1.5, Turnovers: 1.8, Fouls: 2.6,
			FGMade: 6.1, FGAttempted: 11.7, ThreePMade: 1.2, FTMade: 2.5, FTAttempted: 3.2,
			FGPct: 0.521, ThreePPct: 0.335, FTPct: 0.781,
		},
	}, nil
}

// FetchCoefficients returns the embedded default coefficient table so the
// fixture pipeline matches production shape.
func (p *Provider) FetchCoefficients(ctx context.Context) (stats.CoefficientSet, error) {
	_ = ctx
	return stats.DefaultCoefficients(), nil
}
