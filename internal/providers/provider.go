package providers

import (
	"context"

	"nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/stats"
)

// PlayerProvider reads the raw season table. Implementations drop rows
// missing the required identity/stat fields and return the remainder
// unprocessed; the pipeline handles everything downstream.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// CoefficientProvider reads the Box Plus/Minus coefficient table.
type CoefficientProvider interface {
	FetchCoefficients(ctx context.Context) (stats.CoefficientSet, error)
}

// StatsProvider combines both source capabilities.
type StatsProvider interface {
	PlayerProvider
	CoefficientProvider
}
