package testutil

import (
	"context"
	"sync"

	"nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/stats"
)

// StubProvider is a StatsProvider with scripted responses. Safe for
// concurrent fetches.
type StubProvider struct {
	mu sync.Mutex

	Players    []players.Player
	PlayersErr error

	Coefficients    stats.CoefficientSet
	CoefficientsErr error

	playerCalls int
	coeffCalls  int
}

func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerCalls++
	if s.PlayersErr != nil {
		return nil, s.PlayersErr
	}
	return s.Players, nil
}

func (s *StubProvider) FetchCoefficients(ctx context.Context) (stats.CoefficientSet, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coeffCalls++
	if s.CoefficientsErr != nil {
		return nil, s.CoefficientsErr
	}
	if s.Coefficients != nil {
		return s.Coefficients, nil
	}
	return stats.DefaultCoefficients(), nil
}

// PlayerCalls reports how many times FetchPlayers has run.
func (s *StubProvider) PlayerCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerCalls
}

// CoeffCalls reports how many times FetchCoefficients has run.
func (s *StubProvider) CoeffCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coeffCalls
}
