package testutil

import (
	"time"

	appplayers "nba-fantasy-service/internal/app/players"
	"nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/store"
)

// NewServiceWithPlayers builds a query service backed by an in-memory store
// preloaded with the given enriched rows.
func NewServiceWithPlayers(rows []players.Player) *appplayers.Service {
	ps := store.NewPlayerStore()
	if len(rows) > 0 {
		ps.SetPlayers(rows, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	}
	return appplayers.NewService(ps)
}
