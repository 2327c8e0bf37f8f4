package http

import (
	nethttp "net/http"

	"nba-fantasy-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/", handler.PlayerByName)
	mux.HandleFunc("/rankings", handler.Rankings)
	mux.HandleFunc("/stats/teams", handler.TeamStats)
	mux.HandleFunc("/stats/positions", handler.PositionStats)
	mux.HandleFunc("/stats/league", handler.League)
	mux.HandleFunc("/stats/leaders", handler.Leaders)
	mux.HandleFunc("/filters/options", handler.FilterOptions)
	return mux
}
