package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	appplayers "nba-fantasy-service/internal/app/players"
	domainplayers "nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/logging"
	"nba-fantasy-service/internal/refresher"
)

// RankingDefaults carries the configured ranking fallbacks, applied when a
// /rankings request omits the corresponding query params.
type RankingDefaults struct {
	MinGames int
	Strategy appplayers.RankStrategy
}

// Handler wires HTTP routes to the query service.
type Handler struct {
	svc      *appplayers.Service
	logger   *slog.Logger
	statusFn func() refresher.Status
	ranking  RankingDefaults
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appplayers.Service, logger *slog.Logger, statusFn func() refresher.Status, ranking RankingDefaults) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
		ranking:  ranking,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Players returns the enriched table, optionally filtered by query params.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.svc.Loaded() {
		writeUnavailable(w, r, h.logger)
		return
	}

	params, err := filterParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	rows, err := h.svc.Filter(params)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served players", logging.FieldCount, len(rows))

	writeJSON(w, http.StatusOK, domainplayers.TableResponse{
		LoadedAt: h.svc.LoadedAt().UTC().Format(time.RFC3339),
		Count:    len(rows),
		Players:  rows,
	}, h.logger)
}

// PlayerByName serves /players/{name} and /players/{name}/similar.
func (h *Handler) PlayerByName(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/players/")
	wantSimilar := false
	if strings.HasSuffix(rest, "/similar") {
		wantSimilar = true
		rest = strings.TrimSuffix(rest, "/similar")
	}
	name, err := url.PathUnescape(rest)
	if err != nil || name == "" || strings.Contains(name, "/") {
		writeError(w, r, http.StatusBadRequest, "invalid player name", h.logger)
		return
	}

	if !h.svc.Loaded() {
		writeUnavailable(w, r, h.logger)
		return
	}

	if wantSimilar {
		limit := queryInt(r.URL.Query(), "limit", 0)
		similar, ok := h.svc.Similar(name, limit)
		if !ok {
			writeError(w, r, http.StatusNotFound, "player not found", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, similar, h.logger)
		return
	}

	player, ok := h.svc.PlayerByName(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, player, h.logger)
}

// Rankings returns the fantasy ranking for the current table.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.svc.Loaded() {
		writeUnavailable(w, r, h.logger)
		return
	}

	query := r.URL.Query()
	strategy := appplayers.RankStrategy(query.Get("strategy"))
	if strategy == "" {
		strategy = h.ranking.Strategy
	}
	params := appplayers.RankParams{
		MinGames: queryInt(query, "minGames", h.ranking.MinGames),
		Strategy: strategy,
		Weights:  weightsFromQuery(query),
	}
	ranked, err := h.svc.Rank(params)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ranked, h.logger)
}

// TeamStats returns per-team fantasy aggregates.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.svc.Loaded() {
		writeUnavailable(w, r, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.TeamStats(), h.logger)
}

// PositionStats returns per-position aggregates.
func (h *Handler) PositionStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.svc.Loaded() {
		writeUnavailable(w, r, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.PositionStats(), h.logger)
}

// League returns league-wide averages.
func (h *Handler) League(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.svc.Loaded() {
		writeUnavailable(w, r, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.League(), h.logger)
}

// Leaders returns the top players by a named metric.
func (h *Handler) Leaders(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.svc.Loaded() {
		writeUnavailable(w, r, h.logger)
		return
	}

	query := r.URL.Query()
	metric := query.Get("metric")
	if metric == "" {
		metric = "fantasy"
	}
	leaders, err := h.svc.Leaders(metric, queryInt(query, "limit", 0))
	if err != nil {
		if errors.Is(err, appplayers.ErrUnknownMetric) {
			writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "leaders query failed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, leaders, h.logger)
}

// FilterOptions returns the value domains for UI filter controls.
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.svc.Loaded() {
		writeUnavailable(w, r, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.FilterOptions(), h.logger)
}
