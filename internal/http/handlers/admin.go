package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nba-fantasy-service/internal/logging"
)

// RefreshFunc triggers a synchronous pipeline refresh.
type RefreshFunc func(ctx context.Context) error

// AdminHandler exposes admin-only endpoints (forced refresh).
type AdminHandler struct {
	refresh RefreshFunc
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresh RefreshFunc, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresh: refresh,
		token:   token,
		logger:  logger,
	}
}

// Refresh reruns the load/derive pipeline immediately.
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresh == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	start := time.Now()
	if err := h.refresh(r.Context()); err != nil {
		logging.Error(logger, "admin refresh failed", err)
		writeError(w, r, http.StatusBadGateway, "refresh failed", h.logger)
		return
	}
	logging.Info(logger, "admin refresh complete",
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"}, h.logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ") == h.token
	}
	return r.Header.Get("X-Admin-Token") == h.token
}
