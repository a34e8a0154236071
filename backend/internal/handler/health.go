package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/kebab-dev/kebab/shared/api"
	"github.com/kebab-dev/kebab/shared/logger"
	"github.com/kebab-dev/kebab/shared/utils"
)

// now is replaced in tests.
var now = time.Now

// Health is a liveness probe endpoint. It does not touch the store.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Timestamp: now().UTC()})
}

// Ready is a readiness probe endpoint.
// Returns 503 Service Unavailable if the database cannot be reached.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("readiness check failed", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, api.HealthResponse{Status: "database unavailable", Timestamp: now().UTC()})
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Timestamp: now().UTC()})
}
