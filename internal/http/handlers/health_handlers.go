package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, StatusResponse{Status: "ok"})
}

// ReadyHandler godoc
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 503 {object} ErrorResponse
// @Router /ready [get]
func ReadyHandler(w http.ResponseWriter, r *http.Request) {
	if readinessCheck != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := readinessCheck(ctx); err != nil {
			zap.L().Warn("readiness check failed", zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, "Database not ready")
			return
		}
	}
	respond(w, r, http.StatusOK, StatusResponse{Status: "ready"})
}
