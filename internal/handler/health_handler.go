package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/parworldgolf/storefront-backend/internal/session"
)

// HealthChecker is anything that can report its own health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	sessions session.Store
	catalog  HealthChecker
	database HealthChecker
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler. Any dependency may be nil,
// in which case it is reported as not configured.
func NewHealthHandler(sessions session.Store, catalog, database HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		sessions: sessions,
		catalog:  catalog,
		database: database,
		logger:   logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string),
	}

	h.check(ctx, &response, "session_store", h.sessions)
	h.check(ctx, &response, "catalog", h.catalog)
	h.check(ctx, &response, "database", h.database)

	if response.Status == "healthy" {
		respondSuccess(w, response)
	} else {
		respondJSON(w, http.StatusServiceUnavailable, response)
	}
}

func (h *HealthHandler) check(ctx context.Context, response *HealthResponse, name string, dep HealthChecker) {
	if dep == nil {
		response.Services[name] = "not_configured"
		return
	}

	if err := dep.Health(ctx); err != nil {
		h.logger.Error("health check failed",
			slog.String("service", name),
			slog.String("error", err.Error()),
		)
		response.Status = "unhealthy"
		response.Services[name] = "unhealthy"
		return
	}

	response.Services[name] = "healthy"
}
