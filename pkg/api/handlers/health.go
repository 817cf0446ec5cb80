package handlers

import (
	"net/http"
	"time"

	"github.com/marmos91/storefront/pkg/store"
)

// HealthHandler handles liveness and readiness probes.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new HealthHandler.
// store may be nil; readiness then only reports process liveness.
func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// HealthResponse is the body of health probe responses.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

// Liveness handles GET /health.
// Always returns 200 while the process is serving requests.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	WriteJSONOK(w, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// Readiness handles GET /health/ready.
// Checks database connectivity.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "unhealthy",
				Timestamp: time.Now().UTC(),
				Error:     "database unreachable",
			})
			return
		}
	}

	WriteJSONOK(w, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
