package handler

import (
	"net/http"
	"time"

	"github.com/avelys/rolodex-go/internal/core/domain"
)

// handleHealth handles GET /health. Liveness only: a response at all
// means the process is up.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleReady handles GET /ready. Readiness also exercises the storage
// path, so a store that failed to load reports 503 here while /health
// stays green.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if _, err := h.bookSvc.List(r.Context()); err != nil {
		h.logger.Warn("readiness probe failed", "error", err)
		h.writeError(w, r, http.StatusServiceUnavailable,
			domain.ErrStorageUnavailable.Code, "storage not ready")
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
