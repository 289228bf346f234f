package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avelys/rolodex-go/internal/core/domain"
	"github.com/avelys/rolodex-go/internal/core/service"
	"github.com/avelys/rolodex-go/internal/telemetry/logger"
)

// Handler is the main HTTP handler that routes requests to appropriate
// handlers.
type Handler struct {
	bookSvc    *service.BookService
	contactSvc *service.ContactService
	logger     logger.Logger
	mux        *http.ServeMux
}

// New creates a new Handler with the given services.
func New(bookSvc *service.BookService, contactSvc *service.ContactService, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	h := &Handler{
		bookSvc:    bookSvc,
		contactSvc: contactSvc,
		logger:     log,
		mux:        http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoints
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// Address book endpoints
	h.mux.HandleFunc("GET /addressBooks", h.handleListBooks)
	h.mux.HandleFunc("POST /addressBooks/{bookName}", h.handleCreateBook)

	// Contact endpoints
	h.mux.HandleFunc("POST /addressBooks/{bookName}/contacts", h.handleAddContact)
	h.mux.HandleFunc("GET /addressBooks/{bookName}/contacts", h.handleListContacts)
	h.mux.HandleFunc("GET /addressBooks/{bookName}/contacts/sorted", h.handleListSorted)
	h.mux.HandleFunc("GET /addressBooks/{bookName}/contacts/search", h.handleSearchContacts)
	h.mux.HandleFunc("GET /addressBooks/{bookName}/contacts/countByLocation", h.handleCountByLocation)
	h.mux.HandleFunc("PUT /addressBooks/{bookName}/contacts/{contactName}", h.handleUpdateContact)
	h.mux.HandleFunc("DELETE /addressBooks/{bookName}/contacts/{contactName}", h.handleDeleteContact)
}

// writeJSON writes a JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response",
			"request_id", logger.RequestIDFromContext(r.Context()),
			"error", err)
	}
}

// writeError writes an error response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Code: code, Message: message})
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsDomainError(err, "") {
		code := domain.GetErrorCode(err)
		h.writeError(w, r, errorCodeToHTTPStatus(code), code, err.Error())
		return
	}

	logger.L(r.Context()).Error("internal error", "error", err)
	h.writeError(w, r, http.StatusInternalServerError, domain.ErrInternalServer.Code, "internal server error")
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4090"):
		// Duplicates surface as bad requests, not conflicts.
		return http.StatusBadRequest
	case strings.HasSuffix(code, "-4290"):
		return http.StatusTooManyRequests
	case strings.HasSuffix(code, "-4001"), strings.HasSuffix(code, "-4000"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "RX-ARG-"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "RX-SYS-5"):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
