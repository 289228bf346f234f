package handler

import (
	"net/http"

	"github.com/avelys/rolodex-go/internal/core/service"
)

// handleCreateBook handles POST /addressBooks/{bookName}.
func (h *Handler) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	bookName := r.PathValue("bookName")

	err := h.bookSvc.Create(r.Context(), &service.CreateBookRequest{Name: bookName})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, messageResponse{
		Message: "address book " + bookName + " created",
	})
}

// handleListBooks handles GET /addressBooks.
func (h *Handler) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookSvc.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, books)
}
