package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avelys/rolodex-go/internal/core/domain"
	"github.com/avelys/rolodex-go/internal/core/service"
)

// handleAddContact handles POST /addressBooks/{bookName}/contacts.
func (h *Handler) handleAddContact(w http.ResponseWriter, r *http.Request) {
	bookName := r.PathValue("bookName")

	var contact domain.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		h.writeError(w, r, http.StatusBadRequest, domain.ErrBadRequest.Code, "invalid request body")
		return
	}

	stored, err := h.contactSvc.Add(r.Context(), &service.AddContactRequest{
		Book:    bookName,
		Contact: contact,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, contactResponse{
		Message: "contact added",
		Contact: stored,
	})
}

// handleListContacts handles GET /addressBooks/{bookName}/contacts.
func (h *Handler) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactSvc.List(r.Context(), r.PathValue("bookName"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, contacts)
}

// handleListSorted handles GET /addressBooks/{bookName}/contacts/sorted.
// The optional ?by= query selects the sort field.
func (h *Handler) handleListSorted(w http.ResponseWriter, r *http.Request) {
	by := service.SortBy(r.URL.Query().Get("by"))

	contacts, err := h.contactSvc.ListSorted(r.Context(), r.PathValue("bookName"), by)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, contacts)
}

// handleSearchContacts handles GET /addressBooks/{bookName}/contacts/search.
// City and state filters combine conjunctively.
func (h *Handler) handleSearchContacts(w http.ResponseWriter, r *http.Request) {
	filter := service.LocationFilter{
		City:  r.URL.Query().Get("city"),
		State: r.URL.Query().Get("state"),
	}

	contacts, err := h.contactSvc.Search(r.Context(), r.PathValue("bookName"), filter)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, contacts)
}

// handleCountByLocation handles GET /addressBooks/{bookName}/contacts/countByLocation.
func (h *Handler) handleCountByLocation(w http.ResponseWriter, r *http.Request) {
	filter := service.LocationFilter{
		City:  r.URL.Query().Get("city"),
		State: r.URL.Query().Get("state"),
	}

	result, err := h.contactSvc.CountByLocation(r.Context(), r.PathValue("bookName"), filter)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, result)
}

// handleUpdateContact handles PUT /addressBooks/{bookName}/contacts/{contactName}.
func (h *Handler) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var patch domain.ContactPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.writeError(w, r, http.StatusBadRequest, domain.ErrBadRequest.Code, "invalid request body")
		return
	}

	updated, err := h.contactSvc.Update(r.Context(), &service.UpdateContactRequest{
		Book:  r.PathValue("bookName"),
		Key:   r.PathValue("contactName"),
		Patch: &patch,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, contactResponse{
		Message: "contact updated",
		Contact: updated,
	})
}

// handleDeleteContact handles DELETE /addressBooks/{bookName}/contacts/{contactName}.
func (h *Handler) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	contactName := r.PathValue("contactName")

	err := h.contactSvc.Delete(r.Context(), r.PathValue("bookName"), contactName)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, messageResponse{
		Message: "contact " + contactName + " deleted",
	})
}
