package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Beingstupid4me/tmto-backend/internal/api/respond"
	"github.com/Beingstupid4me/tmto-backend/internal/domain/records"
)

// RecordsHandler serves one record collection. The same handler backs both
// the read-only and the CRUD listeners; the router decides which methods
// are exposed.
type RecordsHandler struct {
	Store *records.Store

	// Kind names the collection in error and success messages,
	// e.g. "Technology" or "Event".
	Kind string
}

func NewRecordsHandler(store *records.Store, kind string) *RecordsHandler {
	return &RecordsHandler{Store: store, Kind: kind}
}

// List handles GET /<collection>.
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Store.List())
}

// Get handles GET /<collection>/{id}.
func (h *RecordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.Store.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, h.notFoundMessage())
			return
		}
		respond.Message(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, record)
}

// Create handles POST /<collection>. The body may be any JSON object;
// empty-string and empty-array fields are dropped before storage.
func (h *RecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body records.Record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	created, err := h.Store.Insert(body)
	if err != nil {
		respond.Message(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

// Update handles PUT /<collection>/{id}. Fields present in the body
// overwrite the stored record; the id never changes.
func (h *RecordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body records.Record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	updated, err := h.Store.Update(r.PathValue("id"), body)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, h.notFoundMessage())
			return
		}
		respond.Message(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /<collection>/{id}.
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.PathValue("id")); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, h.notFoundMessage())
			return
		}
		respond.Message(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.Message(w, r, http.StatusOK, fmt.Sprintf("%s deleted successfully", h.Kind))
}

func (h *RecordsHandler) notFoundMessage() string {
	return fmt.Sprintf("%s not found", h.Kind)
}
