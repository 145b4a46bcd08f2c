package handler

import (
	"net/http"

	"github.com/crispwatch/media-gateway/internal/domain"
	"github.com/go-chi/chi/v5"
)

// GET /api/v1/search/{category}/{query}
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	category, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid category parameter")
		return
	}

	results, err := h.service.Search(r.Context(), user.ID, category, chi.URLParam(r, "query"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{Success: true, Content: results})
}

// GET /api/v1/search/history
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	entries, err := h.service.GetHistory(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Success: true, Content: entries})
}

// DELETE /api/v1/search/history/{id}
func (h *Handler) DeleteHistoryItem(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteHistoryItem(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Item removed from search history"})
}
