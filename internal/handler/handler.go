package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crispwatch/media-gateway/internal/auth"
	"github.com/crispwatch/media-gateway/internal/domain"
	"github.com/crispwatch/media-gateway/internal/repository"
	"github.com/crispwatch/media-gateway/internal/service"
	"github.com/crispwatch/media-gateway/internal/tmdb"
)

type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// requireUser pulls the authenticated identity injected by the auth middleware.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return nil, false
	}
	return user, true
}

// handleServiceError maps domain and infrastructure errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyQuery),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidList):
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
	case service.IsNoResults(err):
		writeError(w, http.StatusNotFound, "no_results", "No results found")
	case tmdb.Kind(err) == tmdb.KindNotFound:
		writeError(w, http.StatusNotFound, "not_found", "Content not found")
	case tmdb.IsUpstreamError(err):
		// one generic failure for every other upstream kind
		writeError(w, http.StatusBadGateway, "upstream_error", "Metadata provider request failed")
	case repository.IsPersistenceError(err):
		writeError(w, http.StatusInternalServerError, "storage_error", "Storage is unavailable")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "Request timed out, please try again")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
