package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/crispwatch/media-gateway/internal/domain"
	"github.com/go-chi/chi/v5"
)

func contentParams(r *http.Request) (domain.Category, int64, bool) {
	category, err := domain.ParseWatchCategory(chi.URLParam(r, "category"))
	if err != nil {
		return "", 0, false
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return "", 0, false
	}
	return category, id, true
}

// GET /api/v1/{category}/{id}/watch
func (h *Handler) GetWatchBundle(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	category, id, ok := contentParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid category or id parameter")
		return
	}

	bundle, err := h.service.GetWatchBundle(r.Context(), category, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, WatchResponse{
		Success:  true,
		Details:  bundle.Details,
		Trailers: bundle.Trailers,
		Similar:  bundle.Similar,
	})
}

// GET /api/v1/{category}/{id}/details
func (h *Handler) GetDetails(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	category, id, ok := contentParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid category or id parameter")
		return
	}

	details, err := h.service.GetDetails(r.Context(), category, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DetailsResponse{Success: true, Content: details})
}

// GET /api/v1/{category}/{id}/trailers
func (h *Handler) GetTrailers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	category, id, ok := contentParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid category or id parameter")
		return
	}

	trailers, err := h.service.GetTrailers(r.Context(), category, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TrailersResponse{Success: true, Trailers: trailers})
}

// GET /api/v1/{category}/{id}/similar
func (h *Handler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	category, id, ok := contentParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid category or id parameter")
		return
	}

	similar, err := h.service.GetSimilar(r.Context(), category, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SimilarResponse{Success: true, Similar: similar})
}

// GET /api/v1/{category}/trending
func (h *Handler) GetTrending(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	category, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid category parameter")
		return
	}

	feed, err := h.service.GetTrending(r.Context(), category)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeFeed(w, feed.Items, feed.CacheHit)
}

// GET /api/v1/{category}/category/{list}
func (h *Handler) GetCategoryList(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	category, err := domain.ParseWatchCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid category parameter")
		return
	}

	feed, err := h.service.GetCategoryList(r.Context(), category, chi.URLParam(r, "list"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeFeed(w, feed.Items, feed.CacheHit)
}

func writeFeed(w http.ResponseWriter, items []domain.ContentSummary, cacheHit bool) {
	writeJSON(w, http.StatusOK, FeedResponse{
		Success: true,
		Content: items,
		Metadata: FeedMeta{
			CacheHit:    cacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(items),
		},
	})
}
