package handler

import "github.com/crispwatch/media-gateway/internal/domain"

type SearchResponse struct {
	Success bool                    `json:"success"`
	Content []domain.ContentSummary `json:"content"`
}

type HistoryResponse struct {
	Success bool                  `json:"success"`
	Content []domain.HistoryEntry `json:"content"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DetailsResponse struct {
	Success bool                  `json:"success"`
	Content *domain.ContentDetail `json:"content"`
}

type TrailersResponse struct {
	Success  bool             `json:"success"`
	Trailers []domain.Trailer `json:"trailers"`
}

type SimilarResponse struct {
	Success bool                    `json:"success"`
	Similar []domain.ContentSummary `json:"similar"`
}

type WatchResponse struct {
	Success  bool                    `json:"success"`
	Details  *domain.ContentDetail   `json:"details"`
	Trailers []domain.Trailer        `json:"trailers"`
	Similar  []domain.ContentSummary `json:"similar"`
}

type FeedResponse struct {
	Success  bool                    `json:"success"`
	Content  []domain.ContentSummary `json:"content"`
	Metadata FeedMeta                `json:"metadata"`
}

type FeedMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
