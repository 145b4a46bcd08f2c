package service

import (
	"context"

	"github.com/crispwatch/media-gateway/internal/domain"
)

// Upstream is the slice of the metadata provider client the services consume.
type Upstream interface {
	Search(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error)
	Details(ctx context.Context, category domain.Category, id int64) (*domain.ContentDetail, error)
	Videos(ctx context.Context, category domain.Category, id int64) ([]domain.Trailer, error)
	Similar(ctx context.Context, category domain.Category, id int64) ([]domain.ContentSummary, error)
	Trending(ctx context.Context, category domain.Category) ([]domain.ContentSummary, error)
	List(ctx context.Context, category domain.Category, list string) ([]domain.ContentSummary, error)
}

// HistoryStore is the per-user history collection. Append must be atomic with
// respect to the (user, external id, category) dedup key.
type HistoryStore interface {
	AppendHistory(ctx context.Context, userID int64, entry domain.HistoryEntry) error
	ListHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error)
	RemoveHistory(ctx context.Context, userID, externalID int64) error
}

// ListCache caches discover feeds; all cache failures are best-effort.
type ListCache interface {
	GetList(ctx context.Context, category domain.Category, list string) ([]domain.ContentSummary, bool, error)
	SetList(ctx context.Context, category domain.Category, list string, items []domain.ContentSummary) error
}

type Service struct {
	upstream Upstream
	store    HistoryStore
	cache    ListCache
}

func NewService(upstream Upstream, store HistoryStore, cache ListCache) *Service {
	return &Service{
		upstream: upstream,
		store:    store,
		cache:    cache,
	}
}
