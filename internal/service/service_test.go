package service

import (
	"context"
	"errors"
	"sync"

	"github.com/crispwatch/media-gateway/internal/domain"
)

// fakeUpstream lets each test script the provider per endpoint.
type fakeUpstream struct {
	searchFn   func(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error)
	detailsFn  func(ctx context.Context, category domain.Category, id int64) (*domain.ContentDetail, error)
	videosFn   func(ctx context.Context, category domain.Category, id int64) ([]domain.Trailer, error)
	similarFn  func(ctx context.Context, category domain.Category, id int64) ([]domain.ContentSummary, error)
	trendingFn func(ctx context.Context, category domain.Category) ([]domain.ContentSummary, error)
	listFn     func(ctx context.Context, category domain.Category, list string) ([]domain.ContentSummary, error)
}

var errNotScripted = errors.New("endpoint not scripted")

func (f *fakeUpstream) Search(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error) {
	if f.searchFn == nil {
		return nil, errNotScripted
	}
	return f.searchFn(ctx, category, query)
}

func (f *fakeUpstream) Details(ctx context.Context, category domain.Category, id int64) (*domain.ContentDetail, error) {
	if f.detailsFn == nil {
		return nil, errNotScripted
	}
	return f.detailsFn(ctx, category, id)
}

func (f *fakeUpstream) Videos(ctx context.Context, category domain.Category, id int64) ([]domain.Trailer, error) {
	if f.videosFn == nil {
		return nil, errNotScripted
	}
	return f.videosFn(ctx, category, id)
}

func (f *fakeUpstream) Similar(ctx context.Context, category domain.Category, id int64) ([]domain.ContentSummary, error) {
	if f.similarFn == nil {
		return nil, errNotScripted
	}
	return f.similarFn(ctx, category, id)
}

func (f *fakeUpstream) Trending(ctx context.Context, category domain.Category) ([]domain.ContentSummary, error) {
	if f.trendingFn == nil {
		return nil, errNotScripted
	}
	return f.trendingFn(ctx, category)
}

func (f *fakeUpstream) List(ctx context.Context, category domain.Category, list string) ([]domain.ContentSummary, error) {
	if f.listFn == nil {
		return nil, errNotScripted
	}
	return f.listFn(ctx, category, list)
}

// memStore is an in-memory HistoryStore with the same semantics as the
// postgres implementation: atomic dedup on (external id, category), append
// order preserved, category-blind removal.
type memStore struct {
	mu        sync.Mutex
	entries   map[int64][]domain.HistoryEntry
	appendErr error
	listErr   error
	removeErr error
	appends   int
}

func newMemStore() *memStore {
	return &memStore{entries: map[int64][]domain.HistoryEntry{}}
}

func (s *memStore) AppendHistory(ctx context.Context, userID int64, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appends++
	if s.appendErr != nil {
		return s.appendErr
	}
	for _, e := range s.entries[userID] {
		if e.ExternalID == entry.ExternalID && e.Category == entry.Category {
			return nil // first write wins
		}
	}
	s.entries[userID] = append(s.entries[userID], entry)
	return nil
}

func (s *memStore) ListHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.HistoryEntry, len(s.entries[userID]))
	copy(out, s.entries[userID])
	return out, nil
}

func (s *memStore) RemoveHistory(ctx context.Context, userID, externalID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeErr != nil {
		return s.removeErr
	}
	kept := s.entries[userID][:0]
	for _, e := range s.entries[userID] {
		if e.ExternalID != externalID {
			kept = append(kept, e)
		}
	}
	s.entries[userID] = kept
	return nil
}

// fakeCache records discover-feed lookups.
type fakeCache struct {
	mu     sync.Mutex
	data   map[string][]domain.ContentSummary
	getErr error
	setErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]domain.ContentSummary{}}
}

func (c *fakeCache) GetList(ctx context.Context, category domain.Category, list string) ([]domain.ContentSummary, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	items, ok := c.data[string(category)+"/"+list]
	return items, ok, nil
}

func (c *fakeCache) SetList(ctx context.Context, category domain.Category, list string, items []domain.ContentSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.data[string(category)+"/"+list] = items
	return nil
}

func strptr(s string) *string { return &s }
