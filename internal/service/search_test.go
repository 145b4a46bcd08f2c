package service

import (
	"context"
	"errors"
	"testing"

	"github.com/crispwatch/media-gateway/internal/domain"
	"github.com/crispwatch/media-gateway/internal/repository"
	"github.com/crispwatch/media-gateway/internal/tmdb"
)

func inceptionUpstream() *fakeUpstream {
	return &fakeUpstream{
		searchFn: func(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error) {
			return []domain.ContentSummary{
				{ID: 27205, Title: "Inception", PosterPath: strptr("/abc.jpg")},
				{ID: 64956, Title: "Inception: The Cobol Job", PosterPath: strptr("/xyz.jpg")},
			}, nil
		},
	}
}

func TestSearchRecordsPrimaryResult(t *testing.T) {
	store := newMemStore()
	svc := NewService(inceptionUpstream(), store, nil)

	results, err := svc.Search(context.Background(), 1, domain.CategoryMovie, "Inception")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// the caller gets the full result set, not just the primary
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	history, _ := store.ListHistory(context.Background(), 1)
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	entry := history[0]
	if entry.ExternalID != 27205 {
		t.Errorf("externalID = %d, want 27205", entry.ExternalID)
	}
	if entry.Category != domain.CategoryMovie {
		t.Errorf("category = %s, want movie", entry.Category)
	}
	if entry.Title != "Inception" {
		t.Errorf("title = %q, want Inception", entry.Title)
	}
	if entry.ImagePath == nil || *entry.ImagePath != "/abc.jpg" {
		t.Errorf("imagePath = %v, want /abc.jpg", entry.ImagePath)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
}

func TestSearchDedup(t *testing.T) {
	store := newMemStore()
	svc := NewService(inceptionUpstream(), store, nil)

	for i := 0; i < 2; i++ {
		if _, err := svc.Search(context.Background(), 1, domain.CategoryMovie, "Inception"); err != nil {
			t.Fatalf("search %d failed: %v", i, err)
		}
	}

	history, _ := store.ListHistory(context.Background(), 1)
	if len(history) != 1 {
		t.Errorf("expected 1 entry after repeated search, got %d", len(history))
	}
}

func TestSearchSameIDDifferentCategory(t *testing.T) {
	store := newMemStore()
	upstream := &fakeUpstream{
		searchFn: func(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error) {
			return []domain.ContentSummary{{ID: 42, Title: "Answer", Name: "Answer"}}, nil
		},
	}
	svc := NewService(upstream, store, nil)

	svc.Search(context.Background(), 1, domain.CategoryMovie, "answer")
	svc.Search(context.Background(), 1, domain.CategoryTV, "answer")

	history, _ := store.ListHistory(context.Background(), 1)
	if len(history) != 2 {
		t.Errorf("same id in two categories should give 2 entries, got %d", len(history))
	}
}

func TestSearchPersonUsesNameAndProfile(t *testing.T) {
	store := newMemStore()
	upstream := &fakeUpstream{
		searchFn: func(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error) {
			return []domain.ContentSummary{
				{ID: 6193, Name: "Leonardo DiCaprio", ProfilePath: strptr("/leo.jpg"), PosterPath: strptr("/wrong.jpg")},
			}, nil
		},
	}
	svc := NewService(upstream, store, nil)

	if _, err := svc.Search(context.Background(), 7, domain.CategoryPerson, "dicaprio"); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	history, _ := store.ListHistory(context.Background(), 7)
	if len(history) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(history))
	}
	if history[0].Title != "Leonardo DiCaprio" {
		t.Errorf("title = %q, want name field", history[0].Title)
	}
	if history[0].ImagePath == nil || *history[0].ImagePath != "/leo.jpg" {
		t.Errorf("imagePath = %v, want profile path", history[0].ImagePath)
	}
}

func TestSearchValidation(t *testing.T) {
	store := newMemStore()
	svc := NewService(inceptionUpstream(), store, nil)

	if _, err := svc.Search(context.Background(), 1, domain.CategoryMovie, "   "); !errors.Is(err, domain.ErrEmptyQuery) {
		t.Errorf("blank query: expected ErrEmptyQuery, got %v", err)
	}
	if _, err := svc.Search(context.Background(), 1, domain.Category("book"), "dune"); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Errorf("bad category: expected ErrInvalidCategory, got %v", err)
	}
	if store.appends != 0 {
		t.Errorf("validation failures must not touch the store, got %d appends", store.appends)
	}
}

func TestSearchNoResults(t *testing.T) {
	store := newMemStore()
	upstream := &fakeUpstream{
		searchFn: func(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error) {
			return []domain.ContentSummary{}, nil
		},
	}
	svc := NewService(upstream, store, nil)

	_, err := svc.Search(context.Background(), 1, domain.CategoryTV, "zzzznoresults")
	if !errors.Is(err, domain.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
	if !IsNoResults(err) {
		t.Error("IsNoResults should report true")
	}

	history, _ := store.ListHistory(context.Background(), 1)
	if len(history) != 0 {
		t.Errorf("history must stay unchanged on empty result, got %d entries", len(history))
	}
}

func TestSearchUpstreamNotFoundIsNoResults(t *testing.T) {
	upstream := &fakeUpstream{
		searchFn: func(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error) {
			return nil, &tmdb.UpstreamError{Kind: tmdb.KindNotFound, StatusCode: 404, Path: "/search/tv"}
		},
	}
	svc := NewService(upstream, newMemStore(), nil)

	if _, err := svc.Search(context.Background(), 1, domain.CategoryTV, "x"); !errors.Is(err, domain.ErrNoResults) {
		t.Errorf("upstream 404 should map to ErrNoResults, got %v", err)
	}
}

func TestSearchUpstreamFailurePropagates(t *testing.T) {
	upstream := &fakeUpstream{
		searchFn: func(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error) {
			return nil, &tmdb.UpstreamError{Kind: tmdb.KindRateLimited, StatusCode: 429, Path: "/search/movie"}
		},
	}
	svc := NewService(upstream, newMemStore(), nil)

	_, err := svc.Search(context.Background(), 1, domain.CategoryMovie, "dune")
	if !tmdb.IsUpstreamError(err) {
		t.Fatalf("expected wrapped UpstreamError, got %v", err)
	}
	if tmdb.Kind(err) != tmdb.KindRateLimited {
		t.Errorf("kind = %s, want rate_limited", tmdb.Kind(err))
	}
}

func TestSearchHistoryFailureIsNonFatal(t *testing.T) {
	store := newMemStore()
	store.appendErr = &repository.PersistenceError{Op: "append history", Err: errors.New("connection refused")}
	svc := NewService(inceptionUpstream(), store, nil)

	results, err := svc.Search(context.Background(), 1, domain.CategoryMovie, "Inception")
	if err != nil {
		t.Fatalf("search must not fail when the history write fails: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected full result set despite history failure, got %d", len(results))
	}
	if store.appends != 1 {
		t.Errorf("append should have been attempted once, got %d", store.appends)
	}
}
