package service

import (
	"context"
	"fmt"
	"log"

	"github.com/crispwatch/media-gateway/internal/domain"
)

const trendingList = "trending"

// categoryLists names the provider's curated lists per category.
var categoryLists = map[domain.Category]map[string]bool{
	domain.CategoryMovie: {
		"now_playing": true,
		"popular":     true,
		"top_rated":   true,
		"upcoming":    true,
	},
	domain.CategoryTV: {
		"airing_today": true,
		"on_the_air":   true,
		"popular":      true,
		"top_rated":    true,
	},
}

// FeedResult carries a discover feed plus whether it came from cache.
type FeedResult struct {
	Items    []domain.ContentSummary
	CacheHit bool
}

// GetTrending returns the daily trending feed for a category, read-through
// cached.
func (s *Service) GetTrending(ctx context.Context, category domain.Category) (*FeedResult, error) {
	if _, err := domain.ParseCategory(string(category)); err != nil {
		return nil, err
	}
	return s.cachedFeed(ctx, category, trendingList, func(ctx context.Context) ([]domain.ContentSummary, error) {
		return s.upstream.Trending(ctx, category)
	})
}

// GetCategoryList returns one of the provider's curated lists for a category,
// read-through cached. The list name must belong to the category.
func (s *Service) GetCategoryList(ctx context.Context, category domain.Category, list string) (*FeedResult, error) {
	if _, err := domain.ParseWatchCategory(string(category)); err != nil {
		return nil, err
	}
	if !categoryLists[category][list] {
		return nil, fmt.Errorf("%w: %q for %s", domain.ErrInvalidList, list, category)
	}
	return s.cachedFeed(ctx, category, list, func(ctx context.Context) ([]domain.ContentSummary, error) {
		return s.upstream.List(ctx, category, list)
	})
}

// cachedFeed wraps an upstream fetch with the redis read-through. Cache
// errors are logged and swallowed; only the upstream fetch can fail the call.
func (s *Service) cachedFeed(ctx context.Context, category domain.Category, list string, fetch func(context.Context) ([]domain.ContentSummary, error)) (*FeedResult, error) {
	if s.cache != nil {
		cached, found, err := s.cache.GetList(ctx, category, list)
		if err != nil {
			log.Printf("[discover] cache get error for %s/%s: %v", category, list, err)
		}
		if found {
			return &FeedResult{Items: cached, CacheHit: true}, nil
		}
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s/%s: %w", category, list, err)
	}
	if items == nil {
		items = []domain.ContentSummary{}
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, category, list, items); err != nil {
			log.Printf("[discover] cache set error for %s/%s: %v", category, list, err)
		}
	}
	return &FeedResult{Items: items}, nil
}
