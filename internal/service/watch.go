package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/crispwatch/media-gateway/internal/domain"
)

// GetWatchBundle fetches details, trailers and similar content for one title
// with a single call. The three upstream fetches run concurrently and each
// slot degrades independently: a failed fetch leaves its slot empty while the
// rest of the bundle is still delivered.
func (s *Service) GetWatchBundle(ctx context.Context, category domain.Category, contentID int64) (*domain.WatchBundle, error) {
	if _, err := domain.ParseWatchCategory(string(category)); err != nil {
		return nil, err
	}
	if contentID <= 0 {
		return nil, domain.ErrInvalidID
	}

	bundle := &domain.WatchBundle{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		details, err := s.upstream.Details(ctx, category, contentID)
		if err != nil {
			log.Printf("[watch] details error for %s/%d: %v", category, contentID, err)
			return
		}
		mu.Lock()
		bundle.Details = details
		mu.Unlock()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		trailers, err := s.upstream.Videos(ctx, category, contentID)
		if err != nil {
			log.Printf("[watch] trailers error for %s/%d: %v", category, contentID, err)
			return
		}
		mu.Lock()
		bundle.Trailers = trailers
		mu.Unlock()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		similar, err := s.upstream.Similar(ctx, category, contentID)
		if err != nil {
			log.Printf("[watch] similar error for %s/%d: %v", category, contentID, err)
			return
		}
		mu.Lock()
		bundle.Similar = similar
		mu.Unlock()
	}()

	wg.Wait()

	// Nil slices become empty arrays in JSON
	if bundle.Trailers == nil {
		bundle.Trailers = []domain.Trailer{}
	}
	if bundle.Similar == nil {
		bundle.Similar = []domain.ContentSummary{}
	}
	return bundle, nil
}

// GetDetails is the single-slot passthrough behind /{category}/{id}/details.
func (s *Service) GetDetails(ctx context.Context, category domain.Category, contentID int64) (*domain.ContentDetail, error) {
	if _, err := domain.ParseWatchCategory(string(category)); err != nil {
		return nil, err
	}
	if contentID <= 0 {
		return nil, domain.ErrInvalidID
	}
	details, err := s.upstream.Details(ctx, category, contentID)
	if err != nil {
		return nil, fmt.Errorf("details %s/%d: %w", category, contentID, err)
	}
	return details, nil
}

// GetTrailers returns the trailer list in upstream order.
func (s *Service) GetTrailers(ctx context.Context, category domain.Category, contentID int64) ([]domain.Trailer, error) {
	if _, err := domain.ParseWatchCategory(string(category)); err != nil {
		return nil, err
	}
	if contentID <= 0 {
		return nil, domain.ErrInvalidID
	}
	trailers, err := s.upstream.Videos(ctx, category, contentID)
	if err != nil {
		return nil, fmt.Errorf("trailers %s/%d: %w", category, contentID, err)
	}
	if trailers == nil {
		trailers = []domain.Trailer{}
	}
	return trailers, nil
}

// GetSimilar returns content related to the given title.
func (s *Service) GetSimilar(ctx context.Context, category domain.Category, contentID int64) ([]domain.ContentSummary, error) {
	if _, err := domain.ParseWatchCategory(string(category)); err != nil {
		return nil, err
	}
	if contentID <= 0 {
		return nil, domain.ErrInvalidID
	}
	similar, err := s.upstream.Similar(ctx, category, contentID)
	if err != nil {
		return nil, fmt.Errorf("similar %s/%d: %w", category, contentID, err)
	}
	if similar == nil {
		similar = []domain.ContentSummary{}
	}
	return similar, nil
}
