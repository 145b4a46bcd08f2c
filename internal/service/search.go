package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/crispwatch/media-gateway/internal/domain"
	"github.com/crispwatch/media-gateway/internal/tmdb"
)

// Search proxies one category search upstream and records the top hit in the
// user's history. The full upstream result list is returned to the caller;
// only the first result feeds the history.
func (s *Service) Search(ctx context.Context, userID int64, category domain.Category, query string) ([]domain.ContentSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}
	if _, err := domain.ParseCategory(string(category)); err != nil {
		return nil, err
	}

	results, err := s.upstream.Search(ctx, category, query)
	if err != nil {
		// The provider reports an unknown query path as 404; treat it the
		// same as an empty result list.
		if tmdb.Kind(err) == tmdb.KindNotFound {
			return nil, domain.ErrNoResults
		}
		return nil, fmt.Errorf("search %s %q: %w", category, query, err)
	}
	if len(results) == 0 {
		return nil, domain.ErrNoResults
	}

	primary := results[0]
	entry := domain.HistoryEntry{
		ExternalID: primary.ID,
		Category:   category,
		Title:      primary.DisplayTitle(category),
		ImagePath:  primary.Image(category),
		CreatedAt:  time.Now().UTC(),
	}

	// History is best-effort on this path: a storage failure is logged and
	// the search response is still served.
	if err := s.store.AppendHistory(ctx, userID, entry); err != nil {
		log.Printf("[search] history append failed for user %d (%s/%d): %v",
			userID, entry.Category, entry.ExternalID, err)
	}

	return results, nil
}

// IsNoResults reports whether an error is the empty-search outcome.
func IsNoResults(err error) bool {
	return errors.Is(err, domain.ErrNoResults)
}
