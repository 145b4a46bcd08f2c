package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/crispwatch/media-gateway/internal/domain"
)

// GetHistory returns the user's search history in insertion order.
func (s *Service) GetHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	entries, err := s.store.ListHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	return entries, nil
}

// DeleteHistoryItem removes every history entry with the given external id,
// whatever its category. The raw id comes straight from the URL; anything
// non-numeric is a validation error, not a storage one. Deleting an id the
// user never searched for succeeds as a no-op.
func (s *Service) DeleteHistoryItem(ctx context.Context, userID int64, rawID string) error {
	externalID, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, rawID)
	}
	if err := s.store.RemoveHistory(ctx, userID, externalID); err != nil {
		return fmt.Errorf("remove history: %w", err)
	}
	return nil
}
