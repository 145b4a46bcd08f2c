package repository

import (
	"context"

	"github.com/crispwatch/media-gateway/internal/domain"
)

// AppendHistory inserts one history entry unless the user already has an
// entry for the same (external_id, category) pair. The unique index makes the
// dedup atomic, so two concurrent searches for the same content cannot
// produce a duplicate; the losing insert is a silent no-op and the stored
// metadata keeps its first-write values.
func (r *Repository) AppendHistory(ctx context.Context, userID int64, entry domain.HistoryEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO search_history (user_id, external_id, category, title, image_path, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, external_id, category) DO NOTHING`,
		userID, entry.ExternalID, entry.Category, entry.Title, entry.ImagePath, entry.CreatedAt,
	)
	if err != nil {
		return &PersistenceError{Op: "append history", Err: err}
	}
	return nil
}

// ListHistory returns the user's history in insertion order. A user with no
// history gets an empty slice, not an error.
func (r *Repository) ListHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT external_id, category, title, image_path, created_at
		 FROM search_history
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, &PersistenceError{Op: "list history", Err: err}
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.ExternalID, &e.Category, &e.Title, &e.ImagePath, &e.CreatedAt); err != nil {
			return nil, &PersistenceError{Op: "scan history entry", Err: err}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "iterate history", Err: err}
	}
	return entries, nil
}

// RemoveHistory deletes every entry with the given external id regardless of
// category. Removing an id that is not present succeeds as a no-op.
func (r *Repository) RemoveHistory(ctx context.Context, userID, externalID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM search_history WHERE user_id = $1 AND external_id = $2`,
		userID, externalID,
	)
	if err != nil {
		return &PersistenceError{Op: "remove history", Err: err}
	}
	return nil
}
