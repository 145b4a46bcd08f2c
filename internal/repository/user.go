package repository

import (
	"context"
	"errors"

	"github.com/crispwatch/media-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
)

// GetUserByID resolves a user record. Used by the auth middleware to reject
// identities that no longer exist.
func (r *Repository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user := &domain.User{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, created_at FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, &PersistenceError{Op: "query user", Err: err}
	}

	return user, nil
}

// CountUsers reports the size of the users table; used by the seed check.
func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, &PersistenceError{Op: "count users", Err: err}
	}
	return total, nil
}
