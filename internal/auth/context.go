package auth

import (
	"context"

	"github.com/crispwatch/media-gateway/internal/domain"
)

type contextKey string

const contextKeyUser contextKey = "user"

// WithUser attaches a resolved user to the context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}

// UserFromContext retrieves the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(contextKeyUser).(*domain.User)
	return user, ok
}
