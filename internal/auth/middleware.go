package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/crispwatch/media-gateway/internal/domain"
)

// UserHeader carries the identity resolved by the fronting session layer.
// This service never authenticates; it trusts the gateway-set header and only
// checks that the user still exists.
const UserHeader = "X-User-ID"

type UserResolver interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// Middleware resolves the request identity and injects it into the context.
// Requests without a valid, known user id are rejected with 401.
func Middleware(resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserHeader)
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				unauthorized(w)
				return
			}

			user, err := resolver.GetUserByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					unauthorized(w)
					return
				}
				log.Printf("[auth] user lookup failed for %d: %v", userID, err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"internal_error","message":"An unexpected error occurred"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized","message":"Authentication required"}`))
}
