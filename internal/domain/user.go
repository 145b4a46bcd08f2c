package domain

import "time"

// User is the resolved identity supplied by the session layer. This service
// never authenticates; it only attributes history to an already-known user.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
