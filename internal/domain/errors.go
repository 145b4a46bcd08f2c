package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmptyQuery      = errors.New("search query is empty")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidID       = errors.New("invalid content id")
	ErrInvalidList     = errors.New("invalid list name")

	// ErrNoResults marks an upstream search that came back empty. It is a
	// valid terminal outcome, not a failure.
	ErrNoResults = errors.New("no results")
)
