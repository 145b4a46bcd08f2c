package domain

import "fmt"

// Category partitions both search behavior and history dedup.
type Category string

const (
	CategoryMovie  Category = "movie"
	CategoryTV     Category = "tv"
	CategoryPerson Category = "person"
)

// ParseCategory validates a raw category string.
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryMovie, CategoryTV, CategoryPerson:
		return Category(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
}

// ParseWatchCategory accepts only categories that have details, trailers
// and similar-content endpoints upstream. People have none of those.
func ParseWatchCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryMovie, CategoryTV:
		return Category(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
}
