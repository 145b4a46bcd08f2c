package domain

import "time"

// HistoryEntry is one remembered search event. Within one user's history the
// (ExternalID, Category) pair is unique; the first hit wins and later hits for
// the same pair never update the stored title or image.
type HistoryEntry struct {
	ExternalID int64     `json:"id"`
	Category   Category  `json:"searchType"`
	Title      string    `json:"title"`
	ImagePath  *string   `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
}
