package domain

// ContentSummary is one item of an upstream search, trending or similar list.
// Field names follow the provider's wire format so result lists can be passed
// through to clients unchanged. Movies carry Title/ReleaseDate, tv shows and
// people carry Name; people carry ProfilePath instead of poster/backdrop.
type ContentSummary struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   *string `json:"poster_path,omitempty"`
	BackdropPath *string `json:"backdrop_path,omitempty"`
	ProfilePath  *string `json:"profile_path,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average,omitempty"`
	Popularity   float64 `json:"popularity,omitempty"`
	Adult        bool    `json:"adult,omitempty"`
}

// DisplayTitle picks the category-specific title field.
func (c ContentSummary) DisplayTitle(category Category) string {
	if category == CategoryMovie {
		return c.Title
	}
	return c.Name
}

// Image picks the category-specific image path: profile for people, poster
// (backdrop as fallback) for movies and tv shows. Nil when upstream has none.
func (c ContentSummary) Image(category Category) *string {
	if category == CategoryPerson {
		return c.ProfilePath
	}
	if c.PosterPath != nil {
		return c.PosterPath
	}
	return c.BackdropPath
}

// ContentDetail is the request-scoped detail projection for the watch page.
// Never persisted.
type ContentDetail struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview,omitempty"`
	Tagline      string  `json:"tagline,omitempty"`
	PosterPath   *string `json:"poster_path,omitempty"`
	BackdropPath *string `json:"backdrop_path,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	Runtime      int     `json:"runtime,omitempty"`
	VoteAverage  float64 `json:"vote_average,omitempty"`
	Genres       []Genre `json:"genres,omitempty"`
	Adult        bool    `json:"adult,omitempty"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Trailer is one upstream video entry. Order within a list follows upstream.
type Trailer struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// WatchBundle is the combined watch-page payload. Each slot degrades
// independently: a failed sub-fetch leaves details nil and the lists empty
// without failing the bundle as a whole.
type WatchBundle struct {
	Details  *ContentDetail   `json:"details"`
	Trailers []Trailer        `json:"trailers"`
	Similar  []ContentSummary `json:"similar"`
}

// ClampTrailerIndex keeps trailer navigation inside [0, len-1]. It never
// wraps; -1 means there is nothing to index.
func (b WatchBundle) ClampTrailerIndex(idx int) int {
	if len(b.Trailers) == 0 {
		return -1
	}
	if idx < 0 {
		return 0
	}
	if idx >= len(b.Trailers) {
		return len(b.Trailers) - 1
	}
	return idx
}
