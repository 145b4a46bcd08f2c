package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/crispwatch/media-gateway/internal/domain"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org/3"

	defaultLanguage = "en-US"
)

// Client is an authenticated HTTP client for the metadata provider. It is
// stateless and performs no retries; a single upstream failure propagates to
// the caller as an *UpstreamError.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ErrorKind classifies an upstream failure.
type ErrorKind string

const (
	KindUnreachable  ErrorKind = "unreachable"
	KindAuthRejected ErrorKind = "auth_rejected"
	KindNotFound     ErrorKind = "not_found"
	KindRateLimited  ErrorKind = "rate_limited"
	KindMalformed    ErrorKind = "malformed"
)

// UpstreamError is the single error type exposed by the client. StatusCode is
// the original HTTP status, zero when the call never produced a response.
type UpstreamError struct {
	Kind       ErrorKind
	StatusCode int
	Path       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s (%s, status %d): %v", e.Path, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s (%s, status %d)", e.Path, e.Kind, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func IsUpstreamError(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

// Kind extracts the classification from an error chain; empty when the error
// is not an UpstreamError.
func Kind(err error) ErrorKind {
	var target *UpstreamError
	if errors.As(err, &target) {
		return target.Kind
	}
	return ""
}

func classifyStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuthRejected
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 500:
		return KindUnreachable
	default:
		return KindMalformed
	}
}

// get performs one authenticated GET and decodes the JSON body into out.
// Transport failures, including timeouts, are reported as KindUnreachable.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &UpstreamError{Kind: KindMalformed, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Kind: KindUnreachable, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Kind: classifyStatus(resp.StatusCode), StatusCode: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Kind: KindMalformed, StatusCode: resp.StatusCode, Path: path, Err: err}
	}
	return nil
}

func baseQuery() url.Values {
	q := url.Values{}
	q.Set("language", defaultLanguage)
	return q
}

type listResponse struct {
	Page    int                     `json:"page"`
	Results []domain.ContentSummary `json:"results"`
}

// Search queries the category-specific search endpoint. Adult content is
// always excluded and only the first page is requested.
func (c *Client) Search(ctx context.Context, category domain.Category, query string) ([]domain.ContentSummary, error) {
	q := baseQuery()
	q.Set("query", query)
	q.Set("include_adult", "false")
	q.Set("page", "1")

	var resp listResponse
	if err := c.get(ctx, fmt.Sprintf("/search/%s", category), q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Details fetches the full record for one movie or tv show.
func (c *Client) Details(ctx context.Context, category domain.Category, id int64) (*domain.ContentDetail, error) {
	var detail domain.ContentDetail
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", category, id), baseQuery(), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

type videosResponse struct {
	ID      int64            `json:"id"`
	Results []domain.Trailer `json:"results"`
}

// Videos returns the trailer list in upstream order.
func (c *Client) Videos(ctx context.Context, category domain.Category, id int64) ([]domain.Trailer, error) {
	var resp videosResponse
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/videos", category, id), baseQuery(), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Similar returns content related to the given id.
func (c *Client) Similar(ctx context.Context, category domain.Category, id int64) ([]domain.ContentSummary, error) {
	q := baseQuery()
	q.Set("page", "1")

	var resp listResponse
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/similar", category, id), q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Trending returns the daily trending feed for a category.
func (c *Client) Trending(ctx context.Context, category domain.Category) ([]domain.ContentSummary, error) {
	var resp listResponse
	if err := c.get(ctx, fmt.Sprintf("/trending/%s/day", category), baseQuery(), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// List returns one of the provider's curated lists (popular, top_rated, ...)
// for a category.
func (c *Client) List(ctx context.Context, category domain.Category, list string) ([]domain.ContentSummary, error) {
	q := baseQuery()
	q.Set("page", "1")

	var resp listResponse
	if err := c.get(ctx, fmt.Sprintf("/%s/%s", category, list), q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
