package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrInvalidAPIKey reports that TMDB rejected the configured credential.
var ErrInvalidAPIKey = errors.New("tmdb rejected the api key")

// Movie represents a single TMDB movie payload, shared by search results
// and detail lookups.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
}

// Year extracts the release year from the TMDB release date, or "Unknown"
// when the date is absent.
func (m Movie) Year() string {
	date := strings.TrimSpace(m.ReleaseDate)
	if len(date) < 4 {
		return "Unknown"
	}
	return date[:4]
}

// SearchResponse models the TMDB paginated movie search response.
type SearchResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// ReviewAuthorDetails carries the optional per-review author metadata.
type ReviewAuthorDetails struct {
	Rating *float64 `json:"rating"`
}

// Review describes a single TMDB user review.
type Review struct {
	Author        string              `json:"author"`
	Content       string              `json:"content"`
	CreatedAt     string              `json:"created_at"`
	AuthorDetails ReviewAuthorDetails `json:"author_details"`
}

// ReviewsResponse models the TMDB paginated review listing.
type ReviewsResponse struct {
	Page         int      `json:"page"`
	Results      []Review `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// API defines the TMDB operations used by the analysis stage.
type API interface {
	SearchMovie(ctx context.Context, query string) (*SearchResponse, error)
	GetMovieDetails(ctx context.Context, movieID int64) (*Movie, error)
	GetMovieReviews(ctx context.Context, movieID int64) ([]Review, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	maxReviews int
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithMaxReviews caps how many reviews GetMovieReviews returns.
func WithMaxReviews(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxReviews = limit
		}
	}
}

const defaultMaxReviews = 50

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	language = strings.TrimSpace(language)
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		maxReviews: defaultMaxReviews,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchMovie searches TMDB for the supplied title. The first element of
// Results is TMDB's best match.
func (c *Client) SearchMovie(ctx context.Context, query string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)

	var payload SearchResponse
	if err := c.get(ctx, "/search/movie", params, &payload); err != nil {
		return nil, fmt.Errorf("tmdb search: %w", err)
	}
	return &payload, nil
}

// GetMovieDetails fetches movie details by TMDB ID.
func (c *Client) GetMovieDetails(ctx context.Context, movieID int64) (*Movie, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	var payload Movie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), url.Values{}, &payload); err != nil {
		return nil, fmt.Errorf("tmdb movie details: %w", err)
	}
	return &payload, nil
}

// GetMovieReviews fetches the first page of user reviews for a movie,
// capped at the configured maximum.
func (c *Client) GetMovieReviews(ctx context.Context, movieID int64) ([]Review, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	params := url.Values{}
	params.Set("page", "1")

	var payload ReviewsResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/reviews", movieID), params, &payload); err != nil {
		return nil, fmt.Errorf("tmdb movie reviews: %w", err)
	}
	reviews := payload.Results
	if len(reviews) > c.maxReviews {
		reviews = reviews[:c.maxReviews]
	}
	return reviews, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, payload any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidAPIKey
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("tmdb returned %d (latency=%v)", resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
