package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

const userAgent = "Mozilla/5.0 (compatible; kinolink/0.1)"

// DetailFields is the minimal selectFields set requested for detail lookups.
var DetailFields = []string{
	"id", "name", "alternativeName", "enName", "year", "type",
	"poster.url", "rating.kp", "genres.name",
	"sequelsAndPrequels.id", "sequelsAndPrequels.name",
	"sequelsAndPrequels.year", "sequelsAndPrequels.type",
}

// Searcher defines the catalog operations used by the resolution core.
type Searcher interface {
	// FilterSearch queries by exact name and, when year > 0, exact year.
	FilterSearch(ctx context.Context, name string, year, limit int) ([]Record, error)
	// TextSearch runs the free-text search endpoint.
	TextSearch(ctx context.Context, query string, limit int) ([]Record, error)
	// GetByID fetches one record restricted to the given selectFields.
	// A missing or non-200 record yields (nil, nil).
	GetByID(ctx context.Context, id int64, fields []string) (*Record, error)
}

// Client provides access to the catalog HTTP API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

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

// New creates a catalog client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("catalog api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("catalog base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type searchResponse struct {
	Docs []Record `json:"docs"`
}

// FilterSearch queries the exact-filter endpoint by name and optional year.
func (c *Client) FilterSearch(ctx context.Context, name string, year, limit int) ([]Record, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if name = strings.TrimSpace(name); name != "" {
		params.Set("name", name)
	}
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}

	var payload searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/movie", params, &payload); err != nil {
		return nil, fmt.Errorf("filter search: %w", err)
	}
	return payload.Docs, nil
}

// TextSearch queries the free-text search endpoint.
func (c *Client) TextSearch(ctx context.Context, query string, limit int) ([]Record, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))

	var payload searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/movie/search", params, &payload); err != nil {
		return nil, fmt.Errorf("text search: %w", err)
	}
	return payload.Docs, nil
}

// GetByID fetches a single record by identifier. Non-200 responses yield a
// nil record so callers can fall back to search-derived data.
func (c *Client) GetByID(ctx context.Context, id int64, fields []string) (*Record, error) {
	if id <= 0 {
		return nil, errors.New("record id must be positive")
	}
	params := url.Values{}
	if len(fields) > 0 {
		params.Set("selectFields", strings.Join(fields, ","))
	}

	resp, err := c.get(ctx, fmt.Sprintf("%s/movie/%d", c.baseURL, id), params)
	if err != nil {
		return nil, fmt.Errorf("get by id: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("get by id: decode response: %w", err)
	}
	return &record, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	resp, err := c.get(ctx, endpoint, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	parsed.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-API-KEY", c.apiKey)

	// Transport errors get one bounded retry; HTTP status handling stays with
	// the caller.
	var resp *http.Response
	err = retry.Do(
		func() error {
			r, doErr := c.httpClient.Do(req)
			if doErr != nil {
				return doErr
			}
			resp = r
			return nil
		},
		retry.Attempts(2),
		retry.Delay(200*time.Millisecond),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}
