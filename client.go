// Package leit is the client SDK for the leit archive search service.
// It mirrors the HTTP API: ranked search with facet filters, session
// restore, and index status.
package leit

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

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("leit: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}

// Result is one rendered search hit. Title and Snippet carry <strong>
// highlight markup produced by the service.
type Result struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet,omitempty"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	Year      int    `json:"year,omitempty"`
	Relevance int    `json:"relevance"`
}

// SearchResponse is the outcome of one search call.
type SearchResponse struct {
	Query   string   `json:"query"`
	Lang    string   `json:"lang"`
	Count   int      `json:"count"`
	Top     string   `json:"top,omitempty"`
	Message string   `json:"message,omitempty"`
	Results []Result `json:"results"`
}

// Filters mirrors the facet values of a saved search.
type Filters struct {
	Type        string `json:"type"`
	YearMax     int    `json:"year_max"`
	Medium      string `json:"medium"`
	Institution string `json:"institution"`
}

// Session is a restored search session.
type Session struct {
	Restored bool       `json:"restored"`
	Query    string     `json:"query,omitempty"`
	Page     string     `json:"page,omitempty"`
	SavedAt  *time.Time `json:"saved_at,omitempty"`
	Filters  *Filters   `json:"filters,omitempty"`
	Results  []Result   `json:"results,omitempty"`
}

// IndexStatus reports the state of the server's loaded search index.
type IndexStatus struct {
	Available bool      `json:"available"`
	Documents int       `json:"documents"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// Client talks to a leit server.
type Client struct {
	baseURL string
	http    *http.Client
	sid     string
	lang    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSessionID sets the session id sent with searches so the server can
// save state for later restore.
func WithSessionID(sid string) Option {
	return func(c *Client) { c.sid = sid }
}

// WithLang sets the default display language (en or is).
func WithLang(lang string) Option {
	return func(c *Client) { c.lang = lang }
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("leit: base URL required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Search starts a fluent search request.
func (c *Client) Search(query string) *SearchBuilder {
	return &SearchBuilder{client: c, query: query, lang: c.lang}
}

// RestoreSession fetches the saved search state for the given page.
// The client must have been created with WithSessionID.
func (c *Client) RestoreSession(ctx context.Context, page string) (*Session, error) {
	if c.sid == "" {
		return nil, errors.New("leit: session id required (use WithSessionID)")
	}
	params := url.Values{}
	params.Set("sid", c.sid)
	params.Set("page", page)
	if c.lang != "" {
		params.Set("lang", c.lang)
	}

	var sess Session
	if err := c.get(ctx, "/api/session", params, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Status fetches the server's index status.
func (c *Client) Status(ctx context.Context) (*IndexStatus, error) {
	var st IndexStatus
	if err := c.get(ctx, "/api/index/status", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("leit: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leit: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "internal_error", Message: "request failed"}
		var body struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Code != "" {
			apiErr.Code = body.Code
			apiErr.Message = body.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("leit: decode %s response: %w", path, err)
	}
	return nil
}
