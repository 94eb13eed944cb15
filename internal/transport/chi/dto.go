package chi

import (
	"encoding/json"
	"net/http"
	"time"
)

// Error codes returned by the API.
const (
	codeBadRequest       = "bad_request"
	codeInvalidFilter    = "invalid_filter"
	codeIndexUnavailable = "index_unavailable"
	codeInternalError    = "internal_error"
)

// ErrorResponse is the error payload for every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResultDTO is one rendered search hit.
type ResultDTO struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet,omitempty"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	Year      int    `json:"year,omitempty"`
	Relevance int    `json:"relevance"`
}

// SearchResponse is the payload for GET /api/search.
// Top carries the URL of the best hit so the client can offer
// direct navigation; Message is the localized empty-result notice.
type SearchResponse struct {
	Query   string      `json:"query"`
	Lang    string      `json:"lang"`
	Count   int         `json:"count"`
	Top     string      `json:"top,omitempty"`
	Message string      `json:"message,omitempty"`
	Results []ResultDTO `json:"results"`
}

// FiltersDTO mirrors the facet values of a saved search.
type FiltersDTO struct {
	Type        string `json:"type"`
	YearMax     int    `json:"year_max"`
	Medium      string `json:"medium"`
	Institution string `json:"institution"`
}

// SessionResponse is the payload for GET /api/session.
type SessionResponse struct {
	Restored bool        `json:"restored"`
	Query    string      `json:"query,omitempty"`
	Page     string      `json:"page,omitempty"`
	SavedAt  *time.Time  `json:"saved_at,omitempty"`
	Filters  *FiltersDTO `json:"filters,omitempty"`
	Results  []ResultDTO `json:"results,omitempty"`
}

// StatusResponse is the payload for GET /api/index/status.
type StatusResponse struct {
	Available bool      `json:"available"`
	Documents int       `json:"documents"`
	LoadedAt  time.Time `json:"loaded_at,omitzero"`
}

// HealthResponse is the payload for GET /healthz.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
