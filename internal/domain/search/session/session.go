// Package session models the transient search state carried across page
// navigations. It is a best-effort UX cache: lost or stale state degrades to
// an empty search, never an error.
package session

import (
	"time"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/filter"
	"github.com/palsson-archive/leit/internal/domain/search/result"
)

// TTL is the validity window for restored state.
const TTL = 10 * time.Minute

// State is a snapshot of one successful search.
type State struct {
	query   string
	filters filter.Filters
	results []result.Result
	savedAt time.Time
	page    string
}

// New creates a state snapshot taken now.
func New(query string, filters filter.Filters, results []result.Result, page string, now time.Time) State {
	return State{query: query, filters: filters, results: results, savedAt: now, page: page}
}

// Empty returns the default state used when nothing valid is stored.
func Empty() State {
	return State{filters: filter.Default()}
}

// Query returns the saved query text.
func (s State) Query() string { return s.query }

// Filters returns the saved facet filters.
func (s State) Filters() filter.Filters { return s.filters }

// Results returns the saved search results.
func (s State) Results() []result.Result { return s.results }

// SavedAt returns the snapshot timestamp.
func (s State) SavedAt() time.Time { return s.savedAt }

// Page returns the path the state was saved on.
func (s State) Page() string { return s.page }

// IsEmpty reports whether the state carries no search.
func (s State) IsEmpty() bool { return s.query == "" && len(s.results) == 0 }

// ValidFor checks whether the state may be restored for the given page at
// the given time. A stale or foreign-page state must be discarded.
func (s State) ValidFor(page string, now time.Time) error {
	if now.Sub(s.savedAt) >= TTL {
		return domain.ErrSessionExpired
	}
	if s.page != page {
		return domain.ErrPageMismatch
	}
	return nil
}
