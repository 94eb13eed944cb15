package leit

import (
	"context"
	"net/url"
	"strconv"
)

// SearchBuilder is a fluent builder for one search request.
type SearchBuilder struct {
	client *Client

	query       string
	docType     string
	yearMax     int
	medium      string
	institution string
	lang        string
	page        string
}

// Type restricts results to a document type facet
// (all, work, exhibition, collection, or a concrete type tag).
func (b *SearchBuilder) Type(t string) *SearchBuilder {
	b.docType = t
	return b
}

// UpToYear restricts results to documents dated year or earlier.
func (b *SearchBuilder) UpToYear(year int) *SearchBuilder {
	b.yearMax = year
	return b
}

// Medium restricts results to a medium facet (sculpture, sound, ...).
func (b *SearchBuilder) Medium(m string) *SearchBuilder {
	b.medium = m
	return b
}

// Institution restricts results to an institution facet.
func (b *SearchBuilder) Institution(inst string) *SearchBuilder {
	b.institution = inst
	return b
}

// Lang overrides the display language for this request.
func (b *SearchBuilder) Lang(lang string) *SearchBuilder {
	b.lang = lang
	return b
}

// Page tags the search with the page it was issued from, enabling
// session restore on that page.
func (b *SearchBuilder) Page(page string) *SearchBuilder {
	b.page = page
	return b
}

// Do executes the search.
func (b *SearchBuilder) Do(ctx context.Context) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", b.query)
	if b.docType != "" {
		params.Set("type", b.docType)
	}
	if b.yearMax != 0 {
		params.Set("year", strconv.Itoa(b.yearMax))
	}
	if b.medium != "" {
		params.Set("medium", b.medium)
	}
	if b.institution != "" {
		params.Set("institution", b.institution)
	}
	if b.lang != "" {
		params.Set("lang", b.lang)
	}
	if b.page != "" {
		params.Set("page", b.page)
	}
	if b.client.sid != "" {
		params.Set("sid", b.client.sid)
	}

	var resp SearchResponse
	if err := b.client.get(ctx, "/api/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
