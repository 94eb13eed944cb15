package search

import (
	"testing"

	"go.uber.org/zap"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/result"
)

// stubSource implements Source over a fixed slice.
type stubSource struct {
	docs []domain.Document
}

func (s *stubSource) Documents() []domain.Document { return s.docs }

// stubCache implements ResultCache over a plain map.
type stubCache struct {
	entries map[string][]result.Result
	hits    int
	adds    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]result.Result)}
}

func (c *stubCache) Get(key string) ([]result.Result, bool) {
	rs, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return rs, ok
}

func (c *stubCache) Add(key string, rs []result.Result) {
	c.adds++
	c.entries[key] = rs
}

func makeDoc(t *testing.T, titleEN, titleIS, content string, docType domain.Type, year int, url string) domain.Document {
	t.Helper()
	title := domain.NewBilingualText(titleEN, titleIS)
	if titleIS == "" {
		title = domain.NewPlainText(titleEN)
	}
	doc, err := domain.NewDocument(title, content, domain.BilingualText{}, docType, year, url, "")
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	return doc
}

func newTestService(t *testing.T, docs ...domain.Document) *Service {
	t.Helper()
	return New(&stubSource{docs: docs}, zap.NewNop())
}
