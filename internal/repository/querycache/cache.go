// Package querycache bounds recomputation for repeated searches with an
// in-process LRU. Entries are immutable ranked result slices; the cache is
// advisory and never consulted for correctness.
package querycache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/palsson-archive/leit/internal/domain/search/result"
)

// Cache is an LRU of query+filter keys to ranked results.
type Cache struct {
	inner *lru.Cache[string, []result.Result]
}

// New creates a cache holding up to size entries.
func New(size int) (*Cache, error) {
	inner, err := lru.New[string, []result.Result](size)
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}
	return &Cache{inner: inner}, nil
}

// Get returns the cached results for key, if present.
func (c *Cache) Get(key string) ([]result.Result, bool) {
	return c.inner.Get(key)
}

// Add stores ranked results under key, evicting the least recently used
// entry when full.
func (c *Cache) Add(key string, results []result.Result) {
	c.inner.Add(key, results)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.inner.Len()
}
