// Package search implements the relevance engine: facet filtering, additive
// scoring with accent folding and edit-distance fuzzy matching, and ranking.
package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/palsson-archive/leit/internal/domain/search/filter"
	"github.com/palsson-archive/leit/internal/domain/search/query"
	"github.com/palsson-archive/leit/internal/domain/search/result"
	"github.com/palsson-archive/leit/internal/metrics"
)

// Defaults for result truncation and the minimum dispatchable query.
const (
	DefaultTopK          = 8
	DefaultMinQueryChars = 2
)

// Service ranks documents against queries. Pure in-memory work; every call
// runs to completion synchronously, so identical inputs give identical
// output and concurrent calls need no coordination.
type Service struct {
	source        Source
	cache         ResultCache
	logger        *zap.Logger
	topK          int
	minQueryChars int
}

// New creates a search service over the given document source.
func New(source Source, logger *zap.Logger) *Service {
	return &Service{
		source:        source,
		logger:        logger,
		topK:          DefaultTopK,
		minQueryChars: DefaultMinQueryChars,
	}
}

// WithCache attaches a result cache for repeated queries.
func (s *Service) WithCache(cache ResultCache) *Service {
	s.cache = cache
	return s
}

// WithLimits overrides result truncation and minimum query length.
func (s *Service) WithLimits(topK, minQueryChars int) *Service {
	if topK > 0 {
		s.topK = topK
	}
	if minQueryChars > 0 {
		s.minQueryChars = minQueryChars
	}
	return s
}

// Search filters, scores, and ranks the collection for rawQuery.
// Queries shorter than the minimum return no results without scoring.
// Ties keep source-collection order (stable sort on descending score);
// the result set is capped at topK.
func (s *Service) Search(_ context.Context, rawQuery string, f filter.Filters) []result.Result {
	start := time.Now()

	q := query.New(rawQuery)
	if q.Len() < s.minQueryChars {
		metrics.SearchesTotal.WithLabelValues("too_short").Inc()
		return nil
	}

	key := cacheKey(q, f)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			metrics.ResultCacheTotal.WithLabelValues("hit").Inc()
			return cached
		}
		metrics.ResultCacheTotal.WithLabelValues("miss").Inc()
	}

	var results []result.Result
	for pos, doc := range s.source.Documents() {
		if !f.Matches(doc) {
			continue
		}
		if sc := score(doc, q); sc > 0 {
			results = append(results, result.New(doc, sc, pos))
		}
	}

	// Stable sort: equal scores keep source-collection order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score() > results[j].Score()
	})
	if len(results) > s.topK {
		results = results[:s.topK]
	}

	if s.cache != nil {
		s.cache.Add(key, results)
	}

	outcome := "ok"
	if len(results) == 0 {
		outcome = "no_results"
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	s.logger.Debug("search executed",
		zap.String("query", q.Raw()),
		zap.Int("results", len(results)),
		zap.Duration("took", time.Since(start)),
	)
	return results
}

func cacheKey(q query.Query, f filter.Filters) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s",
		q.Lowered(), f.Type(), f.YearMax(), f.Medium(), f.Institution())
}
