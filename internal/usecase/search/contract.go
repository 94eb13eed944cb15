package search

import (
	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/result"
)

// Source supplies the loaded document collection in source order.
type Source interface {
	Documents() []domain.Document
}

// ResultCache stores ranked results for repeated query+filter combinations.
type ResultCache interface {
	Get(key string) ([]result.Result, bool)
	Add(key string, results []result.Result)
}
