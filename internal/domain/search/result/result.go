package result

import (
	"math"

	"github.com/palsson-archive/leit/internal/domain"
)

// Result is a single scored search hit.
type Result struct {
	doc      domain.Document
	score    int
	position int
}

// New creates a search result. position is the document's index in the
// source collection and is the explicit tie-break for equal scores.
func New(doc domain.Document, score, position int) Result {
	return Result{doc: doc, score: score, position: position}
}

// Document returns the matched document.
func (r Result) Document() domain.Document { return r.doc }

// Score returns the raw relevance score.
func (r Result) Score() int { return r.score }

// Position returns the document's index in the source collection.
func (r Result) Position() int { return r.position }

// Relevance returns the user-facing relevance figure, round(score/10).
func (r Result) Relevance() int {
	return int(math.Round(float64(r.score) / 10))
}
