package index

import "github.com/palsson-archive/leit/internal/domain"

// Collection is the immutable in-memory document set. Built once at load;
// there is no write path afterwards.
type Collection struct {
	docs []domain.Document
}

// NewCollection wraps a loaded document slice. The collection takes
// ownership of the slice; callers must not retain it.
func NewCollection(docs []domain.Document) Collection {
	return Collection{docs: docs}
}

// Empty returns a collection with no documents.
func Empty() Collection {
	return Collection{}
}

// Documents returns the documents in source order. The slice is shared;
// documents are immutable value objects, so reads are safe.
func (c Collection) Documents() []domain.Document { return c.docs }

// Len returns the number of documents.
func (c Collection) Len() int { return len(c.docs) }
