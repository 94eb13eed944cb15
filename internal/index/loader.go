// Package index loads the static search-index.json document collection.
// The collection is fetched exactly once at startup; a failed load leaves
// search disabled for the process lifetime rather than crashing the service.
package index

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/palsson-archive/leit/internal/domain"
)

// maxIndexSize bounds a remote index fetch (the real index is well under 1MB).
const maxIndexSize = 32 << 20

// defaultContentField is the JSON field holding the document array.
const defaultContentField = "searchableContent"

// Loader reads the document collection from a local file or a remote URL.
type Loader struct {
	path         string
	url          string
	contentField string
	client       *http.Client
	logger       *zap.Logger
}

// NewLoader creates a loader. When both path and url are set, path wins.
func NewLoader(path, url string, fetchTimeout time.Duration, logger *zap.Logger) *Loader {
	return &Loader{
		path:         path,
		url:          url,
		contentField: defaultContentField,
		client:       &http.Client{Timeout: fetchTimeout},
		logger:       logger,
	}
}

// WithContentField overrides the JSON field holding the document array.
func (l *Loader) WithContentField(name string) *Loader {
	if name != "" {
		l.contentField = name
	}
	return l
}

// Load fetches and parses the collection. On any failure it returns an empty
// collection and an error wrapping domain.ErrIndexUnavailable; the caller
// keeps serving with search disabled.
func (l *Loader) Load(ctx context.Context) (Collection, error) {
	data, err := l.read(ctx)
	if err != nil {
		return Empty(), fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
	}

	var file map[string]json.RawMessage
	if err := json.Unmarshal(data, &file); err != nil {
		return Empty(), fmt.Errorf("%w: parse index: %w", domain.ErrIndexUnavailable, err)
	}
	raw, ok := file[l.contentField]
	if !ok {
		return Empty(), fmt.Errorf("%w: index has no %q field", domain.ErrIndexUnavailable, l.contentField)
	}
	var dtos []documentDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return Empty(), fmt.Errorf("%w: parse %q: %w", domain.ErrIndexUnavailable, l.contentField, err)
	}

	docs := make([]domain.Document, 0, len(dtos))
	skipped := 0
	for i, dto := range dtos {
		doc, err := dto.toDomain()
		if err != nil {
			// One malformed record must not take the whole index down.
			l.logger.Warn("skipping malformed index record",
				zap.Int("position", i), zap.Error(err))
			skipped++
			continue
		}
		docs = append(docs, doc)
	}

	l.logger.Info("search index loaded",
		zap.Int("documents", len(docs)),
		zap.Int("skipped", skipped),
		zap.String("source", l.source()),
	)
	return NewCollection(docs), nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if l.path != "" {
		data, err := os.ReadFile(filepath.Clean(l.path))
		if err != nil {
			return nil, fmt.Errorf("read index file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build index request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch index: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIndexSize))
	if err != nil {
		return nil, fmt.Errorf("read index response: %w", err)
	}
	return data, nil
}

func (l *Loader) source() string {
	if l.path != "" {
		return l.path
	}
	return l.url
}
