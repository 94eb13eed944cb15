package session

import (
	"context"
	"testing"
	"time"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/filter"
	"github.com/palsson-archive/leit/internal/domain/search/result"
	domses "github.com/palsson-archive/leit/internal/domain/search/session"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	delFn func(ctx context.Context, key string) error

	lastKey string
	lastTTL time.Duration
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.lastKey = key
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.lastKey = key
	m.lastTTL = ttl
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	m.lastKey = key
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func sampleState(t *testing.T, now time.Time) domses.State {
	t.Helper()
	doc, err := domain.NewDocument(
		domain.NewBilingualText("Helicopter Landing", "Þyrlulending"),
		"a sculpture about a helicopter landing",
		domain.NewBilingualText("Plaster work", "Gifsverk"),
		domain.TypeWork, 1973, "/works.html#thyrlulending", "works",
	)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	f, err := filter.New("work", 1990, "sculpture", "")
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	return domses.New("thyrlulending", f, []result.Result{result.New(doc, 1050, 0)}, "/works", now)
}
