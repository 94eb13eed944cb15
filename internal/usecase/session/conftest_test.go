package session

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/filter"
	"github.com/palsson-archive/leit/internal/domain/search/result"
	domses "github.com/palsson-archive/leit/internal/domain/search/session"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	saveFn func(ctx context.Context, id string, st domses.State) error
	loadFn func(ctx context.Context, id string) (domses.State, error)
	delFn  func(ctx context.Context, id string) error

	saves   int
	deletes int
}

func (m *mockRepo) Save(ctx context.Context, id string, st domses.State) error {
	m.saves++
	if m.saveFn != nil {
		return m.saveFn(ctx, id, st)
	}
	return nil
}

func (m *mockRepo) Load(ctx context.Context, id string) (domses.State, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx, id)
	}
	return domses.Empty(), domain.ErrSessionNotFound
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	m.deletes++
	if m.delFn != nil {
		return m.delFn(ctx, id)
	}
	return nil
}

func testDoc(t *testing.T) domain.Document {
	t.Helper()
	doc, err := domain.NewDocument(
		domain.NewPlainText("Sound Sculpture"),
		"an early sound sculpture",
		domain.NewPlainText("Sound work"),
		domain.TypeWork, 1971, "/works.html#sound-sculpture", "works",
	)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	return doc
}

func storedState(t *testing.T, page string, savedAt time.Time) domses.State {
	t.Helper()
	return domses.New("sculpture", filter.Default(),
		[]result.Result{result.New(testDoc(t), 500, 0)}, page, savedAt)
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newTestService(repo Repository) *Service {
	return New(repo, zap.NewNop())
}
