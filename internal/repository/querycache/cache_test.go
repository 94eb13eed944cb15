package querycache

import (
	"fmt"
	"testing"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/result"
)

func sampleResults(t *testing.T, score int) []result.Result {
	t.Helper()
	doc, err := domain.NewDocument(
		domain.NewPlainText("Sound"), "", domain.BilingualText{},
		domain.TypeWork, 0, "/w", "",
	)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	return []result.Result{result.New(doc, score, 0)}
}

func TestGetAdd(t *testing.T) {
	c, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	want := sampleResults(t, 500)
	c.Add("sound|all|2024|all|all", want)

	got, ok := c.Get("sound|all|2024|all|all")
	if !ok {
		t.Fatal("Get after Add missed")
	}
	if len(got) != 1 || got[0].Score() != 500 {
		t.Errorf("cached results = %v", got)
	}
}

func TestEviction(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		c.Add(fmt.Sprintf("q%d", i), sampleResults(t, i))
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after eviction", c.Len())
	}
	if _, ok := c.Get("q0"); ok {
		t.Error("oldest entry survived eviction")
	}
	if _, ok := c.Get("q2"); !ok {
		t.Error("newest entry evicted")
	}
}

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("expected error for size 0")
	}
}
