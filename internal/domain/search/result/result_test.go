package result

import (
	"testing"

	"github.com/palsson-archive/leit/internal/domain"
)

func TestRelevance_Rounding(t *testing.T) {
	doc := domain.Reconstruct(
		domain.NewPlainText("x"), "", domain.BilingualText{},
		domain.TypeWork, 0, "/x", "",
	)

	tests := []struct {
		score int
		want  int
	}{
		{1000, 100},
		{505, 51},
		{504, 50},
		{1, 0},
		{0, 0},
	}
	for _, tt := range tests {
		r := New(doc, tt.score, 0)
		if got := r.Relevance(); got != tt.want {
			t.Errorf("Relevance(score=%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
