package search

import (
	"math"
	"strings"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/query"
)

// Scoring weights. Exact title beats substring beats fuzzy, so ranking
// properties hold regardless of the additive word bonuses below.
const (
	titleExactScore     = 1000
	titleContainsScore  = 500
	titleFuzzyWeight    = 300
	contentPhraseScore  = 200
	titleWordScore      = 50
	contentWordScore    = 20
	titleWordFuzzyWt    = 30
	contentWordFuzzyWt  = 15
	yearMatchScore      = 100
	titleFuzzyThreshold = 0.7
	wordFuzzyThreshold  = 0.75
)

// score computes the relevance of doc for q. Deterministic, never negative;
// 0 means the document is not a match. Bilingual titles are scored against
// every language variant, both raw-lowercased and accent-folded, so
// "thyrlulending" hits "Þyrlulending".
func score(doc domain.Document, q query.Query) int {
	if q.IsEmpty() {
		return 0
	}

	total := 0

	variants := doc.Title().Variants()
	lowTitles := make([]string, len(variants))
	foldTitles := make([]string, len(variants))
	for i, v := range variants {
		lowTitles[i] = strings.ToLower(v)
		foldTitles[i] = query.Fold(v)
	}

	total += titleScore(lowTitles, foldTitles, q)

	lowContent := strings.ToLower(doc.Content())
	foldContent := query.Fold(doc.Content())
	if strings.Contains(lowContent, q.Lowered()) || strings.Contains(foldContent, q.Folded()) {
		total += contentPhraseScore
	}

	total += wordScore(lowTitles, foldTitles, lowContent, foldContent, q)

	if year := q.Year(); year != 0 && doc.Year() == year {
		total += yearMatchScore
	}

	return total
}

// titleScore returns the best title-level score across language variants.
// The tiers are exclusive per variant: an exact match is not also counted
// as a substring match, and the fuzzy band excludes similarity 1.0 since
// exact matches are already scored above it.
func titleScore(lowTitles, foldTitles []string, q query.Query) int {
	best := 0
	for i := range lowTitles {
		s := 0
		switch {
		case lowTitles[i] == q.Lowered() || foldTitles[i] == q.Folded():
			s = titleExactScore
		case strings.Contains(lowTitles[i], q.Lowered()) || strings.Contains(foldTitles[i], q.Folded()):
			s = titleContainsScore
		default:
			if sim := similarity(q.Folded(), foldTitles[i]); sim > titleFuzzyThreshold && sim < 1.0 {
				s = int(math.Floor(sim * titleFuzzyWeight))
			}
		}
		if s > best {
			best = s
		}
	}
	return best
}

// wordScore adds per-word bonuses for significant query words: substring
// presence in title/content and fuzzy near-misses against individual words.
func wordScore(lowTitles, foldTitles []string, lowContent, foldContent string, q query.Query) int {
	words := q.SignificantWords()
	if len(words) == 0 {
		return 0
	}

	var titleWords []string
	for _, ft := range foldTitles {
		titleWords = append(titleWords, strings.Fields(ft)...)
	}
	contentWords := strings.Fields(foldContent)

	total := 0
	for _, w := range words {
		fw := query.Fold(w)

		if len([]rune(w)) > 3 {
			if containsAny(lowTitles, w) || containsAny(foldTitles, fw) {
				total += titleWordScore
			}
			if strings.Contains(lowContent, w) || strings.Contains(foldContent, fw) {
				total += contentWordScore
			}
		}

		for _, tw := range titleWords {
			if sim := similarity(fw, tw); sim > wordFuzzyThreshold && sim < 1.0 {
				total += int(math.Floor(sim * titleWordFuzzyWt))
			}
		}
		for _, cw := range contentWords {
			if sim := similarity(fw, cw); sim > wordFuzzyThreshold && sim < 1.0 {
				total += int(math.Floor(sim * contentWordFuzzyWt))
			}
		}
	}
	return total
}

func containsAny(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
