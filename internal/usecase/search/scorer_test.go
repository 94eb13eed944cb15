package search

import (
	"testing"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/query"
)

func TestScore_TierOrdering(t *testing.T) {
	doc := makeDoc(t, "Sound Sculpture", "", "", domain.TypeWork, 0, "/w")

	exact := score(doc, query.New("Sound Sculpture"))
	substring := score(doc, query.New("nd Sculptu"))
	fuzzy := score(doc, query.New("sound sculptura"))

	if exact < titleExactScore {
		t.Errorf("exact match score = %d, want >= %d", exact, titleExactScore)
	}
	if substring >= exact {
		t.Errorf("substring (%d) should rank below exact (%d)", substring, exact)
	}
	if fuzzy >= substring {
		t.Errorf("fuzzy (%d) should rank below substring (%d)", fuzzy, substring)
	}
	if fuzzy <= 0 {
		t.Errorf("fuzzy score = %d, want > 0", fuzzy)
	}
}

func TestScore_NeverNegativeAndDeterministic(t *testing.T) {
	doc := makeDoc(t, "Helicopter Landing", "Þyrlulending", "plaster and sound", domain.TypeWork, 1973, "/w")
	queries := []string{"xyz", "landing", "1973", "þyrlu", "the of and"}

	for _, raw := range queries {
		q := query.New(raw)
		first := score(doc, q)
		if first < 0 {
			t.Errorf("score(%q) = %d, negative", raw, first)
		}
		if second := score(doc, q); second != first {
			t.Errorf("score(%q) not deterministic: %d then %d", raw, first, second)
		}
	}
}

func TestScore_FoldedExactMatch(t *testing.T) {
	// Accent-free typing must find the Icelandic title at full strength.
	doc := makeDoc(t, "", "Þyrlulending", "a sculpture about a helicopter landing", domain.TypeWork, 1973, "/w1")

	got := score(doc, query.New("thyrlulending"))
	if got < titleExactScore {
		t.Errorf("score = %d, want >= %d (folded exact title match)", got, titleExactScore)
	}
}

func TestScore_YearRule(t *testing.T) {
	doc := makeDoc(t, "Helicopter Landing", "", "a helicopter piece", domain.TypeWork, 1973, "/w1")

	got := score(doc, query.New("1973"))
	if got < yearMatchScore {
		t.Errorf("score(1973) = %d, want >= %d from the year rule", got, yearMatchScore)
	}

	other := makeDoc(t, "Helicopter Landing", "", "a helicopter piece", domain.TypeWork, 1974, "/w2")
	if s := score(other, query.New("1973")); s != 0 {
		t.Errorf("score on wrong year = %d, want 0", s)
	}
}

func TestScore_ContentPhrase(t *testing.T) {
	doc := makeDoc(t, "Untitled", "", "an early sound installation in Reykjavík", domain.TypeWork, 0, "/w")

	got := score(doc, query.New("sound installation"))
	if got < contentPhraseScore {
		t.Errorf("score = %d, want >= %d for content phrase", got, contentPhraseScore)
	}
}

func TestScore_SignificantWordBonuses(t *testing.T) {
	doc := makeDoc(t, "Sound Sculpture", "", "a sculpture built from sound", domain.TypeWork, 0, "/w")

	// "sculpture" appears in title (+50) and content (+20); no phrase or
	// title-level match for this two-word query with an unrelated word.
	got := score(doc, query.New("granite sculpture"))
	if got < titleWordScore+contentWordScore {
		t.Errorf("score = %d, want >= %d", got, titleWordScore+contentWordScore)
	}
	if got >= titleContainsScore {
		t.Errorf("score = %d, unexpectedly reached substring tier", got)
	}
}

func TestScore_ShortWordsIgnored(t *testing.T) {
	doc := makeDoc(t, "On It", "", "it on at", domain.TypeWork, 0, "/w")
	// Stopwords and two-char words contribute nothing beyond title-level rules.
	if s := score(doc, query.New("on it")); s != titleExactScore {
		t.Errorf("score = %d, want exactly %d (title exact, no word bonuses)", s, titleExactScore)
	}
}

func TestScore_TypoFuzzyRanking(t *testing.T) {
	sculpture := makeDoc(t, "Sound Sculpture", "", "", domain.TypeWork, 0, "/a")
	clearing := makeDoc(t, "Sound Clearing", "", "", domain.TypeWork, 0, "/b")

	q := query.New("sound scuplture")
	a := score(sculpture, q)
	b := score(clearing, q)
	if a <= b {
		t.Errorf("typo query: Sound Sculpture (%d) should outrank Sound Clearing (%d)", a, b)
	}
}

func TestScore_BilingualVariantsNotDoubleCounted(t *testing.T) {
	bilingual := makeDoc(t, "Sound", "Hljóð", "", domain.TypeWork, 0, "/a")
	plain := makeDoc(t, "Sound", "", "", domain.TypeWork, 0, "/b")

	// Title-level rules take the best variant, so a bilingual doc whose
	// English title matches exactly scores the same as a plain one.
	q := query.New("sound")
	if sa, sb := score(bilingual, q), score(plain, q); sa != sb {
		t.Errorf("bilingual %d != plain %d", sa, sb)
	}

	// And the Icelandic variant matches on its own.
	if s := score(bilingual, query.New("hljod")); s < titleExactScore {
		t.Errorf("folded Icelandic variant score = %d, want >= %d", s, titleExactScore)
	}
}

func TestScore_EmptyQuery(t *testing.T) {
	doc := makeDoc(t, "Sound", "", "sound", domain.TypeWork, 0, "/w")
	if s := score(doc, query.New("   ")); s != 0 {
		t.Errorf("score on blank query = %d, want 0", s)
	}
}
