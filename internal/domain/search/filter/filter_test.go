package filter

import (
	"errors"
	"testing"

	"github.com/palsson-archive/leit/internal/domain"
)

func doc(t *testing.T, docType domain.Type, year int, content string) domain.Document {
	t.Helper()
	d, err := domain.NewDocument(
		domain.NewPlainText("title"), content, domain.BilingualText{},
		docType, year, "/x", "",
	)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	return d
}

func TestDefault_PassesEverything(t *testing.T) {
	f := Default()
	docs := []domain.Document{
		doc(t, domain.TypeWork, 1973, "a sculpture"),
		doc(t, domain.TypeSoloExhibition, 2024, ""),
		doc(t, domain.TypeBiography, 0, "text without keywords"),
	}
	for _, d := range docs {
		if !f.Matches(d) {
			t.Errorf("default filters rejected %q doc", d.Type())
		}
	}
	if !f.IsDefault() {
		t.Error("IsDefault() = false for Default()")
	}
}

func TestNew_UnknownValues(t *testing.T) {
	if _, err := New("films", 0, "", ""); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Errorf("unknown type: err = %v", err)
	}
	if _, err := New("", 0, "oil-paint", ""); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Errorf("unknown medium: err = %v", err)
	}
	if _, err := New("", 0, "", "louvre"); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Errorf("unknown institution: err = %v", err)
	}
}

func TestNew_ClampsYear(t *testing.T) {
	f, err := New("", 1800, "", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.YearMax() != YearFloor {
		t.Errorf("YearMax() = %d, want floor %d", f.YearMax(), YearFloor)
	}

	f, err = New("", 2200, "", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.YearMax() != YearCeiling {
		t.Errorf("YearMax() = %d, want ceiling %d", f.YearMax(), YearCeiling)
	}
}

func TestMatches_TypeFacet(t *testing.T) {
	solo := doc(t, domain.TypeSoloExhibition, 0, "")
	group := doc(t, domain.TypeGroupExhibition, 0, "")
	work := doc(t, domain.TypeWork, 0, "")
	collWork := doc(t, domain.TypeCollectionWork, 0, "")
	colls := doc(t, domain.TypeCollections, 0, "")

	exhibition, _ := New(TypeExhibition, 0, "", "")
	if !exhibition.Matches(solo) || !exhibition.Matches(group) || exhibition.Matches(work) {
		t.Error("exhibition facet misclassified")
	}

	collection, _ := New(TypeCollection, 0, "", "")
	if !collection.Matches(collWork) || !collection.Matches(colls) || collection.Matches(work) {
		t.Error("collection facet misclassified")
	}

	workOnly, _ := New(TypeWork, 0, "", "")
	if !workOnly.Matches(work) || workOnly.Matches(collWork) {
		t.Error("work facet misclassified")
	}

	exact, _ := New("review", 0, "", "")
	if exact.Matches(work) || !exact.Matches(doc(t, domain.TypeReview, 0, "")) {
		t.Error("concrete type facet misclassified")
	}
}

func TestMatches_YearUpperBound(t *testing.T) {
	f, _ := New("", 1980, "", "")
	if !f.Matches(doc(t, domain.TypeWork, 1973, "")) {
		t.Error("1973 doc rejected by 1980 bound")
	}
	if f.Matches(doc(t, domain.TypeWork, 1990, "")) {
		t.Error("1990 doc passed 1980 bound")
	}
	if !f.Matches(doc(t, domain.TypeWork, 0, "")) {
		t.Error("yearless doc rejected by year facet")
	}
}

func TestMatches_MediumKeywords(t *testing.T) {
	f, _ := New("", 0, "sculpture", "")
	if !f.Matches(doc(t, domain.TypeWork, 0, "a sculptural piece in plaster")) {
		t.Error("sculptural content rejected")
	}
	// Icelandic keyword with diacritics matches folded content.
	if !f.Matches(doc(t, domain.TypeWork, 0, "skúlptúr úr gifsi")) {
		t.Error("Icelandic sculpture keyword rejected")
	}
	if f.Matches(doc(t, domain.TypeWork, 0, "a video work")) {
		t.Error("non-sculpture content passed sculpture facet")
	}
}

func TestMatches_InstitutionKeywords(t *testing.T) {
	f, _ := New("", 0, "", "living-art-museum")
	if !f.Matches(doc(t, domain.TypeWork, 0, "shown at Nýlistasafnið in 1979")) {
		t.Error("Icelandic institution name rejected")
	}
	if !f.Matches(doc(t, domain.TypeWork, 0, "The Living Art Museum retrospective")) {
		t.Error("English institution name rejected")
	}
	if f.Matches(doc(t, domain.TypeWork, 0, "shown at Tate Modern")) {
		t.Error("wrong institution passed")
	}
}

func TestReconstruct_RoundTrip(t *testing.T) {
	f, _ := New("work", 1990, "sound", "tate")
	r := Reconstruct(f.Type(), f.YearMax(), f.Medium(), f.Institution())
	if r != f {
		t.Errorf("Reconstruct() = %+v, want %+v", r, f)
	}
}
