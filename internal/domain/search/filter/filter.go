// Package filter narrows the candidate document set before scoring.
package filter

import (
	"fmt"
	"strings"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/query"
)

// Type facet values beyond the concrete document types.
const (
	TypeAll        = "all"
	TypeExhibition = "exhibition"
	TypeCollection = "collection"
	TypeWork       = "work"
)

// All matches every value of a keyword facet.
const All = "all"

// Year slider bounds. The year facet is an upper bound ("up to year X"),
// not a two-sided range.
const (
	YearFloor   = 1960
	YearCeiling = 2024
)

// mediumKeywords maps a medium facet to content keywords. Coverage of
// Icelandic variants is uneven in the archive data; kept as-is rather than
// guessed at.
var mediumKeywords = map[string][]string{
	"sculpture":    {"sculpture", "sculptural", "skúlptúr"},
	"sound":        {"sound", "audio", "hljóð", "hljóðverk"},
	"installation": {"installation", "innsetning"},
	"performance":  {"performance", "gjörningur"},
	"video":        {"video", "film", "myndband"},
	"drawing":      {"drawing", "teikning"},
	"book":         {"book", "publication", "bók"},
	"plaster":      {"plaster", "gifs"},
}

// institutionKeywords maps an institution facet to content keywords,
// including Icelandic institution names.
var institutionKeywords = map[string][]string{
	"living-art-museum":    {"living art museum", "nýlistasafnið", "nýló"},
	"national-gallery":     {"national gallery of iceland", "listasafn íslands"},
	"reykjavik-art-museum": {"reykjavík art museum", "listasafn reykjavíkur"},
	"asmundarsalur":        {"ásmundarsalur"},
	"moma":                 {"museum of modern art", "moma"},
	"tate":                 {"tate"},
}

// Filters is a validated facet predicate set (immutable value object).
type Filters struct {
	docType     string
	yearMax     int
	medium      string
	institution string
}

// Default returns the pass-everything filter set.
func Default() Filters {
	return Filters{docType: TypeAll, yearMax: YearCeiling, medium: All, institution: All}
}

// New validates facet values and creates a Filters.
// Empty strings and a zero year mean "no restriction". The year is clamped
// to the slider bounds.
func New(docType string, yearMax int, medium, institution string) (Filters, error) {
	f := Default()

	if docType != "" {
		if !validDocType(docType) {
			return Filters{}, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidFilter, docType)
		}
		f.docType = docType
	}
	if yearMax != 0 {
		if yearMax < YearFloor {
			yearMax = YearFloor
		}
		if yearMax > YearCeiling {
			yearMax = YearCeiling
		}
		f.yearMax = yearMax
	}
	if medium != "" && medium != All {
		if _, ok := mediumKeywords[medium]; !ok {
			return Filters{}, fmt.Errorf("%w: unknown medium %q", domain.ErrInvalidFilter, medium)
		}
		f.medium = medium
	}
	if institution != "" && institution != All {
		if _, ok := institutionKeywords[institution]; !ok {
			return Filters{}, fmt.Errorf("%w: unknown institution %q", domain.ErrInvalidFilter, institution)
		}
		f.institution = institution
	}
	return f, nil
}

// Reconstruct creates a Filters without validation (state hydration).
func Reconstruct(docType string, yearMax int, medium, institution string) Filters {
	return Filters{docType: docType, yearMax: yearMax, medium: medium, institution: institution}
}

// Type returns the type facet value.
func (f Filters) Type() string { return f.docType }

// YearMax returns the inclusive upper year bound.
func (f Filters) YearMax() int { return f.yearMax }

// Medium returns the medium facet value.
func (f Filters) Medium() string { return f.medium }

// Institution returns the institution facet value.
func (f Filters) Institution() string { return f.institution }

// IsDefault reports whether every facet passes everything.
func (f Filters) IsDefault() bool {
	return f.docType == TypeAll && f.yearMax == YearCeiling &&
		f.medium == All && f.institution == All
}

// Matches reports whether the document passes every active facet.
// Applied before scoring: rejected documents never reach the scorer.
func (f Filters) Matches(doc domain.Document) bool {
	return f.matchesType(doc) && f.matchesYear(doc) &&
		f.matchesKeywords(doc, f.medium, mediumKeywords) &&
		f.matchesKeywords(doc, f.institution, institutionKeywords)
}

func (f Filters) matchesType(doc domain.Document) bool {
	switch f.docType {
	case TypeAll:
		return true
	case TypeExhibition:
		return strings.Contains(string(doc.Type()), "exhibition")
	case TypeCollection:
		return doc.Type().IsCollection()
	default:
		return string(doc.Type()) == f.docType
	}
}

func (f Filters) matchesYear(doc domain.Document) bool {
	// Documents without a year are never excluded by the slider.
	if !doc.HasYear() {
		return true
	}
	return doc.Year() <= f.yearMax
}

func (f Filters) matchesKeywords(doc domain.Document, facet string, table map[string][]string) bool {
	if facet == All {
		return true
	}
	content := query.Fold(doc.Content())
	for _, kw := range table[facet] {
		if strings.Contains(content, query.Fold(kw)) {
			return true
		}
	}
	return false
}

func validDocType(t string) bool {
	switch t {
	case TypeAll, TypeExhibition, TypeCollection, TypeWork:
		return true
	}
	switch domain.Type(t) {
	case domain.TypeGroupExhibition, domain.TypeSoloExhibition, domain.TypeReview,
		domain.TypePublication, domain.TypeBiography, domain.TypeTheater,
		domain.TypeCollections, domain.TypeCollectionWork:
		return true
	}
	return false
}
