package domain

import (
	"unicode"
	"unicode/utf8"
)

// Type tags a document with its archive section. Closed vocabulary; entries
// outside it fall back to the document's page field for display.
type Type string

// Document type vocabulary.
const (
	TypeWork            Type = "work"
	TypeGroupExhibition Type = "group-exhibition"
	TypeSoloExhibition  Type = "solo-exhibition"
	TypeReview          Type = "review"
	TypePublication     Type = "publication"
	TypeBiography       Type = "biography"
	TypeTheater         Type = "theater"
	TypeCollections     Type = "collections"
	TypeCollectionWork  Type = "collection-work"
)

// IsExhibition reports whether the type is any exhibition kind.
func (t Type) IsExhibition() bool {
	return t == TypeGroupExhibition || t == TypeSoloExhibition
}

// IsCollection reports whether the type belongs to the collections section.
func (t Type) IsCollection() bool {
	return t == TypeCollections || t == TypeCollectionWork
}

var typeLabels = map[Type]map[string]string{
	TypeWork:            {"en": "Works", "is": "Verk"},
	TypeGroupExhibition: {"en": "Group Exhibitions", "is": "Samsýningar"},
	TypeSoloExhibition:  {"en": "Solo Exhibitions", "is": "Einkasýningar"},
	TypeReview:          {"en": "Reviews", "is": "Gagnrýni"},
	TypePublication:     {"en": "Publications", "is": "Útgáfur"},
	TypeBiography:       {"en": "Biography", "is": "Æviágrip"},
	TypeTheater:         {"en": "Theater", "is": "Leikhús"},
	TypeCollections:     {"en": "Collections", "is": "Söfn"},
	TypeCollectionWork:  {"en": "Collection Works", "is": "Safnverk"},
}

// Label returns the display badge for the type in the given UI language,
// falling back to English when the Icelandic label is missing.
// ok is false for types outside the vocabulary; callers then use the
// document's page field (see PageLabel).
func (t Type) Label(lang string) (string, bool) {
	labels, ok := typeLabels[t]
	if !ok {
		return "", false
	}
	if l, found := labels[lang]; found {
		return l, true
	}
	return labels["en"], true
}

// PageLabel capitalizes a page key for display when the type has no label.
func PageLabel(page string) string {
	if page == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(page)
	return string(unicode.ToUpper(r)) + page[size:]
}
