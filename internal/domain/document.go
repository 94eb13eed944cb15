package domain

// BilingualText is a value that may carry English and Icelandic variants.
// Legacy records store a single string; both accessors then return it.
type BilingualText struct {
	en string
	is string
}

// NewBilingualText creates a text with explicit language variants.
func NewBilingualText(en, is string) BilingualText {
	return BilingualText{en: en, is: is}
}

// NewPlainText creates a text from a legacy single-language string.
func NewPlainText(s string) BilingualText {
	return BilingualText{en: s}
}

// Localized returns the variant for the given language, falling back to the
// other language when the requested one is empty.
func (b BilingualText) Localized(lang string) string {
	if lang == "is" && b.is != "" {
		return b.is
	}
	if b.en != "" {
		return b.en
	}
	return b.is
}

// Variants returns the distinct non-empty language variants.
// Search scores a document against every variant so that diacritic and
// non-diacritic spellings both hit.
func (b BilingualText) Variants() []string {
	switch {
	case b.en == "" && b.is == "":
		return nil
	case b.is == "" || b.is == b.en:
		return []string{b.en}
	case b.en == "":
		return []string{b.is}
	default:
		return []string{b.en, b.is}
	}
}

// IsEmpty reports whether no variant is set.
func (b BilingualText) IsEmpty() bool { return b.en == "" && b.is == "" }

// Document is one searchable archive entry (immutable value object).
// The collection it belongs to is loaded once at startup and never written;
// search produces scored copies, it never mutates documents.
type Document struct {
	title   BilingualText
	content string
	snippet BilingualText
	docType Type
	year    int // 0 = no year recorded
	url     string
	page    string
}

// NewDocument creates a document. URL is the only hard requirement: a result
// without a destination cannot be navigated to.
func NewDocument(
	title BilingualText, content string, snippet BilingualText,
	docType Type, year int, url, page string,
) (Document, error) {
	if url == "" {
		return Document{}, ErrMissingURL
	}
	return Document{
		title:   title,
		content: content,
		snippet: snippet,
		docType: docType,
		year:    year,
		url:     url,
		page:    page,
	}, nil
}

// Reconstruct creates a document without validation (index hydration).
func Reconstruct(
	title BilingualText, content string, snippet BilingualText,
	docType Type, year int, url, page string,
) Document {
	return Document{
		title:   title,
		content: content,
		snippet: snippet,
		docType: docType,
		year:    year,
		url:     url,
		page:    page,
	}
}

// Title returns the bilingual title.
func (d Document) Title() BilingualText { return d.title }

// Content returns the free-text search corpus body.
func (d Document) Content() string { return d.content }

// Snippet returns the short text shown under the result title.
func (d Document) Snippet() BilingualText { return d.snippet }

// Type returns the archive section tag.
func (d Document) Type() Type { return d.docType }

// Year returns the document year, 0 when absent.
func (d Document) Year() int { return d.year }

// HasYear reports whether a year is recorded.
func (d Document) HasYear() bool { return d.year != 0 }

// URL returns the navigation destination.
func (d Document) URL() string { return d.url }

// Page returns the fallback label key for types outside the vocabulary.
func (d Document) Page() string { return d.page }
