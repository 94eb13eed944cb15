// Package query normalizes and tokenizes search input. Normalization folds
// Icelandic and other accented Latin characters to base ASCII so that
// "thyrlulending" finds "Þyrlulending" regardless of which spelling the
// visitor can type on their keyboard.
package query

import (
	"regexp"
	"strings"
)

// foldTable maps lowercased accented characters to their base-Latin form.
// Icelandic ð and þ expand to "d" and "th"; æ expands to "ae". Grave, umlaut
// and circumflex variants fold to the same bases as the acute forms.
var foldTable = map[rune]string{
	'á': "a", 'à': "a", 'â': "a", 'ä': "a",
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'í': "i", 'ì': "i", 'î': "i", 'ï': "i",
	'ó': "o", 'ò': "o", 'ô': "o", 'ö': "o",
	'ú': "u", 'ù': "u", 'û': "u", 'ü': "u",
	'ý': "y", 'ÿ': "y",
	'ð': "d",
	'þ': "th",
	'æ': "ae",
}

// stopwords are dropped from the significant word set. Checked after
// lowercasing, so "The" is also a stopword.
var stopwords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
	"have": true, "it": true, "my": true, "i": true,
}

var yearRegex = regexp.MustCompile(`^\d{4}$`)

// Fold lowercases s and maps accented characters to their ASCII base forms.
func Fold(s string) string {
	lowered := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if folded, ok := foldTable[r]; ok {
			b.WriteString(folded)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Query is a normalized search input (immutable value object).
type Query struct {
	raw         string
	lowered     string
	folded      string
	significant []string
}

// New trims and normalizes raw search input.
func New(raw string) Query {
	trimmed := strings.TrimSpace(raw)
	lowered := strings.ToLower(trimmed)

	var significant []string
	for _, word := range strings.Split(lowered, " ") {
		if len([]rune(word)) <= 2 || stopwords[word] {
			continue
		}
		significant = append(significant, word)
	}

	return Query{
		raw:         trimmed,
		lowered:     lowered,
		folded:      Fold(trimmed),
		significant: significant,
	}
}

// Raw returns the trimmed original input.
func (q Query) Raw() string { return q.raw }

// Lowered returns the lowercased input with diacritics intact.
func (q Query) Lowered() string { return q.lowered }

// Folded returns the lowercased, accent-folded input.
func (q Query) Folded() string { return q.folded }

// SignificantWords returns lowercased words longer than two characters that
// are not stopwords. Diacritics are intact; fold per use.
func (q Query) SignificantWords() []string { return q.significant }

// Len returns the length of the trimmed input in runes.
func (q Query) Len() int { return len([]rune(q.raw)) }

// IsEmpty reports whether the query has no content.
func (q Query) IsEmpty() bool { return q.raw == "" }

// Year returns the query as a year when it is exactly four digits, 0 otherwise.
func (q Query) Year() int {
	if !yearRegex.MatchString(q.raw) {
		return 0
	}
	year := 0
	for _, d := range q.raw {
		year = year*10 + int(d-'0')
	}
	return year
}
