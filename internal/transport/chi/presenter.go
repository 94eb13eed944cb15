package chi

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/result"
)

// Highlight markers. Inserted into already-escaped text and swapped for
// tags at the end, so query text can never smuggle markup into the output.
const (
	markOpen  = "\x00"
	markClose = "\x01"
)

func presentResults(results []result.Result, rawQuery, lang string) []ResultDTO {
	out := make([]ResultDTO, len(results))
	for i := range results {
		out[i] = presentResult(&results[i], rawQuery, lang)
	}
	return out
}

func presentResult(r *result.Result, rawQuery, lang string) ResultDTO {
	doc := r.Document()

	label, ok := doc.Type().Label(lang)
	if !ok {
		label = domain.PageLabel(doc.Page())
	}

	return ResultDTO{
		Title:     highlight(doc.Title().Localized(lang), rawQuery),
		Snippet:   highlight(doc.Snippet().Localized(lang), rawQuery),
		Label:     label,
		Type:      string(doc.Type()),
		URL:       doc.URL(),
		Year:      doc.Year(),
		Relevance: r.Relevance(),
	}
}

// highlight wraps query matches in text with <strong> tags. The text is
// HTML-escaped first. Two passes: the full query phrase, then each query
// word of two or more characters against the text outside the spans the
// phrase pass already marked, so overlapping matches never nest.
func highlight(text, rawQuery string) string {
	escaped := html.EscapeString(text)
	q := strings.TrimSpace(rawQuery)
	if q == "" {
		return escaped
	}

	marked := escaped
	if re, err := matchPattern(q); err == nil {
		marked = re.ReplaceAllString(marked, markOpen+"$0"+markClose)
	}

	seen := make(map[string]bool)
	for _, word := range strings.Fields(q) {
		if utf8.RuneCountInString(word) < 2 || seen[word] {
			continue
		}
		seen[word] = true
		if re, err := matchPattern(word); err == nil {
			marked = markOutside(marked, re)
		}
	}

	return strings.NewReplacer(markOpen, "<strong>", markClose, "</strong>").Replace(marked)
}

// markOutside wraps matches of re in the stretches of s that lie outside
// existing marked spans.
func markOutside(s string, re *regexp.Regexp) string {
	var b strings.Builder
	for {
		open := strings.Index(s, markOpen)
		if open < 0 {
			b.WriteString(re.ReplaceAllString(s, markOpen+"$0"+markClose))
			return b.String()
		}
		b.WriteString(re.ReplaceAllString(s[:open], markOpen+"$0"+markClose))

		end := strings.Index(s[open:], markClose)
		if end < 0 {
			b.WriteString(s[open:])
			return b.String()
		}
		b.WriteString(s[open : open+end+len(markClose)])
		s = s[open+end+len(markClose):]
	}
}

// matchPattern builds a case-insensitive literal pattern for s as it
// appears in escaped text.
func matchPattern(s string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)` + regexp.QuoteMeta(html.EscapeString(s)))
}
