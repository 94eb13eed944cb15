// Package i18n resolves the visitor's display language. The site is
// bilingual and the choice is stored client side, so resolution is a
// plain precedence chain over the request.
package i18n

import "net/http"

// Supported language codes.
const (
	English   = "en"
	Icelandic = "is"
)

// CookieName is the cookie the site sets when the visitor picks a language.
const CookieName = "language"

// Supported reports whether code is a language the site can render.
func Supported(code string) bool {
	return code == English || code == Icelandic
}

// Resolver picks the display language for a request.
type Resolver struct {
	fallback string
}

// NewResolver creates a Resolver. An unsupported fallback is coerced to English.
func NewResolver(fallback string) *Resolver {
	if !Supported(fallback) {
		fallback = English
	}
	return &Resolver{fallback: fallback}
}

// Resolve returns the language for r: the lang query parameter wins,
// then the language cookie, then the configured fallback.
func (rv *Resolver) Resolve(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); Supported(lang) {
		return lang
	}
	if c, err := r.Cookie(CookieName); err == nil && Supported(c.Value) {
		return c.Value
	}
	return rv.fallback
}

// NoResultsMessage returns the localized empty-result notice.
func NoResultsMessage(lang string) string {
	if lang == Icelandic {
		return "Engar niðurstöður fundust"
	}
	return "No results found"
}
