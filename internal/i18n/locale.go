package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// LangParam is the query parameter and cookie name carrying an explicit
// language override.
const LangParam = "lang"

// supported mirrors the embedded catalogs; the matcher's first tag is the
// fallback and must stay the default locale.
var supported = []language.Tag{
	language.English, // en (default)
	language.Arabic,  // ar
}

var matcher = language.NewMatcher(supported)

// DetectLocale negotiates the request language: Accept-Language header
// first, then the lang query parameter, then the lang cookie. The first
// source that matches a supported locale wins; otherwise the default
// locale is used. Nothing is cached across requests.
func DetectLocale(r *http.Request) string {
	if header := r.Header.Get("Accept-Language"); header != "" {
		if locale, ok := match(header); ok {
			return locale
		}
	}
	if query := r.URL.Query().Get(LangParam); query != "" {
		if locale, ok := match(query); ok {
			return locale
		}
	}
	if cookie, err := r.Cookie(LangParam); err == nil && cookie.Value != "" {
		if locale, ok := match(cookie.Value); ok {
			return locale
		}
	}
	return DefaultLocale
}

// match resolves an Accept-Language value (or a bare tag) against the
// supported locales, reporting whether anything actually matched rather
// than silently taking the matcher's fallback.
func match(value string) (string, bool) {
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	base, _ := supported[index].Base()
	return base.String(), true
}
