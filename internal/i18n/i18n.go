// Package i18n renders error and status codes as human-readable messages
// in the caller's negotiated language. Catalogs are embedded at build
// time, loaded once, and never mutated, so lookups are safe for any
// number of concurrent requests.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLocale is the fallback language when negotiation finds no match
// or a catalog entry is missing in the requested language.
const DefaultLocale = "en"

// fieldsNamespace prefixes catalog keys that translate field names.
const fieldsNamespace = "FIELDS."

// catalogs maps locale -> flattened message key -> template. Nested
// catalog objects are flattened with dot-joined keys at load time.
var catalogs = loadCatalogs()

func loadCatalogs() map[string]map[string]string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		panic(fmt.Sprintf("i18n: read embedded locales: %v", err))
	}

	loaded := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		locale := strings.TrimSuffix(entry.Name(), ".json")
		raw, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("i18n: read catalog %s: %v", locale, err))
		}

		var nested map[string]any
		if err := json.Unmarshal(raw, &nested); err != nil {
			panic(fmt.Sprintf("i18n: parse catalog %s: %v", locale, err))
		}

		flat := make(map[string]string)
		flatten("", nested, flat)
		loaded[locale] = flat
	}
	return loaded
}

func flatten(prefix string, nested map[string]any, out map[string]string) {
	for key, value := range nested {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			flatten(full, v, out)
		}
	}
}

// Locales returns the locales with an embedded catalog.
func Locales() []string {
	locales := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		locales = append(locales, locale)
	}
	return locales
}

// Translate renders code in the given locale. Lookup falls back to the
// default locale and finally to the code itself, so it never fails and
// never returns an empty string. When meta carries a "field" entry, the
// field name is itself translated through the FIELDS namespace before
// substitution. All other meta entries substitute {{key}} placeholders
// in the template.
func Translate(code, locale string, meta map[string]any) string {
	template := lookup(code, locale)

	for key, value := range meta {
		placeholder := "{{" + key + "}}"
		if !strings.Contains(template, placeholder) {
			continue
		}
		rendered := fmt.Sprintf("%v", value)
		if key == "field" {
			rendered = TranslateField(rendered, locale)
		}
		template = strings.ReplaceAll(template, placeholder, rendered)
	}
	return template
}

// TranslateField renders a field name in the given locale, falling back
// to the raw name when no FIELDS entry exists.
func TranslateField(field, locale string) string {
	key := fieldsNamespace + field
	if message, ok := catalogs[locale][key]; ok {
		return message
	}
	if message, ok := catalogs[DefaultLocale][key]; ok {
		return message
	}
	return field
}

func lookup(code, locale string) string {
	if message, ok := catalogs[locale][code]; ok {
		return message
	}
	if message, ok := catalogs[DefaultLocale][code]; ok {
		return message
	}
	return code
}
