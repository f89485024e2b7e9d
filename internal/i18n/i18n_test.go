package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogsLoaded(t *testing.T) {
	locales := Locales()

	assert.Contains(t, locales, "en")
	assert.Contains(t, locales, "ar")
}

func TestTranslateLookup(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		locale string
		want   string
	}{
		{name: "english entry", code: "USER_NOT_FOUND", locale: "en", want: "No user found with the given identifier."},
		{name: "arabic entry", code: "USER_NOT_FOUND", locale: "ar", want: "لا يوجد مستخدم بالمعرف المحدد."},
		{name: "unknown locale falls back to default", code: "NOT_FOUND", locale: "xx", want: "The requested resource was not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.code, tt.locale, nil))
		})
	}
}

// Fallback law: a code with no catalog entry in any locale renders as the
// code itself, never empty.
func TestTranslateFallbackLaw(t *testing.T) {
	got := Translate("SOME_UNKNOWN_CODE", "xx", nil)

	assert.Equal(t, "SOME_UNKNOWN_CODE", got)
	require.NotEmpty(t, got)
}

func TestTranslateSubstitutesPlaceholders(t *testing.T) {
	got := Translate("DUPLICATE_FIELD", "en", map[string]any{
		"field": "email",
		"value": "a@b.com",
	})

	assert.Equal(t, "Duplicate value for email: a@b.com.", got)
}

// meta.field is translated through the FIELDS namespace before
// substitution, so the field name follows the response language.
func TestTranslateFieldNamespace(t *testing.T) {
	got := Translate("VALIDATION_MIN_LENGTH", "en", map[string]any{
		"field": "phone",
		"min":   10,
	})

	assert.Equal(t, "phone number must be at least 10 characters.", got)

	gotAr := Translate("DUPLICATE_FIELD", "ar", map[string]any{
		"field": "email",
		"value": "a@b.com",
	})

	assert.Contains(t, gotAr, "البريد الإلكتروني")
}

func TestTranslateFieldFallsBackToRawName(t *testing.T) {
	assert.Equal(t, "unknownField", TranslateField("unknownField", "en"))
}

func TestTranslateIgnoresUnusedMeta(t *testing.T) {
	got := Translate("USER_NOT_FOUND", "en", map[string]any{"id": "abc123"})

	assert.Equal(t, "No user found with the given identifier.", got)
}
