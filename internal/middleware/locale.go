package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/amrsalem/go-user-service/internal/i18n"
)

// localeKey is the gin context key holding the negotiated request locale.
const localeKey = "locale"

// LocaleDetector negotiates the request language once per request and
// stores it in the context for the responder and handlers.
func LocaleDetector() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeKey, i18n.DetectLocale(c.Request))
		c.Next()
	}
}

// Locale returns the negotiated locale for the request, defaulting when
// the detector did not run.
func Locale(c *gin.Context) string {
	if locale, ok := c.Get(localeKey); ok {
		if s, ok := locale.(string); ok {
			return s
		}
	}
	return i18n.DefaultLocale
}
