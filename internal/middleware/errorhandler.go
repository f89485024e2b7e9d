// Package middleware provides the HTTP middleware chain: panic-safe error
// responding, request IDs, request logging, locale detection, and optional
// request identity.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/amrsalem/go-user-service/internal/apierr"
	"github.com/amrsalem/go-user-service/internal/i18n"
)

// ErrorHandler is the global error responder. Handlers attach raw
// failures with c.Error and return; this middleware classifies the first
// failure, localizes the message, and emits exactly one JSON error
// response per failed request. Panics are recovered and flow through the
// same pipeline; their stack trace is attached to the body only in
// development mode.
func ErrorHandler(isDev bool, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			var raw error
			var stack []byte

			if rec := recover(); rec != nil {
				raw = fmt.Errorf("panic: %v", rec)
				stack = debug.Stack()
			} else if len(c.Errors) > 0 {
				raw = c.Errors[0].Err
			}

			if raw == nil {
				return
			}
			if c.Writer.Written() {
				// A handler already responded; nothing safe to add.
				return
			}

			respond(c, raw, stack, isDev, logger)
		}()

		c.Next()
	}
}

// respond runs Classify -> Translate -> Emit.
func respond(c *gin.Context, raw error, stack []byte, isDev bool, logger zerolog.Logger) {
	apiErr := apierr.Classify(raw)
	locale := Locale(c)

	message := i18n.Translate(string(apiErr.Code), locale, topLevelMeta(apiErr))

	meta := map[string]any{}
	for key, value := range apiErr.Meta {
		meta[key] = value
	}
	if fields := apiErr.Fields(); fields != nil {
		meta[apierr.MetaFields] = translateFields(fields, locale)
	}

	body := gin.H{
		"status":  apiErr.Status,
		"code":    apiErr.Code,
		"message": message,
		"meta":    meta,
	}
	if isDev && stack != nil {
		body["stack"] = string(stack)
	}

	event := logger.Warn()
	if apiErr.StatusCode >= 500 {
		event = logger.Error()
	}
	event.
		Err(raw).
		Str("code", string(apiErr.Code)).
		Int("status", apiErr.StatusCode).
		Str("path", c.Request.URL.Path).
		Str("method", c.Request.Method).
		Msg("request failed")

	c.JSON(apiErr.StatusCode, body)
}

// topLevelMeta is the meta used for the top-level message template,
// excluding the reserved fields list.
func topLevelMeta(apiErr *apierr.Error) map[string]any {
	if apiErr.Meta == nil {
		return nil
	}
	meta := make(map[string]any, len(apiErr.Meta))
	for key, value := range apiErr.Meta {
		if key == apierr.MetaFields {
			continue
		}
		meta[key] = value
	}
	return meta
}

// translateFields localizes the per-field sub-codes, keeping the original
// code and field values and the original order.
func translateFields(fields []apierr.Field, locale string) []apierr.Field {
	translated := make([]apierr.Field, len(fields))
	for i, field := range fields {
		meta := map[string]any{"field": field.Field}
		for key, value := range field.Meta {
			meta[key] = value
		}

		translated[i] = field
		translated[i].Message = i18n.Translate(field.Code, locale, meta)
	}
	return translated
}
