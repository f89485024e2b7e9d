package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the HTTP header carrying the request correlation id.
const RequestIDHeader = "X-Request-Id"

// requestIDKey is the gin context key holding the request id.
const requestIDKey = "request_id"

// RequestID ensures every request carries a correlation id, reusing the
// client's when present and echoing it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request id for the current request, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
