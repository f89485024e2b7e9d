package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amrsalem/go-user-service/internal/token"
)

// claimsKey is the gin context key holding the verified token claims.
const claimsKey = "claims"

// bearerPrefix is the accepted Authorization scheme.
const bearerPrefix = "Bearer "

// Identity attaches the verified token claims to requests that present an
// Authorization bearer token. Requests without a token pass through
// anonymously; a token that fails verification aborts the request and the
// raw jwt error flows to the error responder, which classifies it as
// TOKEN_EXPIRED or INVALID_TOKEN.
func Identity(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Claims returns the verified token claims for the request, or nil for
// anonymous requests.
func Claims(c *gin.Context) *token.Claims {
	if value, ok := c.Get(claimsKey); ok {
		if claims, ok := value.(*token.Claims); ok {
			return claims
		}
	}
	return nil
}
