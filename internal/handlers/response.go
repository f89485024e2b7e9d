// Package handlers provides the HTTP handlers and route table for the
// user service. Handlers attach raw failures to the gin context and
// return; the error responder middleware owns the error contract.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/amrsalem/go-user-service/internal/i18n"
	"github.com/amrsalem/go-user-service/internal/middleware"
)

// Success message codes, translated through the same catalog as errors.
const (
	msgUserListed    = "USER_LISTED"
	msgUserRetrieved = "USER_RETRIEVED"
	msgUserCreated   = "USER_CREATED"
	msgUserUpdated   = "USER_UPDATED"
	msgUserDeleted   = "USER_DELETED"
)

// respondSuccess emits the uniform success envelope with the message code
// localized to the request language.
func respondSuccess(c *gin.Context, status int, messageCode string, data gin.H) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": i18n.Translate(messageCode, middleware.Locale(c), nil),
		"data":    data,
	})
}
