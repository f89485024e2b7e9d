package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/amrsalem/go-user-service/internal/apierr"
)

// RegisterRoutes mounts the API route table. identity may be nil in tests
// that exercise routes without token verification.
func RegisterRoutes(r *gin.Engine, users *UserHandler, health *HealthHandler, identity gin.HandlerFunc) {
	if health != nil {
		r.GET("/health", health.Check)
	}

	v1 := r.Group("/api/v1")
	if identity != nil {
		v1.Use(identity)
	}

	userRoutes := v1.Group("/users")
	{
		userRoutes.GET("", users.List)
		userRoutes.POST("", users.Create)
		userRoutes.GET("/:id", users.GetByID)
		userRoutes.PUT("/:id", users.Update)
		userRoutes.PATCH("/:id", users.Update)
		userRoutes.DELETE("/:id", users.Delete)
		userRoutes.GET("/email/:email", users.GetByEmail)
	}

	// Unmatched routes flow through the same error pipeline as everything else.
	r.NoRoute(func(c *gin.Context) {
		fail(c, apierr.New(apierr.CodeNotFound))
	})
}
