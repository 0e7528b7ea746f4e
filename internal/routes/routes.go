package routes

import (
	"net/http"

	"cleanmatch_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler group under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		h.Account.RegisterRoutes(v1)
		h.Job.RegisterRoutes(v1)
		h.Favorite.RegisterRoutes(v1)
		h.Listing.RegisterRoutes(v1)
		h.Availability.RegisterRoutes(v1)
		h.Record.RegisterRoutes(v1)
	}
}
