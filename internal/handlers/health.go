package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Root describes the service and its endpoints.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Blog API Server",
		"version": "0.1.0",
		"endpoints": gin.H{
			"health": "/health",
			"users":  "/api/users",
			"posts":  "/api/posts",
			"ui":     "/ui",
		},
		"documentation": "See README.md for API documentation",
	})
}
