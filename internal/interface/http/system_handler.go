package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// SystemHandler serves the health check, the root API index and the JSON
// 404. These endpoints keep their own literal body shapes instead of the
// standard envelope; monitoring tooling depends on them.
type SystemHandler struct {
	ServiceName string
}

func NewSystemHandler(serviceName string) *SystemHandler {
	return &SystemHandler{ServiceName: serviceName}
}

// Health GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.ServiceName,
		"version":   apiVersion,
	})
}

// Root GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Kudos Wall Backend API",
		"version": apiVersion,
		"endpoints": gin.H{
			"health":     "/health",
			"register":   "/auth/register",
			"login":      "/auth/login",
			"categories": "/categories",
			"recipients": "/users/recipients",
			"kudos":      "/kudos",
		},
	})
}

// NotFound is the fallback for unmatched routes.
func (h *SystemHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":     "Not Found",
		"message":   "Route " + c.Request.URL.Path + " not found",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
