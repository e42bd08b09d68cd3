package routes

import (
	"net/http"

	"github.com/GIZZN/TechnoShop/metrics"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, db)

	// Operational endpoints
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
