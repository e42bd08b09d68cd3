package routes

import (
	"github.com/GIZZN/TechnoShop/auth"
	userControllers "github.com/GIZZN/TechnoShop/controllers/user"
	"github.com/GIZZN/TechnoShop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db)) // POST /auth/register
		authGroup.POST("/login", auth.LoginHandler(db))       // POST /auth/login
		authGroup.POST("/logout", auth.LogoutHandler())       // POST /auth/logout

		// Current identity, requires a valid token
		authGroup.GET("/me", middleware.ValidateToken, userControllers.GetUser(db))
	}
}
