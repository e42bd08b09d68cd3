package routes

import (
	cartControllers "github.com/GIZZN/TechnoShop/controllers/cart"
	favoritesControllers "github.com/GIZZN/TechnoShop/controllers/favorites"
	orderControllers "github.com/GIZZN/TechnoShop/controllers/order"
	userControllers "github.com/GIZZN/TechnoShop/controllers/user"
	"github.com/GIZZN/TechnoShop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))                 // POST /user/cart
			cartGroup.PUT("/", cartControllers.SetCartItemQuantity(db))          // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))             // DELETE /user/cart
		}

		// ──────────────── Favorites ────────────────
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.GET("/", favoritesControllers.GetFavoritesHandler(db))                      // GET /user/favorites
			favGroup.POST("/", favoritesControllers.AddToFavoritesHandler(db))                   // POST /user/favorites
			favGroup.GET("/:product_id", favoritesControllers.IsFavoriteHandler(db))             // GET /user/favorites/:product_id
			favGroup.DELETE("/:product_id", favoritesControllers.RemoveFromFavoritesHandler(db)) // DELETE /user/favorites/:product_id
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db))   // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db)) // GET /user/orders
	}
}
