package cartControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/GIZZN/TechnoShop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddToCartInput struct {
	ProductID string  `json:"id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type UpdateCartItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

// -------- Core Logic --------

// GetCartItems returns the user's cart, newest first, with totals
// recomputed from quantity and unit price.
func GetCartItems(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].TotalPrice = float64(items[i].Quantity) * items[i].ProductPrice
	}
	return items, nil
}

// AddToCart upserts a cart line in one atomic statement: a new product
// inserts a row, a repeated add increments the existing quantity. Two
// rapid adds for the same product therefore accumulate instead of one
// overwriting the other.
func AddToCart(db *gorm.DB, userID string, input AddToCartInput) (*models.CartItem, error) {
	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return nil, models.ErrInvalidQuantity
	}

	item := models.CartItem{
		UserID:       userID,
		ProductID:    input.ProductID,
		ProductName:  input.Name,
		ProductPrice: input.Price,
		ProductImage: input.Image,
		Quantity:     qty,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", qty),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error; err != nil {
		return nil, err
	}

	// On the conflict path the struct above does not reflect the
	// accumulated row, so re-read it.
	var saved models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	saved.TotalPrice = float64(saved.Quantity) * saved.ProductPrice
	return &saved, nil
}

// UpdateCartItem sets the quantity of an existing line to exactly qty.
// qty <= 0 removes the line (removed=true). A missing line is reported as
// models.ErrNotFound with no side effects.
func UpdateCartItem(db *gorm.DB, userID, productID string, qty int) (*models.CartItem, bool, error) {
	if qty <= 0 {
		result := db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			return nil, false, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, false, models.ErrNotFound
		}
		return nil, true, nil
	}

	result := db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]interface{}{"quantity": qty, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, models.ErrNotFound
	}

	var item models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		// The re-read runs outside the update statement; a concurrent
		// removal of the line counts as a missing line, not a failure.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, models.ErrNotFound
		}
		return nil, false, err
	}
	item.TotalPrice = float64(item.Quantity) * item.ProductPrice
	return &item, false, nil
}

// RemoveFromCart deletes one line; equivalent to setting its quantity to 0.
func RemoveFromCart(db *gorm.DB, userID, productID string) error {
	_, _, err := UpdateCartItem(db, userID, productID, 0)
	return err
}

// ClearCart deletes every line for the user. Idempotent; reports whether
// anything was deleted.
func ClearCart(db *gorm.DB, userID string) (bool, error) {
	result := db.Where("user_id = ?", userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// -------- Handlers --------

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		items, err := GetCartItems(db, userID)
		if err != nil {
			log.Printf("cart: fetch failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// POST /user/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddToCart(db, userID, input)
		if err != nil {
			if errors.Is(err, models.ErrInvalidQuantity) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
				return
			}
			log.Printf("cart: add failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": item})
	}
}

// PUT /user/cart
func SetCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, removed, err := UpdateCartItem(db, userID, input.ProductID, *input.Quantity)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			log.Printf("cart: update failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if removed {
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		productID := c.Param("product_id")

		if err := RemoveFromCart(db, userID, productID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			log.Printf("cart: delete failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		cleared, err := ClearCart(db, userID)
		if err != nil {
			log.Printf("cart: clear failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "cleared": cleared})
	}
}
