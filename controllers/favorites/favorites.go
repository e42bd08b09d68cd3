package favoritesControllers

import (
	"log"
	"net/http"

	"github.com/GIZZN/TechnoShop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddToFavoritesInput struct {
	ProductID string  `json:"id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

// -------- Core Logic --------

func GetFavorites(db *gorm.DB, userID string) ([]models.FavoriteItem, error) {
	var items []models.FavoriteItem
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToFavorites inserts a bookmark; adding an already-favorited product
// is a no-op, not an error.
func AddToFavorites(db *gorm.DB, userID string, input AddToFavoritesInput) (*models.FavoriteItem, error) {
	item := models.FavoriteItem{
		UserID:          userID,
		ProductID:       input.ProductID,
		ProductName:     input.Name,
		ProductPrice:    input.Price,
		ProductImage:    input.Image,
		ProductCategory: input.Category,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(&item).Error; err != nil {
		return nil, err
	}

	var saved models.FavoriteItem
	if err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// RemoveFromFavorites deletes a bookmark. Idempotent; reports whether a
// row was deleted.
func RemoveFromFavorites(db *gorm.DB, userID, productID string) (bool, error) {
	result := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.FavoriteItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func IsFavorite(db *gorm.DB, userID, productID string) (bool, error) {
	var count int64
	if err := db.Model(&models.FavoriteItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// -------- Handlers --------

// GET /user/favorites
func GetFavoritesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		favorites, err := GetFavorites(db, userID)
		if err != nil {
			log.Printf("favorites: fetch failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": favorites})
	}
}

// POST /user/favorites
func AddToFavoritesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input AddToFavoritesInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		favorite, err := AddToFavorites(db, userID, input)
		if err != nil {
			log.Printf("favorites: add failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to favorites"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"favorite": favorite})
	}
}

// DELETE /user/favorites/:product_id
func RemoveFromFavoritesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		productID := c.Param("product_id")

		removed, err := RemoveFromFavorites(db, userID, productID)
		if err != nil {
			log.Printf("favorites: remove failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites", "removed": removed})
	}
}

// GET /user/favorites/:product_id
func IsFavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		productID := c.Param("product_id")

		isFavorite, err := IsFavorite(db, userID, productID)
		if err != nil {
			log.Printf("favorites: check failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
	}
}
