package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteItem is a user-product bookmark. It has no relationship to the
// cart or to orders.
type FavoriteItem struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"uniqueIndex:idx_fav_user_product;not null" json:"user_id"`
	ProductID       string    `gorm:"uniqueIndex:idx_fav_user_product;not null" json:"product_id"`
	ProductName     string    `gorm:"not null" json:"product_name"`
	ProductPrice    float64   `gorm:"not null" json:"product_price"`
	ProductImage    string    `json:"product_image"`
	ProductCategory string    `json:"product_category"`
	CreatedAt       time.Time `json:"created_at"`
}

func (f *FavoriteItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
