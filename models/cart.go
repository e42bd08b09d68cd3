package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem holds one product in a user's cart. A user has at most one row
// per product; repeated adds accumulate into Quantity.
type CartItem struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	UserID       string  `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID    string  `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	ProductName  string  `gorm:"not null" json:"product_name"`
	ProductPrice float64 `gorm:"not null" json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `gorm:"not null" json:"quantity"`

	// TotalPrice is never stored; it is recomputed from Quantity and
	// ProductPrice on every read.
	TotalPrice float64 `gorm:"-" json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
