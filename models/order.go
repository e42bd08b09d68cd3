package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	// Order statuses (typical storefront flow)
	OrderStatusProcessing OrderStatus = "processing" // Order placed, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusProcessing: "Processing",
	OrderStatusShipped:    "Shipped",
	OrderStatusDelivered:  "Delivered",
	OrderStatusCancelled:  "Cancelled",
}

// Label returns the human-presentable form of the status.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

type Order struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	UserID      string      `gorm:"index;not null" json:"user_id"`
	OrderNumber string      `gorm:"uniqueIndex;not null" json:"order_number"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'processing'" json:"status"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of a cart line at checkout time. It carries its
// own name and price so later catalog changes never alter past orders.
type OrderItem struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	OrderID     string    `gorm:"index;not null" json:"order_id"`
	ProductName string    `gorm:"not null" json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Price       float64   `gorm:"not null" json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
