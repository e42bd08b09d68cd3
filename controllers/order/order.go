package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/GIZZN/TechnoShop/metrics"
	"github.com/GIZZN/TechnoShop/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Response Structs --------

type FormattedOrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type FormattedOrder struct {
	ID     string               `json:"id"`
	Date   string               `json:"date"`
	Status string               `json:"status"`
	Total  float64              `json:"total"`
	Items  []FormattedOrderItem `json:"items"`
}

// FormatOrder shapes an order for the storefront: the externally visible
// order number stands in as the id.
func FormatOrder(order *models.Order) FormattedOrder {
	items := make([]FormattedOrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, FormattedOrderItem{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return FormattedOrder{
		ID:     order.OrderNumber,
		Date:   order.CreatedAt.Format("2006-01-02"),
		Status: order.Status.Label(),
		Total:  order.TotalAmount,
		Items:  items,
	}
}

// Generate unique order number, e.g. ORD-20250908130500-1a2b3c4d
var generateOrderNumber = func() string {
	return "ORD-" + time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// -------- Core Logic --------

// CreateOrder converts the user's current cart into an immutable order
// inside one transaction: read cart, compute the total, insert the order
// with line-item snapshots, clear the cart. Any failure rolls the whole
// thing back.
//
// The cart-clearing delete doubles as a double-submit guard: if a
// concurrent checkout already emptied the cart, the delete affects zero
// rows and this transaction aborts with ErrEmptyCart instead of creating
// a second order.
func CreateOrder(db *gorm.DB, userID string) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return models.ErrEmptyCart
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			total += item.ProductPrice * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Price:       item.ProductPrice,
			})
		}

		order = models.Order{
			UserID:      userID,
			OrderNumber: generateOrderNumber(),
			Status:      models.OrderStatusProcessing,
			TotalAmount: total,
			Items:       orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		result := tx.Where("user_id = ?", userID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrEmptyCart
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetUserOrders returns the user's orders with their line items, newest
// first.
func GetUserOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := db.
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// -------- Handlers --------

// POST /user/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		order, err := CreateOrder(db, userID)
		if err != nil {
			if errors.Is(err, models.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			log.Printf("order: checkout failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		metrics.OrdersCreated.Inc()
		broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created successfully",
			"order":   FormatOrder(order),
		})
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		orders, err := GetUserOrders(db, userID)
		if err != nil {
			log.Printf("order: list failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		formatted := make([]FormattedOrder, 0, len(orders))
		for i := range orders {
			formatted = append(formatted, FormatOrder(&orders[i]))
		}
		c.JSON(http.StatusOK, gin.H{"orders": formatted})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			log.Printf("order: admin list failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
