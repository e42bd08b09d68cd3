package cartControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/GIZZN/TechnoShop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.CartItem{},
		&models.FavoriteItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func TestAddToCartAccumulates(t *testing.T) {
	db := newTestDB(t)

	item, err := AddToCart(db, "user-1", AddToCartInput{
		ProductID: "p-1", Name: "Laptop", Price: 1000, Image: "laptop.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity) // default quantity
	assert.Equal(t, 1000.0, item.TotalPrice)

	item, err = AddToCart(db, "user-1", AddToCartInput{
		ProductID: "p-1", Name: "Laptop", Price: 1000, Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, 3000.0, item.TotalPrice)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.EqualValues(t, 1, count, "repeated adds must not create extra rows")
}

func TestAddToCartRejectsNegativeQuantity(t *testing.T) {
	db := newTestDB(t)

	_, err := AddToCart(db, "user-1", AddToCartInput{
		ProductID: "p-1", Name: "Laptop", Price: 1000, Quantity: -1,
	})
	require.ErrorIs(t, err, models.ErrInvalidQuantity)

	items, err := GetCartItems(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items, "validation failure must not touch the store")
}

func TestAddToCartIsolatesUsers(t *testing.T) {
	db := newTestDB(t)

	_, err := AddToCart(db, "user-1", AddToCartInput{ProductID: "p-1", Name: "Laptop", Price: 1000})
	require.NoError(t, err)
	_, err = AddToCart(db, "user-2", AddToCartInput{ProductID: "p-1", Name: "Laptop", Price: 1000, Quantity: 5})
	require.NoError(t, err)

	items, err := GetCartItems(db, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateCartItemSetsExactQuantity(t *testing.T) {
	db := newTestDB(t)

	_, err := AddToCart(db, "user-1", AddToCartInput{ProductID: "p-1", Name: "Laptop", Price: 500, Quantity: 2})
	require.NoError(t, err)

	item, removed, err := UpdateCartItem(db, "user-1", "p-1", 7)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 7, item.Quantity) // not incremental
	assert.Equal(t, 3500.0, item.TotalPrice)
}

func TestUpdateCartItemZeroRemoves(t *testing.T) {
	db := newTestDB(t)

	_, err := AddToCart(db, "user-1", AddToCartInput{ProductID: "p-1", Name: "Laptop", Price: 500})
	require.NoError(t, err)

	item, removed, err := UpdateCartItem(db, "user-1", "p-1", 0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Nil(t, item)

	items, err := GetCartItems(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateCartItemMissingIsNoOp(t *testing.T) {
	db := newTestDB(t)

	_, _, err := UpdateCartItem(db, "user-1", "missing", 3)
	require.ErrorIs(t, err, models.ErrNotFound)

	_, _, err = UpdateCartItem(db, "user-1", "missing", 0)
	require.ErrorIs(t, err, models.ErrNotFound)

	items, err := GetCartItems(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateCartItemRemovedMidUpdate(t *testing.T) {
	db := newTestDB(t)

	_, err := AddToCart(db, "user-1", AddToCartInput{
		ProductID: "p-1", Name: "Laptop", Price: 1000,
	})
	require.NoError(t, err)

	// The line vanishes between the update and the re-read; that is a
	// missing line, not an internal failure.
	require.NoError(t, db.Callback().Update().After("gorm:update").
		Register("test_remove_line", func(tx *gorm.DB) {
			if tx.Statement.Table == "cart_items" {
				tx.Session(&gorm.Session{NewDB: true}).Exec(
					"DELETE FROM cart_items WHERE user_id = ? AND product_id = ?",
					"user-1", "p-1",
				)
			}
		}))
	defer db.Callback().Update().Remove("test_remove_line")

	_, _, err = UpdateCartItem(db, "user-1", "p-1", 3)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestClearCartIdempotent(t *testing.T) {
	db := newTestDB(t)

	_, err := AddToCart(db, "user-1", AddToCartInput{ProductID: "p-1", Name: "Laptop", Price: 500})
	require.NoError(t, err)
	_, err = AddToCart(db, "user-1", AddToCartInput{ProductID: "p-2", Name: "Mouse", Price: 25})
	require.NoError(t, err)

	cleared, err := ClearCart(db, "user-1")
	require.NoError(t, err)
	assert.True(t, cleared)

	cleared, err = ClearCart(db, "user-1")
	require.NoError(t, err)
	assert.False(t, cleared)

	items, err := GetCartItems(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetCartItemsRecomputesTotals(t *testing.T) {
	db := newTestDB(t)

	_, err := AddToCart(db, "user-1", AddToCartInput{ProductID: "p-1", Name: "Laptop", Price: 100, Quantity: 2})
	require.NoError(t, err)
	_, err = AddToCart(db, "user-1", AddToCartInput{ProductID: "p-2", Name: "Mouse", Price: 50})
	require.NoError(t, err)

	items, err := GetCartItems(db, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	var total float64
	for _, item := range items {
		assert.Equal(t, float64(item.Quantity)*item.ProductPrice, item.TotalPrice)
		total += item.TotalPrice
	}
	assert.Equal(t, 250.0, total)
}
