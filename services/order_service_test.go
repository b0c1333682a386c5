package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
)

func setupOrderTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the shared in-memory database alive and
	// serializes concurrent transactions.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
	))
	return db
}

func seedRestaurantWithItem(t *testing.T, db *gorm.DB, price int64, stock int) (*models.Restaurant, *models.MenuItem) {
	t.Helper()

	seller := models.User{Name: "Seller", Email: fmt.Sprintf("seller-%s@test.local", t.Name()), Password: "x", Role: models.RoleSeller, Status: models.StatusApproved}
	require.NoError(t, db.Create(&seller).Error)

	restaurant := models.Restaurant{
		SellerID: seller.ID,
		Name:     "Spice Garden",
		Cuisines: models.StringList{"Indian"},
		Status:   models.RestaurantActive,
	}
	require.NoError(t, db.Create(&restaurant).Error)

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         "Chicken Biryani",
		Price:        decimal.NewFromInt(price),
		Stock:        stock,
		IsAvailable:  true,
	}
	require.NoError(t, db.Create(&item).Error)

	return &restaurant, &item
}

func TestPlaceOrderComputesTotalAndAdjustsStock(t *testing.T) {
	db := setupOrderTestDB(t, "order_total")
	restaurant, item := seedRestaurantWithItem(t, db, 1200, 20)

	order, err := PlaceOrder(db, 1, PlaceOrderRequest{
		RestaurantID: restaurant.ID,
		Items:        []OrderItemRequest{{MenuItemID: item.ID, Qty: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderPending, order.Status)
	assert.True(t, decimal.NewFromInt(2400).Equal(order.TotalAmount),
		"total should be 2400, got %s", order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Chicken Biryani", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Qty)
	assert.Equal(t, "regular", order.Items[0].Portion)
	assert.True(t, decimal.NewFromInt(1200).Equal(order.Items[0].Price))

	var updated models.MenuItem
	require.NoError(t, db.First(&updated, item.ID).Error)
	assert.Equal(t, 18, updated.Stock)
	assert.Equal(t, 2, updated.OrdersCount)
}

func TestPlaceOrderInsufficientStockLeavesEverythingUntouched(t *testing.T) {
	db := setupOrderTestDB(t, "order_insufficient")
	restaurant, item := seedRestaurantWithItem(t, db, 1200, 1)

	_, err := PlaceOrder(db, 1, PlaceOrderRequest{
		RestaurantID: restaurant.ID,
		Items:        []OrderItemRequest{{MenuItemID: item.ID, Qty: 2}},
	})
	require.Error(t, err)

	var insufficient *InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "Chicken Biryani", insufficient.Name)

	var updated models.MenuItem
	require.NoError(t, db.First(&updated, item.ID).Error)
	assert.Equal(t, 1, updated.Stock)
	assert.Equal(t, 0, updated.OrdersCount)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestPlaceOrderUnavailableItemFailsWhole(t *testing.T) {
	db := setupOrderTestDB(t, "order_unavailable")
	restaurant, item := seedRestaurantWithItem(t, db, 500, 10)

	hidden := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         "Seasonal Special",
		Price:        decimal.NewFromInt(900),
		Stock:        10,
		IsAvailable:  false,
	}
	require.NoError(t, db.Create(&hidden).Error)

	// The false value must survive the insert; a column default would
	// silently flip it to available.
	var persisted models.MenuItem
	require.NoError(t, db.First(&persisted, hidden.ID).Error)
	require.False(t, persisted.IsAvailable)

	_, err := PlaceOrder(db, 1, PlaceOrderRequest{
		RestaurantID: restaurant.ID,
		Items: []OrderItemRequest{
			{MenuItemID: item.ID, Qty: 3},
			{MenuItemID: hidden.ID, Qty: 1},
		},
	})
	require.Error(t, err)

	var unavailable *ItemUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, hidden.ID, unavailable.MenuItemID)

	// The first item passed validation but must be rolled back with the rest.
	var first models.MenuItem
	require.NoError(t, db.First(&first, item.ID).Error)
	assert.Equal(t, 10, first.Stock)
	assert.Equal(t, 0, first.OrdersCount)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestPlaceOrderUnknownRestaurant(t *testing.T) {
	db := setupOrderTestDB(t, "order_norestaurant")

	_, err := PlaceOrder(db, 1, PlaceOrderRequest{
		RestaurantID: 999,
		Items:        []OrderItemRequest{{MenuItemID: 1, Qty: 1}},
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestPlaceOrderItemFromOtherRestaurantRejected(t *testing.T) {
	db := setupOrderTestDB(t, "order_foreignitem")
	restaurant, _ := seedRestaurantWithItem(t, db, 700, 5)

	other := models.Restaurant{SellerID: 99, Name: "Other Place", Status: models.RestaurantActive}
	require.NoError(t, db.Create(&other).Error)
	foreign := models.MenuItem{
		RestaurantID: other.ID,
		Name:         "Foreign Dish",
		Price:        decimal.NewFromInt(300),
		Stock:        5,
		IsAvailable:  true,
	}
	require.NoError(t, db.Create(&foreign).Error)

	_, err := PlaceOrder(db, 1, PlaceOrderRequest{
		RestaurantID: restaurant.ID,
		Items:        []OrderItemRequest{{MenuItemID: foreign.ID, Qty: 1}},
	})

	var unavailable *ItemUnavailableError
	require.True(t, errors.As(err, &unavailable))
}

// Two orders racing for the same scarce units: the conditional decrement
// must never let stock go negative, and units sold can never exceed the
// units that existed.
func TestPlaceOrderConcurrentStockNeverNegative(t *testing.T) {
	db := setupOrderTestDB(t, "order_concurrent")
	const initialStock = 5
	restaurant, item := seedRestaurantWithItem(t, db, 1000, initialStock)

	const attempts = 10
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := PlaceOrder(db, userID, PlaceOrderRequest{
				RestaurantID: restaurant.ID,
				Items:        []OrderItemRequest{{MenuItemID: item.ID, Qty: 1}},
			})
			results <- err
		}(uint(i + 1))
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}

	var final models.MenuItem
	require.NoError(t, db.First(&final, item.ID).Error)

	assert.GreaterOrEqual(t, final.Stock, 0, "stock must never go negative")
	assert.LessOrEqual(t, succeeded, initialStock, "cannot sell more units than existed")
	assert.Equal(t, initialStock-succeeded, final.Stock)
	assert.Equal(t, succeeded, final.OrdersCount)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(succeeded), orderCount)
}
