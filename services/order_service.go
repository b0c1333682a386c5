package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
)

// ErrRestaurantNotFound means the requested restaurant id does not exist.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ItemUnavailableError names the menu item that is missing, unavailable, or
// does not belong to the requested restaurant.
type ItemUnavailableError struct {
	MenuItemID uint
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu item %d not found or unavailable", e.MenuItemID)
}

// InsufficientStockError names the menu item whose stock cannot cover the
// requested quantity.
type InsufficientStockError struct {
	Name string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Name)
}

type OrderItemRequest struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Qty        int    `json:"qty" binding:"required,min=1"`
	Portion    string `json:"portion"`
}

type PlaceOrderRequest struct {
	RestaurantID uint               `json:"restaurantId" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder validates every requested item, decrements stock, and creates the
// PENDING order — all inside one transaction, so either everything is
// persisted or nothing is.
//
// The stock decrement is a conditional UPDATE (stock >= qty in the WHERE
// clause): two concurrent orders racing for the same scarce units can both
// pass the read, but only one can win the decrement. The loser sees zero rows
// affected and the whole transaction rolls back, so stock never goes negative.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (*models.Order, error) {
	var order *models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, req.RestaurantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}

		total := decimal.Zero
		snapshots := make(models.OrderItemList, 0, len(req.Items))

		for _, item := range req.Items {
			var menuItem models.MenuItem
			err := tx.Where("id = ? AND restaurant_id = ? AND is_available = ?",
				item.MenuItemID, req.RestaurantID, true).
				First(&menuItem).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ItemUnavailableError{MenuItemID: item.MenuItemID}
				}
				return err
			}

			res := tx.Model(&models.MenuItem{}).
				Where("id = ? AND stock >= ?", menuItem.ID, item.Qty).
				Updates(map[string]interface{}{
					"stock":        gorm.Expr("stock - ?", item.Qty),
					"orders_count": gorm.Expr("orders_count + ?", item.Qty),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{Name: menuItem.Name}
			}

			lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
			total = total.Add(lineTotal)

			portion := item.Portion
			if portion == "" {
				portion = "regular"
			}
			snapshots = append(snapshots, models.OrderItemSnapshot{
				MenuItemID: menuItem.ID,
				Name:       menuItem.Name,
				Price:      menuItem.Price,
				Qty:        item.Qty,
				Portion:    portion,
			})
		}

		order = &models.Order{
			UserID:       userID,
			RestaurantID: req.RestaurantID,
			Items:        snapshots,
			TotalAmount:  total,
			Status:       models.OrderPending,
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
