package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
)

var (
	// ErrOrderNotFound covers both a missing order and an order belonging
	// to another restaurant; callers respond 404 either way.
	ErrOrderNotFound = errors.New("order not found")

	ErrInvalidStatus = errors.New("invalid order status")
)

func isKnownStatus(status string) bool {
	for _, s := range models.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// TransitionOrderStatus moves an order to the given status on behalf of the
// restaurant that owns it. Any known status may be set from any other: the
// seller has full discretion over the lifecycle. Adjacency rules, if ever
// wanted, belong here and nowhere else.
func TransitionOrderStatus(db *gorm.DB, restaurantID, orderID uint, status string) error {
	if !isKnownStatus(status) {
		return ErrInvalidStatus
	}

	res := db.Model(&models.Order{}).
		Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
