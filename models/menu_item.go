package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RestaurantID uint            `gorm:"not null;index" json:"restaurant_id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock        int             `gorm:"not null;default:0" json:"stock"`
	// OrdersCount only ever grows, by confirmed order quantities.
	OrdersCount int `gorm:"not null;default:0" json:"orders_count"`
	// No column default: gorm would skip a false value on insert and the
	// database default would win. Every create site sets this explicitly.
	IsAvailable bool      `gorm:"not null" json:"is_available"`
	Image       string    `gorm:"type:text" json:"image"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
