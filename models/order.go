package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderPreparing = "PREPARING"
	OrderReady     = "READY"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

// OrderStatuses lists every status a seller may set.
var OrderStatuses = []string{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderReady,
	OrderCompleted,
	OrderCancelled,
}

type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"not null;index" json:"user_id"`
	Customer     User            `gorm:"foreignKey:UserID" json:"customer,omitempty"`
	RestaurantID uint            `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant      `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Items        OrderItemList   `gorm:"type:json;not null" json:"items"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status       string          `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}
