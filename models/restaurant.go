package models

import "time"

const (
	RestaurantActive   = "ACTIVE"
	RestaurantInactive = "INACTIVE"
)

type Restaurant struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	SellerID      uint       `gorm:"not null;index" json:"seller_id"`
	Seller        User       `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	ContactNumber string     `gorm:"type:varchar(50)" json:"contact_number"`
	Address       string     `gorm:"type:varchar(255)" json:"address"`
	Cuisines      StringList `gorm:"type:json" json:"cuisines"`
	// ACTIVE only after the owning seller is approved.
	Status    string     `gorm:"type:varchar(20);not null;default:'INACTIVE'" json:"status"`
	Image     string     `gorm:"type:text" json:"image"`
	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID" json:"menu_items,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
