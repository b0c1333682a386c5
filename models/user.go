package models

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleSeller   = "SELLER"
	RoleCustomer = "CUSTOMER"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusSuspended = "SUSPENDED"
	StatusRejected  = "REJECTED"
)

type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"type:varchar(255);not null" json:"-"`
	Role             string     `gorm:"type:varchar(20);not null;default:'CUSTOMER'" json:"role"`
	Status           string     `gorm:"type:varchar(20);not null;default:'APPROVED'" json:"status"`
	ResetToken       *string    `gorm:"type:varchar(255)" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null" json:"updated_at"`
}
