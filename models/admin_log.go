package models

import "time"

// AdminLog is an append-only audit record. Rows are never updated or deleted,
// so there is no updated_at column.
type AdminLog struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	AdminID      uint   `gorm:"not null;index" json:"admin_id"`
	Admin        User   `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	Action       string `gorm:"type:varchar(255);not null" json:"action"`
	TargetUserID *uint  `gorm:"index" json:"target_user_id,omitempty"`
	TargetUser   *User  `gorm:"foreignKey:TargetUserID" json:"target_user,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
