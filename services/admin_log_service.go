package services

import (
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/utils"
)

// LogAdminAction appends an audit record. Best effort: a failed log write is
// reported but never fails the admin action itself.
func LogAdminAction(db *gorm.DB, adminID uint, action string, targetUserID *uint) {
	entry := models.AdminLog{
		AdminID:      adminID,
		Action:       action,
		TargetUserID: targetUserID,
	}
	if err := db.Create(&entry).Error; err != nil {
		utils.ErrorLogger.Printf("admin log failed: %v", err)
	}
}
