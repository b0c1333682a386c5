package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
)

var (
	ErrProfileNotFound = errors.New("customer profile not found")
	ErrProfileExists   = errors.New("customer profile already exists")
)

// CustomerProfileInput carries optional fields; nil means "leave unchanged"
// on update and "use the zero value" on create.
type CustomerProfileInput struct {
	Age                *int               `json:"age"`
	Gender             *string            `json:"gender"`
	GenderOtherText    *string            `json:"gender_other_text"`
	DietaryPreferences *models.StringList `json:"dietary_preferences"`
	FavoriteCuisine    *string            `json:"favorite_cuisine"`
	OrderHistory       *models.StringList `json:"order_history"`
}

func (in *CustomerProfileInput) apply(c *models.Customer) {
	if in.Age != nil {
		c.Age = *in.Age
	}
	if in.Gender != nil {
		c.Gender = *in.Gender
	}
	if in.GenderOtherText != nil {
		c.GenderOtherText = *in.GenderOtherText
	}
	if in.DietaryPreferences != nil {
		c.DietaryPreferences = *in.DietaryPreferences
	}
	if in.FavoriteCuisine != nil {
		c.FavoriteCuisine = *in.FavoriteCuisine
	}
	if in.OrderHistory != nil {
		c.OrderHistory = *in.OrderHistory
	}
}

// CreateCustomerProfile creates the 1:1 profile; one per user.
func CreateCustomerProfile(db *gorm.DB, userID uint, in CustomerProfileInput) (*models.Customer, error) {
	var existing models.Customer
	if err := db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, ErrProfileExists
	}

	profile := models.Customer{
		UserID:             userID,
		DietaryPreferences: models.StringList{},
		OrderHistory:       models.StringList{},
	}
	in.apply(&profile)

	if err := db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetCustomerProfile loads the profile for a user.
func GetCustomerProfile(db *gorm.DB, userID uint) (*models.Customer, error) {
	var profile models.Customer
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateCustomerProfile applies a partial update, creating the profile lazily
// on the first write.
func UpdateCustomerProfile(db *gorm.DB, userID uint, in CustomerProfileInput) (*models.Customer, error) {
	var profile models.Customer
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CreateCustomerProfile(db, userID, in)
		}
		return nil, err
	}

	in.apply(&profile)
	if err := db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteCustomerProfile removes the profile row.
func DeleteCustomerProfile(db *gorm.DB, userID uint) error {
	res := db.Where("user_id = ?", userID).Delete(&models.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
