package models

import "time"

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Customer is the preference profile attached 1:1 to a CUSTOMER user.
// It is created at registration or lazily on the first profile write.
type Customer struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Age    int  `json:"age"`
	Gender string `gorm:"type:varchar(20)" json:"gender"`
	// Only used when Gender == "Other".
	GenderOtherText    string     `gorm:"type:varchar(120)" json:"gender_other_text"`
	DietaryPreferences StringList `gorm:"type:json" json:"dietary_preferences"`
	FavoriteCuisine    string     `gorm:"type:varchar(255)" json:"favorite_cuisine"`
	OrderHistory       StringList `gorm:"type:json" json:"order_history"`
	CreatedAt          time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"not null" json:"updated_at"`
}
