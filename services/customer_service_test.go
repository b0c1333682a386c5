package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
)

func setupProfileTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db := setupOrderTestDB(t, name)
	require.NoError(t, db.AutoMigrate(&models.Customer{}))
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateCustomerProfile(t *testing.T) {
	db := setupProfileTestDB(t, "profile_create")

	prefs := models.StringList{"vegan"}
	profile, err := CreateCustomerProfile(db, 42, CustomerProfileInput{
		Age:                intPtr(31),
		Gender:             strPtr(models.GenderFemale),
		DietaryPreferences: &prefs,
		FavoriteCuisine:    strPtr("Italian"),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), profile.UserID)
	assert.Equal(t, 31, profile.Age)
	assert.Equal(t, models.GenderFemale, profile.Gender)
	assert.Equal(t, models.StringList{"vegan"}, profile.DietaryPreferences)
	assert.Equal(t, "Italian", profile.FavoriteCuisine)
	assert.NotNil(t, profile.OrderHistory)
}

func TestCreateCustomerProfileDuplicate(t *testing.T) {
	db := setupProfileTestDB(t, "profile_duplicate")

	_, err := CreateCustomerProfile(db, 42, CustomerProfileInput{})
	require.NoError(t, err)

	_, err = CreateCustomerProfile(db, 42, CustomerProfileInput{Age: intPtr(25)})
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestGetCustomerProfile(t *testing.T) {
	db := setupProfileTestDB(t, "profile_get")

	_, err := GetCustomerProfile(db, 42)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = CreateCustomerProfile(db, 42, CustomerProfileInput{FavoriteCuisine: strPtr("Thai")})
	require.NoError(t, err)

	profile, err := GetCustomerProfile(db, 42)
	require.NoError(t, err)
	assert.Equal(t, "Thai", profile.FavoriteCuisine)
}

func TestUpdateCustomerProfilePartial(t *testing.T) {
	db := setupProfileTestDB(t, "profile_update")

	_, err := CreateCustomerProfile(db, 42, CustomerProfileInput{
		Age:             intPtr(30),
		FavoriteCuisine: strPtr("Mexican"),
	})
	require.NoError(t, err)

	// Only age changes; the rest stays.
	updated, err := UpdateCustomerProfile(db, 42, CustomerProfileInput{Age: intPtr(31)})
	require.NoError(t, err)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "Mexican", updated.FavoriteCuisine)
}

func TestUpdateCustomerProfileCreatesLazily(t *testing.T) {
	db := setupProfileTestDB(t, "profile_lazy")

	profile, err := UpdateCustomerProfile(db, 42, CustomerProfileInput{FavoriteCuisine: strPtr("Japanese")})
	require.NoError(t, err)
	assert.Equal(t, uint(42), profile.UserID)
	assert.Equal(t, "Japanese", profile.FavoriteCuisine)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCustomerProfile(t *testing.T) {
	db := setupProfileTestDB(t, "profile_delete")

	assert.ErrorIs(t, DeleteCustomerProfile(db, 42), ErrProfileNotFound)

	_, err := CreateCustomerProfile(db, 42, CustomerProfileInput{})
	require.NoError(t, err)

	require.NoError(t, DeleteCustomerProfile(db, 42))
	_, err = GetCustomerProfile(db, 42)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
