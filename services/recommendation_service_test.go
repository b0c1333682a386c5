package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
)

func TestScoreRestaurant(t *testing.T) {
	profile := &models.Customer{
		FavoriteCuisine:    "Indian",
		DietaryPreferences: models.StringList{"vegan", "gluten-free"},
	}
	restaurant := models.Restaurant{Name: "Indian Spice House"}
	menu := []models.MenuItem{
		{Name: "Vegan Curry", OrdersCount: 40},
		{Name: "Gluten-Free Naan", OrdersCount: 25},
		{Name: "Butter Chicken", OrdersCount: 35},
	}

	// 50 (cuisine in name) + 10 + 10 (two dietary matches) + 10 (100/10 popularity).
	score := ScoreRestaurant(profile, restaurant, menu, false)
	assert.Equal(t, 80, score)

	// Same inputs, same score.
	assert.Equal(t, score, ScoreRestaurant(profile, restaurant, menu, false))

	// History adds a flat 15.
	assert.Equal(t, 95, ScoreRestaurant(profile, restaurant, menu, true))
}

func TestScoreRestaurantCuisineMatchDominates(t *testing.T) {
	profile := &models.Customer{FavoriteCuisine: "Thai"}

	matched := ScoreRestaurant(profile, models.Restaurant{Name: "Thai Orchid"}, nil, false)
	unmatched := ScoreRestaurant(profile, models.Restaurant{Name: "Pasta Corner"}, nil, false)

	assert.Equal(t, 50, matched)
	assert.Zero(t, unmatched)
	assert.Greater(t, matched, unmatched)
}

func TestScoreRestaurantPopularityIsCapped(t *testing.T) {
	profile := &models.Customer{}
	menu := []models.MenuItem{{Name: "Best Seller", OrdersCount: 10000}}

	score := ScoreRestaurant(profile, models.Restaurant{Name: "Anywhere"}, menu, false)
	assert.Equal(t, 30, score)
}

func TestScoreRestaurantDietaryBonusOncePerItem(t *testing.T) {
	// One item matching two preferences still scores a single bonus.
	profile := &models.Customer{DietaryPreferences: models.StringList{"vegan", "curry"}}
	menu := []models.MenuItem{{Name: "Vegan Curry"}}

	assert.Equal(t, 10, ScoreRestaurant(profile, models.Restaurant{Name: "X"}, menu, false))
}

func seedActiveRestaurant(t *testing.T, db *gorm.DB, name string, createdAt time.Time) models.Restaurant {
	t.Helper()
	r := models.Restaurant{SellerID: 1, Name: name, Status: models.RestaurantActive}
	require.NoError(t, db.Create(&r).Error)
	require.NoError(t, db.Model(&r).Update("created_at", createdAt).Error)
	r.CreatedAt = createdAt
	return r
}

func TestRecommendRestaurantsRanksByScore(t *testing.T) {
	db := setupOrderTestDB(t, "recommend_ranked")

	now := time.Now()
	plain := seedActiveRestaurant(t, db, "Burger Barn", now)
	favorite := seedActiveRestaurant(t, db, "Mexican Cantina", now.Add(-time.Hour))

	inactive := models.Restaurant{SellerID: 1, Name: "Closed Down", Status: models.RestaurantInactive}
	require.NoError(t, db.Create(&inactive).Error)

	customer := models.Customer{UserID: 42, FavoriteCuisine: "Mexican"}
	require.NoError(t, db.AutoMigrate(&models.Customer{}))
	require.NoError(t, db.Create(&customer).Error)

	scored, err := RecommendRestaurants(db, 42)
	require.NoError(t, err)

	require.Len(t, scored, 2, "inactive restaurants are excluded")
	assert.Equal(t, favorite.ID, scored[0].Restaurant.ID)
	assert.Equal(t, 50, scored[0].Score)
	assert.Equal(t, plain.ID, scored[1].Restaurant.ID)
	assert.Zero(t, scored[1].Score)
}

func TestRecommendRestaurantsWithoutProfileNewestFirst(t *testing.T) {
	db := setupOrderTestDB(t, "recommend_noprofile")
	require.NoError(t, db.AutoMigrate(&models.Customer{}))

	now := time.Now()
	var want []uint
	for i := 0; i < 3; i++ {
		r := seedActiveRestaurant(t, db, fmt.Sprintf("Place %d", i), now.Add(-time.Duration(i)*time.Hour))
		want = append(want, r.ID)
	}

	scored, err := RecommendRestaurants(db, 42)
	require.NoError(t, err)

	require.Len(t, scored, 3)
	for i, s := range scored {
		assert.Equal(t, want[i], s.Restaurant.ID)
		assert.Zero(t, s.Score)
	}
}

func TestRecommendRestaurantsHistoryBreaksTies(t *testing.T) {
	db := setupOrderTestDB(t, "recommend_history")
	require.NoError(t, db.AutoMigrate(&models.Customer{}))

	seedActiveRestaurant(t, db, "Noodle Bar", time.Now())
	require.NoError(t, db.Create(&models.Customer{UserID: 42}).Error)

	before, err := RecommendRestaurants(db, 42)
	require.NoError(t, err)
	require.Len(t, before, 1)
	assert.Zero(t, before[0].Score)

	order := models.Order{UserID: 42, RestaurantID: before[0].Restaurant.ID, TotalAmount: decimal.NewFromInt(300), Status: models.OrderCompleted}
	require.NoError(t, db.Create(&order).Error)

	after, err := RecommendRestaurants(db, 42)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, 15, after[0].Score)
}
