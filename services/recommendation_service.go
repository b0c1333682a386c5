package services

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
)

// ScoredRestaurant pairs a restaurant with its recommendation score.
type ScoredRestaurant struct {
	Restaurant models.Restaurant `json:"restaurant"`
	Score      int               `json:"score"`
}

const (
	favoriteCuisineBonus = 50
	dietaryMatchBonus    = 10
	popularityCap        = 30
	historyBonus         = 15
)

// ScoreRestaurant computes the additive heuristic for one restaurant:
// favorite-cuisine name match, dietary matches against the menu, a capped
// popularity bonus from cumulative orders, and a flat history bonus.
func ScoreRestaurant(profile *models.Customer, restaurant models.Restaurant, menu []models.MenuItem, hasHistory bool) int {
	score := 0

	if profile.FavoriteCuisine != "" &&
		strings.Contains(strings.ToLower(restaurant.Name), strings.ToLower(profile.FavoriteCuisine)) {
		score += favoriteCuisineBonus
	}

	totalOrders := 0
	for _, item := range menu {
		totalOrders += item.OrdersCount
		itemName := strings.ToLower(item.Name)
		for _, pref := range profile.DietaryPreferences {
			if pref != "" && strings.Contains(itemName, strings.ToLower(pref)) {
				score += dietaryMatchBonus
				break
			}
		}
	}

	popularity := totalOrders / 10
	if popularity > popularityCap {
		popularity = popularityCap
	}
	score += popularity

	if hasHistory {
		score += historyBonus
	}

	return score
}

// RecommendRestaurants ranks all active restaurants for a customer. Without a
// profile the restaurants come back newest-first, unscored.
func RecommendRestaurants(db *gorm.DB, userID uint) ([]ScoredRestaurant, error) {
	var restaurants []models.Restaurant
	if err := db.Where("status = ?", models.RestaurantActive).
		Order("created_at DESC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}

	var profile models.Customer
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		// No profile: reverse-chronological, score zero.
		scored := make([]ScoredRestaurant, 0, len(restaurants))
		for _, r := range restaurants {
			scored = append(scored, ScoredRestaurant{Restaurant: r})
		}
		return scored, nil
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orderCount).Error; err != nil {
		return nil, err
	}
	hasHistory := orderCount > 0

	scored := make([]ScoredRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		var menu []models.MenuItem
		if err := db.Where("restaurant_id = ?", r.ID).Find(&menu).Error; err != nil {
			return nil, err
		}
		scored = append(scored, ScoredRestaurant{
			Restaurant: r,
			Score:      ScoreRestaurant(&profile, r, menu, hasHistory),
		})
	}

	// Stable: equal scores keep the newest-first ordering.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored, nil
}
