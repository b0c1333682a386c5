package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/middlewares"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/services"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/utils"
)

type CustomerController struct {
	DB        *gorm.DB
	Predictor services.Predictor
}

func NewCustomerController(db *gorm.DB, predictor services.Predictor) *CustomerController {
	return &CustomerController{DB: db, Predictor: predictor}
}

// GetRestaurants lists active restaurants, newest first, with an optional
// exact-match cuisine filter.
func (cc *CustomerController) GetRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := cc.DB.Where("status = ?", models.RestaurantActive).
		Order("created_at DESC").
		Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch restaurants"))
		return
	}

	if cuisine := strings.TrimSpace(c.Query("cuisine")); cuisine != "" {
		needle := strings.ToLower(cuisine)
		filtered := make([]models.Restaurant, 0, len(restaurants))
		for _, r := range restaurants {
			for _, cu := range r.Cuisines {
				if strings.ToLower(cu) == needle {
					filtered = append(filtered, r)
					break
				}
			}
		}
		restaurants = filtered
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantMenu lists a restaurant's available items, name ascending.
func (cc *CustomerController) GetRestaurantMenu(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var menu []models.MenuItem
	if err := cc.DB.Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("name ASC").
		Find(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch menu"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant menu", menu)
}

// PlaceOrder runs the transactional placement and maps each failure mode to
// its status code.
func (cc *CustomerController) PlaceOrder(c *gin.Context) {
	userID := middlewares.GetUserID(c)

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := services.PlaceOrder(cc.DB, userID, req)
	if err != nil {
		var unavailable *services.ItemUnavailableError
		var insufficient *services.InsufficientStockError
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.As(err, &unavailable), errors.As(err, &insufficient):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.ErrorLogger.Printf("place order failed: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to place order"))
		}
		return
	}

	if err := cc.DB.Preload("Restaurant").First(order, order.ID).Error; err != nil {
		utils.ErrorLogger.Printf("order reload failed: %v", err)
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully", order)
}

// GetOrders lists the customer's own orders, newest first.
func (cc *CustomerController) GetOrders(c *gin.Context) {
	userID := middlewares.GetUserID(c)

	var orders []models.Order
	if err := cc.DB.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch orders"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer orders", orders)
}

// GetRecommendations ranks active restaurants with the additive heuristic.
func (cc *CustomerController) GetRecommendations(c *gin.Context) {
	userID := middlewares.GetUserID(c)

	scored, err := services.RecommendRestaurants(cc.DB, userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to compute recommendations"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Recommended restaurants", scored)
}

// GetMLRecommendations forwards the customer's historical item names to the
// ML service. An unreachable service yields an empty result with a note, not
// an error.
func (cc *CustomerController) GetMLRecommendations(c *gin.Context) {
	userID := middlewares.GetUserID(c)

	limit := 5
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	var orders []models.Order
	if err := cc.DB.Select("items").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch order history"))
		return
	}

	seen := make(map[string]bool)
	var itemNames []string
	for _, order := range orders {
		for _, item := range order.Items {
			if item.Name != "" && !seen[item.Name] {
				seen[item.Name] = true
				itemNames = append(itemNames, item.Name)
			}
		}
	}

	if len(itemNames) == 0 {
		utils.RespondJSON(c, http.StatusOK, "No order history for recommendations", gin.H{
			"recommended": []string{},
			"note":        "place some orders first to get personalized picks",
		})
		return
	}

	recommended, err := cc.Predictor.RecommendFood(itemNames)
	if err != nil {
		utils.ErrorLogger.Printf("ml recommendation failed: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Recommendation service unavailable", gin.H{
			"recommended": []string{},
			"note":        "recommendation service is temporarily unavailable",
		})
		return
	}

	if len(recommended) > limit {
		recommended = recommended[:limit]
	}
	utils.RespondJSON(c, http.StatusOK, "Recommended dishes", gin.H{"recommended": recommended})
}

// CreateProfile creates the customer preference profile; 409 if one exists.
func (cc *CustomerController) CreateProfile(c *gin.Context) {
	userID := middlewares.GetUserID(c)

	var input services.CustomerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	profile, err := services.CreateCustomerProfile(cc.DB, userID, input)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			utils.RespondError(c, http.StatusConflict, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to create customer profile"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Customer profile created successfully", profile)
}

// GetProfile returns the caller's profile.
func (cc *CustomerController) GetProfile(c *gin.Context) {
	userID := middlewares.GetUserID(c)

	profile, err := services.GetCustomerProfile(cc.DB, userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch customer profile"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer profile", profile)
}

// UpdateProfile applies a partial update, creating the profile lazily.
func (cc *CustomerController) UpdateProfile(c *gin.Context) {
	userID := middlewares.GetUserID(c)

	var input services.CustomerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	profile, err := services.UpdateCustomerProfile(cc.DB, userID, input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to update customer profile"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer profile updated successfully", profile)
}

// DeleteProfile removes a profile. Customers may delete their own; admins may
// delete any via the :id form.
func (cc *CustomerController) DeleteProfile(c *gin.Context) {
	userID := middlewares.GetUserID(c)
	role, _ := c.Get("role")

	targetID := userID
	if idParam := c.Param("id"); idParam != "" {
		id, err := strconv.Atoi(idParam)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid user id"))
			return
		}
		if role != models.RoleAdmin && uint(id) != userID {
			utils.RespondError(c, http.StatusForbidden, errors.New("unauthorized"))
			return
		}
		targetID = uint(id)
	}

	if err := services.DeleteCustomerProfile(cc.DB, targetID); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to delete customer profile"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer profile deleted successfully", nil)
}
