package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/middlewares"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/services"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/utils"
)

type SellerController struct {
	DB        *gorm.DB
	Predictor services.Predictor
}

func NewSellerController(db *gorm.DB, predictor services.Predictor) *SellerController {
	return &SellerController{DB: db, Predictor: predictor}
}

// ownRestaurant loads the restaurant belonging to the authenticated seller.
func (sc *SellerController) ownRestaurant(c *gin.Context) (*models.Restaurant, bool) {
	sellerID := middlewares.GetUserID(c)

	var restaurant models.Restaurant
	if err := sc.DB.Where("seller_id = ?", sellerID).First(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return nil, false
	}
	return &restaurant, true
}

// GetRestaurant returns the seller's own restaurant.
func (sc *SellerController) GetRestaurant(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant profile", restaurant)
}

// UpdateRestaurant applies a partial update to the seller's restaurant
// profile. Status is deliberately not updatable here: only admin approval
// flips a restaurant ACTIVE.
func (sc *SellerController) UpdateRestaurant(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}

	var req struct {
		Name          *string            `json:"name"`
		ContactNumber *string            `json:"contact_number"`
		Address       *string            `json:"address"`
		Cuisines      *models.StringList `json:"cuisines"`
		Image         *string            `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.ContactNumber != nil {
		restaurant.ContactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.Cuisines != nil {
		restaurant.Cuisines = *req.Cuisines
	}
	if req.Image != nil {
		restaurant.Image = *req.Image
	}

	if err := sc.DB.Save(restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to update restaurant"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// GetMenu lists the seller's menu, newest item first.
func (sc *SellerController) GetMenu(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}

	var menu []models.MenuItem
	if err := sc.DB.Where("restaurant_id = ?", restaurant.ID).
		Order("id DESC").
		Find(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch menu"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu items", menu)
}

// AddMenuItem creates a menu item under the seller's restaurant.
func (sc *SellerController) AddMenuItem(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}

	var req struct {
		Name  string          `json:"name" binding:"required"`
		Price decimal.Decimal `json:"price" binding:"required"`
		Stock int             `json:"stock" binding:"min=0"`
		Image string          `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Price.IsNegative() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Price:        req.Price,
		Stock:        req.Stock,
		Image:        req.Image,
		IsAvailable:  true,
	}
	if err := sc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to add menu item"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item added successfully", item)
}

// ownMenuItem loads a menu item only if it belongs to the seller's restaurant.
func (sc *SellerController) ownMenuItem(c *gin.Context, restaurant *models.Restaurant) (*models.MenuItem, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return nil, false
	}

	var item models.MenuItem
	if err := sc.DB.Where("id = ? AND restaurant_id = ?", id, restaurant.ID).First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusForbidden, errors.New("unauthorized action"))
		return nil, false
	}
	return &item, true
}

// UpdateMenuItem applies a partial update to an owned menu item.
func (sc *SellerController) UpdateMenuItem(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}
	item, ok := sc.ownMenuItem(c, restaurant)
	if !ok {
		return
	}

	var req struct {
		Name        *string          `json:"name"`
		Price       *decimal.Decimal `json:"price"`
		Stock       *int             `json:"stock"`
		IsAvailable *bool            `json:"is_available"`
		Image       *string          `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
			return
		}
		item.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("stock must not be negative"))
			return
		}
		item.Stock = *req.Stock
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.Image != nil {
		item.Image = *req.Image
	}

	if err := sc.DB.Save(item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to update menu item"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem removes an owned menu item.
func (sc *SellerController) DeleteMenuItem(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}
	item, ok := sc.ownMenuItem(c, restaurant)
	if !ok {
		return
	}

	if err := sc.DB.Delete(item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to delete menu item"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": item.ID})
}

// GetOrders lists incoming orders for the seller's restaurant, newest first.
func (sc *SellerController) GetOrders(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}

	var orders []models.Order
	if err := sc.DB.Preload("Customer").
		Where("restaurant_id = ?", restaurant.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch orders"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant orders", orders)
}

// UpdateOrderStatus sets an order's status through the single transition
// chokepoint. Ownership is checked; transition adjacency is not.
func (sc *SellerController) UpdateOrderStatus(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := services.TransitionOrderStatus(sc.DB, restaurant.ID, uint(orderID), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to update order"))
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", gin.H{
		"order_id": orderID,
		"status":   req.Status,
	})
}

// GetAnalytics returns the per-item snapshot the seller dashboard charts.
func (sc *SellerController) GetAnalytics(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}

	var items []struct {
		Name        string          `json:"name"`
		Stock       int             `json:"stock"`
		Price       decimal.Decimal `json:"price"`
		OrdersCount int             `json:"orders_count"`
	}
	if err := sc.DB.Model(&models.MenuItem{}).
		Select("name, stock, price, orders_count").
		Where("restaurant_id = ?", restaurant.ID).
		Scan(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("analytics failed"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu analytics", items)
}

// GetForecast sends the last five order totals (oldest first) to the ML
// service. Too little data or a failing service yields an empty forecast
// with a note rather than an error.
func (sc *SellerController) GetForecast(c *gin.Context) {
	restaurant, ok := sc.ownRestaurant(c)
	if !ok {
		return
	}

	var recent []models.Order
	if err := sc.DB.Where("restaurant_id = ?", restaurant.ID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch recent orders"))
		return
	}

	if len(recent) == 0 {
		utils.RespondJSON(c, http.StatusOK, "Not enough order data for forecasting", gin.H{
			"forecast": []float64{},
			"note":     "not enough order history yet",
		})
		return
	}

	// Oldest to newest.
	sales := make([]float64, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		f, _ := recent[i].TotalAmount.Float64()
		sales = append(sales, f)
	}
	days := make([]int, len(sales))
	for i := range days {
		days[i] = i + 1
	}

	forecast, err := sc.Predictor.Forecast(days, sales)
	if err != nil {
		utils.ErrorLogger.Printf("forecast failed: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Forecast service unavailable", gin.H{
			"forecast": []float64{},
			"note":     "forecast service is temporarily unavailable",
		})
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Sales forecast", gin.H{"forecast": forecast})
}
