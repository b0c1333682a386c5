package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	chart "github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/middlewares"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/services"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetUsers lists all accounts, newest first.
func (ac *AdminController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := ac.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch users"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All users", users)
}

func (ac *AdminController) targetUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid user id"))
		return 0, false
	}
	return uint(id), true
}

// setSellerStatus flips a SELLER's account status and keeps the restaurant
// status consistent with it: APPROVED restaurants are ACTIVE, everything
// else is INACTIVE. One rule, applied in one place.
func (ac *AdminController) setSellerStatus(c *gin.Context, userStatus, restaurantStatus, action, okMessage string) {
	sellerID, ok := ac.targetUserID(c)
	if !ok {
		return
	}
	adminID := middlewares.GetUserID(c)

	res := ac.DB.Model(&models.User{}).
		Where("id = ? AND role = ?", sellerID, models.RoleSeller).
		Update("status", userStatus)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("status update failed"))
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("seller not found"))
		return
	}

	if err := ac.DB.Model(&models.Restaurant{}).
		Where("seller_id = ?", sellerID).
		Update("status", restaurantStatus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("restaurant status update failed"))
		return
	}

	services.LogAdminAction(ac.DB, adminID, action, &sellerID)
	utils.RespondJSON(c, http.StatusOK, okMessage, nil)
}

// ApproveSeller approves a pending seller and activates their restaurant.
func (ac *AdminController) ApproveSeller(c *gin.Context) {
	ac.setSellerStatus(c, models.StatusApproved, models.RestaurantActive,
		"Approved Seller", "Seller approved successfully")
}

// RejectSeller rejects a seller; the restaurant stays inactive.
func (ac *AdminController) RejectSeller(c *gin.Context) {
	ac.setSellerStatus(c, models.StatusRejected, models.RestaurantInactive,
		"Rejected Seller", "Seller rejected successfully")
}

// SuspendUser suspends any account; a suspended seller's restaurant goes
// inactive as well.
func (ac *AdminController) SuspendUser(c *gin.Context) {
	userID, ok := ac.targetUserID(c)
	if !ok {
		return
	}
	adminID := middlewares.GetUserID(c)

	res := ac.DB.Model(&models.User{}).Where("id = ?", userID).Update("status", models.StatusSuspended)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("suspend failed"))
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if err := ac.DB.Model(&models.Restaurant{}).
		Where("seller_id = ?", userID).
		Update("status", models.RestaurantInactive).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("restaurant status update failed"))
		return
	}

	services.LogAdminAction(ac.DB, adminID, "Suspended User", &userID)
	utils.RespondJSON(c, http.StatusOK, "User suspended successfully", nil)
}

// ReactivateUser restores a suspended account; a seller's restaurant comes
// back with it.
func (ac *AdminController) ReactivateUser(c *gin.Context) {
	userID, ok := ac.targetUserID(c)
	if !ok {
		return
	}
	adminID := middlewares.GetUserID(c)

	res := ac.DB.Model(&models.User{}).Where("id = ?", userID).Update("status", models.StatusApproved)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("reactivate failed"))
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if err := ac.DB.Model(&models.Restaurant{}).
		Where("seller_id = ?", userID).
		Update("status", models.RestaurantActive).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("restaurant status update failed"))
		return
	}

	services.LogAdminAction(ac.DB, adminID, "Reactivated User", &userID)
	utils.RespondJSON(c, http.StatusOK, "User reactivated successfully", nil)
}

// GetRestaurants lists every restaurant with its seller, newest first.
func (ac *AdminController) GetRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := ac.DB.Preload("Seller").Order("created_at DESC").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch restaurants"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All restaurants", restaurants)
}

// GetAnalytics returns marketplace-wide totals.
func (ac *AdminController) GetAnalytics(c *gin.Context) {
	var totalUsers, totalRestaurants, totalOrders int64
	if err := ac.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("analytics failed"))
		return
	}
	if err := ac.DB.Model(&models.Restaurant{}).Count(&totalRestaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("analytics failed"))
		return
	}
	if err := ac.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("analytics failed"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Marketplace analytics", gin.H{
		"totalUsers":       totalUsers,
		"totalRestaurants": totalRestaurants,
		"totalOrders":      totalOrders,
	})
}

// GetAllOrders lists every order with customer, restaurant, and seller info.
func (ac *AdminController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := ac.DB.Preload("Customer").
		Preload("Restaurant").
		Preload("Restaurant.Seller").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch orders"))
		return
	}

	type orderRow struct {
		ID             uint        `json:"id"`
		Status         string      `json:"status"`
		TotalAmount    interface{} `json:"total_amount"`
		CreatedAt      interface{} `json:"created_at"`
		CustomerEmail  string      `json:"customerEmail"`
		RestaurantName string      `json:"restaurantName"`
		SellerEmail    string      `json:"sellerEmail"`
	}

	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{
			ID:             o.ID,
			Status:         o.Status,
			TotalAmount:    o.TotalAmount,
			CreatedAt:      o.CreatedAt,
			CustomerEmail:  o.Customer.Email,
			RestaurantName: o.Restaurant.Name,
			SellerEmail:    o.Restaurant.Seller.Email,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "All orders", rows)
}

// GetLogs returns the audit trail, newest first.
func (ac *AdminController) GetLogs(c *gin.Context) {
	var logs []models.AdminLog
	if err := ac.DB.Preload("Admin").
		Preload("TargetUser").
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch logs"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Admin logs", logs)
}

// GetUserDistribution returns a Chart.js-compatible role breakdown.
func (ac *AdminController) GetUserDistribution(c *gin.Context) {
	var rows []struct {
		Role  string `json:"role"`
		Count int64  `json:"count"`
	}
	if err := ac.DB.Model(&models.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&rows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("user distribution failed"))
		return
	}

	labels := make([]string, 0, len(rows))
	data := make([]int64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Role)
		data = append(data, r.Count)
	}

	utils.RespondJSON(c, http.StatusOK, "User distribution", gin.H{
		"labels": labels,
		"datasets": []gin.H{
			{"label": "Users", "data": data},
		},
	})
}

// GetFastMovingRestaurants returns the five restaurants with the most orders.
func (ac *AdminController) GetFastMovingRestaurants(c *gin.Context) {
	var rows []struct {
		Restaurant string `json:"restaurant"`
		Orders     int64  `json:"orders"`
	}
	if err := ac.DB.Raw(`
		SELECT r.name AS restaurant, COUNT(o.id) AS orders
		FROM restaurants r
		LEFT JOIN orders o ON o.restaurant_id = r.id
		GROUP BY r.id, r.name
		ORDER BY orders DESC
		LIMIT 5
	`).Scan(&rows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("fast-moving restaurants failed"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Fast moving restaurants", rows)
}

type revenueRow struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

func (ac *AdminController) monthlyRevenueRows() ([]revenueRow, error) {
	monthExpr := "strftime('%Y-%m', created_at)"
	if ac.DB.Dialector.Name() == "mysql" {
		monthExpr = "DATE_FORMAT(created_at, '%Y-%m')"
	}

	var rows []revenueRow
	err := ac.DB.Model(&models.Order{}).
		Select(monthExpr+" AS month, SUM(total_amount) AS revenue").
		Where("status = ?", models.OrderCompleted).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

// GetMonthlyRevenue returns the revenue trend over completed orders.
func (ac *AdminController) GetMonthlyRevenue(c *gin.Context) {
	rows, err := ac.monthlyRevenueRows()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("revenue trend failed"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Monthly revenue", rows)
}

// GetMonthlyRevenueChart renders the revenue trend as a PNG bar chart.
func (ac *AdminController) GetMonthlyRevenueChart(c *gin.Context) {
	rows, err := ac.monthlyRevenueRows()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("revenue trend failed"))
		return
	}
	if len(rows) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("no completed orders yet"))
		return
	}

	bars := make([]chart.Value, 0, len(rows))
	for _, r := range rows {
		bars = append(bars, chart.Value{Label: r.Month, Value: r.Revenue})
	}

	graph := chart.BarChart{
		Title:    "Monthly Revenue (Completed Orders)",
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("chart rendering failed"))
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
