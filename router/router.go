package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/controllers"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/middlewares"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/services"
)

// SetupRouter wires every route under /api. The predictor is injected so
// tests can swap the external ML service for a fake.
func SetupRouter(db *gorm.DB, predictor services.Predictor) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(db)
	passwordCtrl := controllers.NewPasswordController(db)
	customerCtrl := controllers.NewCustomerController(db, predictor)
	sellerCtrl := controllers.NewSellerController(db, predictor)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public auth endpoints, strictly rate limited.
	auth := api.Group("/auth")
	auth.Use(middlewares.StrictRateLimit())
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/password/request-reset", passwordCtrl.RequestReset)
		auth.POST("/password/reset", passwordCtrl.ResetPassword)
	}

	customer := api.Group("/customer")
	customer.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RoleCustomer))
	{
		customer.GET("/restaurants", customerCtrl.GetRestaurants)
		customer.GET("/restaurants/:id/menu", customerCtrl.GetRestaurantMenu)
		customer.POST("/order", customerCtrl.PlaceOrder)
		customer.GET("/orders", customerCtrl.GetOrders)
		customer.GET("/recommendations", customerCtrl.GetRecommendations)
		customer.GET("/recommendations/ml", customerCtrl.GetMLRecommendations)
		customer.POST("/profile", customerCtrl.CreateProfile)
		customer.GET("/profile", customerCtrl.GetProfile)
		customer.PUT("/profile", customerCtrl.UpdateProfile)
		customer.DELETE("/profile", customerCtrl.DeleteProfile)
	}

	// Admins can delete any customer profile.
	api.DELETE("/customer/profile/:id",
		middlewares.AuthMiddleware(),
		middlewares.RequireRoles(models.RoleAdmin, models.RoleCustomer),
		customerCtrl.DeleteProfile)

	seller := api.Group("/seller")
	seller.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RoleSeller))
	{
		seller.GET("/restaurant", sellerCtrl.GetRestaurant)
		seller.GET("/menu", sellerCtrl.GetMenu)
		seller.GET("/orders", sellerCtrl.GetOrders)
		seller.GET("/analytics", sellerCtrl.GetAnalytics)
		seller.GET("/forecast", sellerCtrl.GetForecast)

		// Write actions additionally require an approved account.
		approved := seller.Group("")
		approved.Use(middlewares.RequireApprovedSeller())
		{
			approved.PUT("/restaurant", sellerCtrl.UpdateRestaurant)
			approved.POST("/menu", sellerCtrl.AddMenuItem)
			approved.PUT("/menu/:id", sellerCtrl.UpdateMenuItem)
			approved.DELETE("/menu/:id", sellerCtrl.DeleteMenuItem)
			approved.PUT("/orders/:id/status", sellerCtrl.UpdateOrderStatus)
		}
	}

	admin := api.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/users", adminCtrl.GetUsers)
		admin.PUT("/users/:id/approve", adminCtrl.ApproveSeller)
		admin.PUT("/users/:id/reject", adminCtrl.RejectSeller)
		admin.PUT("/users/:id/suspend", adminCtrl.SuspendUser)
		admin.PUT("/users/:id/reactivate", adminCtrl.ReactivateUser)
		admin.GET("/restaurants", adminCtrl.GetRestaurants)
		admin.GET("/orders", adminCtrl.GetAllOrders)
		admin.GET("/logs", adminCtrl.GetLogs)
		admin.GET("/analytics", adminCtrl.GetAnalytics)
		admin.GET("/analytics/user-distribution", adminCtrl.GetUserDistribution)
		admin.GET("/analytics/fast-moving", adminCtrl.GetFastMovingRestaurants)
		admin.GET("/analytics/revenue", adminCtrl.GetMonthlyRevenue)
		admin.GET("/analytics/revenue/chart", adminCtrl.GetMonthlyRevenueChart)
	}

	return r
}
