package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/config"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/database"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/middlewares"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/router"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/services"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed admin: %v", err)
	}

	// 50 requests per second per IP across the whole API.
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, services.NewMLClient())
	r.Use(rateLimiter.RateLimit())

	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to set trusted proxies: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
