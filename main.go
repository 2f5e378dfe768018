// @title Phoenix Tours API
// @version 1.0
// @description Phoenix Tours Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/cms/tour_controller"
	_ "github.com/Davedaz23/Phoenix-Tour-sub000/docs"
	"github.com/Davedaz23/Phoenix-Tour-sub000/middleware"
	"github.com/Davedaz23/Phoenix-Tour-sub000/routes/cms_routes"
	"github.com/Davedaz23/Phoenix-Tour-sub000/routes/store_routes"
	"github.com/Davedaz23/Phoenix-Tour-sub000/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()
	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := tour_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Configure CORS properly for all content types including PDFs
	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	// Sweep expired admin sessions hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		sessions := services.GetAdminSessionService()
		for range ticker.C {
			// Sweeping a large sessions table can outlive the request-sized
			// default deadline
			ctx, cancel := config.WithCustomTimeout(time.Minute)
			if _, err := sessions.CleanupExpiredSessions(ctx); err != nil {
				log.Printf("⚠️  session cleanup failed: %v", err)
			}
			cancel()
		}
	}()

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Back office at /api/v1/cms, rate limited per admin IP
	cmsGroup := api.Group("/cms")
	cmsGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupAdminRoutes(cmsGroup)
	cms_routes.SetupTourRoutes(cmsGroup)
	cms_routes.SetupBookingRoutes(cmsGroup)
	cms_routes.SetupPostRoutes(cmsGroup)
	log.Println("✅ CMS routes registered")

	// Public storefront (no rate limiter)
	storeGroup := api.Group("/store")
	store_routes.SetupCatalogRoutes(storeGroup)
	store_routes.SetupBookingRoutes(storeGroup)
	store_routes.SetupPostRoutes(storeGroup)
	store_routes.SetupAuthRoutes(storeGroup)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
