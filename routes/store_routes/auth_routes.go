package store_routes

import (
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/store/auth_controller"
	"github.com/Davedaz23/Phoenix-Tour-sub000/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up traveler Google OAuth routes
func SetupAuthRoutes(store *gin.RouterGroup) {
	auth := store.Group("/auth")
	{
		// Google OAuth routes
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.POST("/logout", auth_controller.Logout)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", auth_controller.GetMe)
		}
	}
}
