package cms_routes

import (
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/cms/admin_controller"
	admin_auth "github.com/Davedaz23/Phoenix-Tour-sub000/controllers/cms/admin_controller/auth"
	"github.com/Davedaz23/Phoenix-Tour-sub000/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up admin auth and management routes
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	rg.POST("/login", admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := rg.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Profile
		protected.PATCH("/profile", admin_controller.UpdateAdminProfile)

		// Activity logs are the audit trail, super admins only
		protected.GET("/activity-logs",
			middleware.RequireSuperAdminMiddleware(),
			admin_controller.GetActivityLogs)
	}
}
