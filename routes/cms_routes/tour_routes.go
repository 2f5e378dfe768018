package cms_routes

import (
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/cms/tour_controller"
	"github.com/Davedaz23/Phoenix-Tour-sub000/middleware"
	"github.com/gin-gonic/gin"
)

func SetupTourRoutes(rg *gin.RouterGroup) {
	tours := rg.Group("/tours")

	// ════════════════════════════════════════════════════════════
	// Read Routes (Auth Only, No Activity Logging)
	// ════════════════════════════════════════════════════════════
	reads := tours.Group("")
	reads.Use(middleware.AdminAuthMiddleware())
	{
		reads.GET("", tour_controller.GetTours)
		reads.GET("/stats", tour_controller.GetTourStats)
		reads.GET("/search", tour_controller.SearchTours)
		reads.GET("/:id", tour_controller.GetTourByID)
	}

	// ════════════════════════════════════════════════════════════
	// Write Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := tours.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", tour_controller.CreateTour)
		protected.PATCH("/:id", tour_controller.UpdateTour)
		protected.DELETE("/:id", tour_controller.DeleteTour)

		// Image handling
		protected.POST("/upload-images", tour_controller.UploadTourImages)
		protected.POST("/cleanup-folder", tour_controller.CleanupOrphanedFolder)
	}
}
