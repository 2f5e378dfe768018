package store_routes

import (
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/store/catalog_controller"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes sets up the public tour catalog (no auth required)
func SetupCatalogRoutes(store *gin.RouterGroup) {
	tours := store.Group("/tours")
	{
		tours.GET("", catalog_controller.GetStorefrontTours)
		tours.GET("/available", catalog_controller.GetAvailableTours)
		tours.GET("/category-counts", catalog_controller.GetCategoryCounts)
		tours.GET("/:id", catalog_controller.GetStorefrontTourByID)
	}
}
