package catalog_controller

import (
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/catalog"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetCategoryCounts godoc
// @Summary Get tour counts per category
// @Description Per-category tour counts for the sidebar badges, computed over the full unfiltered catalog. Includes an 'All Tours' total.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=map[string]int}
// @Failure 500 {object} models.ApiResponse
// @Router /store/tours/category-counts [get]
func GetCategoryCounts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	allTours, err := loadTourSummaries(ctx)
	if err != nil {
		log.Printf("❌ [store.category-counts] failed to load catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load tours"))
		return
	}

	counts := catalog.CategoryCounts(allTours)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category counts retrieved", counts))
}
