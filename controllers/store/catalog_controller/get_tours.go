package catalog_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Davedaz23/Phoenix-Tour-sub000/catalog"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontTours godoc
// @Summary Browse the tour catalog
// @Description Get the tour catalog filtered by category, region, difficulty, duration bucket and free-text search. All active filters are combined; results come back 6 per page.
// @Tags store
// @Produce json
// @Param category query string false "Category name ('All Tours' or empty = no category filter)"
// @Param region query string false "Region name"
// @Param difficulty query string false "Difficulty" Enums(Easy, Moderate, Challenging)
// @Param duration query string false "Duration bucket" Enums(1-3 days, 4-7 days, 8-14 days, 15+ days)
// @Param q query string false "Free-text search over title, description, tags, category, region"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse{data=object{tours=[]models.TourSummary},meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /store/tours [get]
func GetStorefrontTours(c *gin.Context) {
	spec := catalog.FilterSpec{
		Category:   c.Query("category"),
		Region:     c.Query("region"),
		Difficulty: c.Query("difficulty"),
		Duration:   c.Query("duration"),
		Search:     c.Query("q"),
	}

	page := 1
	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	allTours, err := loadTourSummaries(ctx)
	if err != nil {
		log.Printf("❌ [store.tours] failed to load catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load tours"))
		return
	}

	filtered := catalog.Filter(allTours, spec)
	pageTours := catalog.Paginate(filtered, page)

	meta := &models.Pagination{
		Page:       page,
		Limit:      catalog.PageSize,
		Total:      len(filtered),
		TotalPages: catalog.PageCount(len(filtered)),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Tours retrieved", gin.H{
		"tours": pageTours,
	}, meta))
}
