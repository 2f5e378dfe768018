package tour_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// SearchTours godoc
// @Summary Search tours
// @Description Search tours by title, description, region, or tags (case-insensitive). Returns paginated results.
// @Tags CMS - Tours
// @Produce json
// @Param query query string true "Search keyword"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/cms/tours/search [get]
func SearchTours(c *gin.Context) {
	// Step 1: Parse query parameter
	queryParam := c.Query("query")
	if queryParam == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query parameter 'query' is required"))
		return
	}

	// Step 2: Parse and validate pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 3: Build search query
	searchPattern := "%" + queryParam + "%"

	// Count total matches (using Raw SQL for JSONB array search)
	var total int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Tour{}).
		Where(`
			title ILIKE ? OR
			description ILIKE ? OR
			region ILIKE ? OR
			EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(tags) AS tag
				WHERE tag ILIKE ?
			)
		`, searchPattern, searchPattern, searchPattern, searchPattern).
		Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count tours"))
		return
	}

	// Step 4: Early return if no results
	if total == 0 {
		meta := &models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      0,
			TotalPages: 0,
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "No results found", make([]models.Tour, 0), meta))
		return
	}

	// Step 5: Fetch matching tours
	tours := make([]models.Tour, 0)
	if err := config.Gorm.WithContext(ctx).
		Where(`
			title ILIKE ? OR
			description ILIKE ? OR
			region ILIKE ? OR
			EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(tags) AS tag
				WHERE tag ILIKE ?
			)
		`, searchPattern, searchPattern, searchPattern, searchPattern).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch tours"))
		return
	}

	// Step 6: Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results", tours, meta))
}
