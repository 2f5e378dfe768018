package tour_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetTours godoc
// @Summary Get paginated tours
// @Description Retrieve all tours with pagination and optional filtering
// @Tags CMS - Tours
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(Active, Draft)
// @Param category query string false "Filter by category"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/cms/tours [get]
func GetTours(c *gin.Context) {
	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	// Step 2: Build query with optional filters
	query := config.Gorm.Model(&models.Tour{})

	// Optional status filter
	if status := c.Query("status"); status != "" {
		if status == "Active" || status == "Draft" {
			query = query.Where("status = ?", status)
		}
	}

	// Optional category filter
	if category := c.Query("category"); category != "" && category != models.CategoryAllTours {
		query = query.Where("category = ?", category)
	}

	// Step 3: Count total tours
	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count tours"))
		return
	}

	// Step 4: Fetch tours
	tours := make([]models.Tour, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch tours"))
		return
	}

	// Step 5: Transform tours into structured response format
	tourResponses := make([]gin.H, 0, len(tours))
	for _, tour := range tours {
		tourResponses = append(tourResponses, gin.H{
			"basic_info": gin.H{
				"id":                tour.ID,
				"title":             tour.Title,
				"short_description": tour.ShortDescription,
				"category":          tour.Category,
				"region":            tour.Region,
				"difficulty":        tour.Difficulty,
				"duration":          tour.Duration,
				"price":             tour.Price,
				"rating":            tour.Rating,
				"max_participants":  tour.MaxParticipants,
				"status":            tour.Status,
				"views":             tour.Views,
				"created_at":        tour.CreatedAt,
				"updated_at":        tour.UpdatedAt,
			},
			"available_dates": []string(tour.AvailableDates),
			"tags":            []string(tour.Tags),
			"media":           tour.Media,
		})
	}

	// Step 6: Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Tours fetched successfully", tourResponses, meta))
}
