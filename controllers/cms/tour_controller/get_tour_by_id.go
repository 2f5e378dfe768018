package tour_controller

import (
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTourByID godoc
// @Summary Get a tour by ID
// @Description Retrieve a single tour and its full program details
// @Tags CMS - Tours
// @Produce json
// @Param id path string true "Tour ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/cms/tours/{id} [get]
func GetTourByID(c *gin.Context) {
	// Step 1: Parse and validate tour ID
	idParam := c.Param("id")
	tourID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid tour ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Fetch tour
	var tour models.Tour
	if err := config.Gorm.WithContext(ctx).
		First(&tour, "id = ?", tourID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Tour not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Build response with structured data
	response := gin.H{
		"basic_info": gin.H{
			"id":                tour.ID,
			"title":             tour.Title,
			"short_description": tour.ShortDescription,
			"description":       tour.Description,
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
		"itinerary":       []models.ItineraryDay(tour.Itinerary),
		"inclusions":      []models.InclusionGroup(tour.Inclusions),
		"exclusions":      []models.InclusionGroup(tour.Exclusions),
		"media":           tour.Media,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tour fetched successfully", response))
}
