package tour_controller

import (
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetTourStats godoc
// @Summary Get tour statistics
// @Description Returns overall tour stats including most viewed tour
// @Tags CMS - Tours
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/cms/tours/stats [get]
func GetTourStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Count total tours
	var totalTours int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Tour{}).
		Count(&totalTours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count total tours"))
		return
	}

	// Step 2: Count active tours
	var activeTours int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Tour{}).
		Where("status = ?", "Active").
		Count(&activeTours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count active tours"))
		return
	}

	// Step 3: Count draft tours
	var draftTours int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Tour{}).
		Where("status = ?", "Draft").
		Count(&draftTours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count draft tours"))
		return
	}

	// Step 4: Average tour price
	var averagePrice float64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Tour{}).
		Select("COALESCE(AVG(price), 0)").
		Scan(&averagePrice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to calculate average price"))
		return
	}

	// Step 5: Average rating across rated tours
	var averageRating float64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Tour{}).
		Where("rating > 0").
		Select("COALESCE(AVG(rating), 0)").
		Scan(&averageRating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to calculate average rating"))
		return
	}

	// Step 6: Most viewed tour title
	var mostViewed models.Tour
	mostViewedTitle := ""
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Tour{}).
		Select("id, title").
		Order("views DESC").
		First(&mostViewed).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to find most viewed tour"))
			return
		}
	} else {
		mostViewedTitle = mostViewed.Title
	}

	// Compute percentages safely
	computePct := func(numerator int64, denominator int64) float64 {
		if denominator == 0 {
			return 0
		}
		return (float64(numerator) / float64(denominator)) * 100
	}

	stats := models.TourStatsResponse{
		TotalTours:       int(totalTours),
		ActiveTours:      int(activeTours),
		DraftTours:       int(draftTours),
		PercentageActive: computePct(activeTours, totalTours),
		AveragePrice:     averagePrice,
		AverageRating:    averageRating,
		MostViewedTitle:  mostViewedTitle,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tour stats fetched successfully", stats))
}
