package catalog_controller

import (
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStorefrontTourByID godoc
// @Summary Get single tour details
// @Description Full tour page payload: itinerary, inclusions, exclusions, gallery. Bumps the view counter.
// @Tags store
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} models.ApiResponse{data=models.Tour}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/tours/{id} [get]
func GetStorefrontTourByID(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid tour ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var tour models.Tour
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND status = 'Active'", tourID).
		First(&tour).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Tour not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	go incrementTourViews(tourID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tour fetched successfully", tour))
}

// incrementTourViews bumps the view counter outside the request path.
func incrementTourViews(tourID uuid.UUID) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	config.Gorm.WithContext(ctx).Exec(`
		UPDATE tours
		SET views = COALESCE(views, 0) + 1
		WHERE id = ?
	`, tourID)
}
