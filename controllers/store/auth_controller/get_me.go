package auth_controller

import (
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/middleware"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMe godoc
// @Summary Get current traveler profile
// @Description Returns the signed-in traveler's profile. Used by the frontend to restore the session on page reload.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.TravelerResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /store/auth/me [get]
func GetMe(c *gin.Context) {
	travelerIDStr, ok := middleware.GetTravelerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	travelerID, err := uuid.Parse(travelerIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid traveler ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var traveler models.Traveler
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", travelerID).
		First(&traveler).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Traveler not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile retrieved", traveler.ToResponse()))
}
