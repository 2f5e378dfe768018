package booking_controller

import (
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/middleware"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetMyBookings godoc
// @Summary Get the signed-in traveler's bookings
// @Description Lists bookings made with the traveler's email, newest first. Bookings are guest records keyed by email, so this also picks up bookings made before the traveler signed up.
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MyBookingRow}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/my-bookings [get]
func GetMyBookings(c *gin.Context) {
	email, ok := middleware.GetTravelerEmailFromContext(c)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var rows []models.MyBookingRow
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Booking{}).
		Select("booking_number, tour_name, tour_date, group_size, total_amount, currency, status, created_at").
		Where("email = ?", email).
		Order("created_at DESC").
		Scan(&rows).Error; err != nil {
		log.Printf("❌ [store.my-bookings] query failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch bookings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Bookings retrieved", rows))
}
