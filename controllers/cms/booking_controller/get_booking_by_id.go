package booking_controller

import (
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBookingByID godoc
// @Summary Get booking details (CMS)
// @Description Retrieve a single booking with full participant and pricing details
// @Tags CMS - Bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/cms/bookings/{id} [get]
func GetBookingByID(c *gin.Context) {
	idParam := c.Param("id")
	bookingID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid booking ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var booking models.Booking
	if err := config.Gorm.WithContext(ctx).
		First(&booking, "id = ?", bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Booking not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	response := gin.H{
		"booking_info": gin.H{
			"id":             booking.ID,
			"booking_number": booking.BookingNumber,
			"status":         booking.Status,
			"admin_notes":    booking.AdminNotes,
			"created_at":     booking.CreatedAt,
			"updated_at":     booking.UpdatedAt,
			"confirmed_at":   booking.ConfirmedAt,
			"completed_at":   booking.CompletedAt,
			"cancelled_at":   booking.CancelledAt,
		},
		"tour": gin.H{
			"tour_id":   booking.TourID,
			"tour_name": booking.TourName,
			"tour_date": booking.TourDate,
		},
		"contact": gin.H{
			"full_name":   booking.FullName,
			"email":       booking.Email,
			"phone":       booking.Phone,
			"nationality": booking.Nationality,
		},
		"group": gin.H{
			"group_size":           booking.GroupSize,
			"accommodation_type":   booking.AccommodationType,
			"participants":         []models.Participant(booking.Participants),
			"dietary_requirements": []string(booking.DietaryRequirements),
			"medical_notes":        booking.MedicalNotes,
		},
		"payment": gin.H{
			"currency":       booking.Currency,
			"payment_method": booking.PaymentMethod,
			"total_amount":   booking.TotalAmount,
		},
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Booking fetched successfully", response))
}
