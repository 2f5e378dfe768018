package booking_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateBookingStatus godoc
// @Summary Update booking status (CMS)
// @Description Update a booking status. admin_notes is optional for all statuses, but required when status is cancelled (cancellation reason).
// @Tags CMS - Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID (UUID)"
// @Param payload body models.UpdateBookingStatusRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.UpdateBookingStatusResponse}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Booking not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/cms/bookings/{id}/status [patch]
func UpdateBookingStatus(c *gin.Context) {
	log.Printf("[cms.booking.update] start path=%s method=%s rawQuery=%s", c.FullPath(), c.Request.Method, c.Request.URL.RawQuery)

	bookingIDStr := strings.TrimSpace(c.Param("id"))
	if bookingIDStr == "" {
		log.Printf("[cms.booking.update] bad request: empty booking id")
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Booking ID is required"))
		return
	}

	bookingID, err := uuid.Parse(bookingIDStr)
	if err != nil {
		log.Printf("[cms.booking.update] bad request: invalid booking id")
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid booking ID"))
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[cms.booking.update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	req.Status = strings.TrimSpace(strings.ToLower(req.Status))

	// admin_notes supported for all statuses, but required for cancelled
	if req.Status == "cancelled" {
		if req.AdminNotes == nil || strings.TrimSpace(*req.AdminNotes) == "" {
			log.Printf("[cms.booking.update] bad request: cancelled without admin_notes")
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "admin_notes is required when cancelling a booking"))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	q := `
		UPDATE bookings
		SET
			status = ?::text,
			admin_notes = CASE
				WHEN ?::text IS NULL THEN admin_notes
				ELSE ?::text
			END,
			updated_at = NOW(),
			confirmed_at = CASE
				WHEN ?::text = 'confirmed' AND confirmed_at IS NULL THEN NOW()
				ELSE confirmed_at
			END,
			completed_at = CASE
				WHEN ?::text = 'completed' AND completed_at IS NULL THEN NOW()
				ELSE completed_at
			END,
			cancelled_at = CASE
				WHEN ?::text = 'cancelled' AND cancelled_at IS NULL THEN NOW()
				ELSE cancelled_at
			END
		WHERE id = ?
		RETURNING id::text AS id, booking_number, status, admin_notes
	`

	log.Printf("[cms.booking.update] bookingID=%s newStatus=%s adminNotesProvided=%v now=%s",
		bookingID, req.Status, req.AdminNotes != nil, time.Now().Format(time.RFC3339))

	var out models.UpdateBookingStatusResponse
	err = config.Gorm.WithContext(ctx).Raw(
		q,
		req.Status,
		req.AdminNotes,
		req.AdminNotes,
		req.Status,
		req.Status,
		req.Status,
		bookingID,
	).Scan(&out).Error
	if err != nil {
		log.Printf("[cms.booking.update] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update booking"))
		return
	}

	// Check if booking was found
	if out.BookingNumber == "" {
		log.Printf("[cms.booking.update] booking not found id=%s", bookingID)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Booking not found"))
		return
	}

	log.Printf("[cms.booking.update] success booking_number=%s status=%s", out.BookingNumber, out.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Booking updated successfully",
		out,
	))
}
