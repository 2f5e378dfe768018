package booking_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/bookingflow"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/Davedaz23/Phoenix-Tour-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SendBookingVoucherPDF godoc
// @Summary Send booking voucher PDF to traveler
// @Description Generate and send a voucher PDF to the traveler who booked
// @Tags CMS - Bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid booking ID"
// @Failure 404 {object} models.ApiResponse "Booking not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/cms/bookings/{id}/send-voucher [post]
func SendBookingVoucherPDF(c *gin.Context) {
	bookingId := c.Param("id")
	log.Printf("[booking.send-voucher] request for booking: %s", bookingId)

	// Validate booking ID
	if _, err := uuid.Parse(bookingId); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid booking ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Get the booking
	var booking models.Booking
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", bookingId).
		First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[booking.send-voucher] booking not found: %s", bookingId)
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Booking not found"))
			return
		}
		log.Printf("[booking.send-voucher] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Validate traveler email
	if booking.Email == "" {
		log.Printf("[booking.send-voucher] traveler email missing for booking: %s", bookingId)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Traveler email not found"))
		return
	}

	// Get admin info for logging
	adminIDStr, _ := c.Get("adminID")
	adminEmail, _ := c.Get("adminEmail")

	// Generate PDF in memory
	pdfBuffer := generateBookingVoucherPDF(&booking)

	// Convert participants to service format
	serviceParticipants := make([]services.VoucherParticipant, len(booking.Participants))
	for i, p := range booking.Participants {
		serviceParticipants[i] = services.VoucherParticipant{
			Name: p.Name,
			Age:  p.Age,
		}
	}

	// The booking's base tour price is not stored; recover the per-person
	// price from the total by undoing multiplier and discount.
	multiplier := bookingflow.AccommodationMultiplier(booking.AccommodationType)
	discount := bookingflow.GroupDiscount(booking.GroupSize)
	basePrice := 0.0
	if booking.GroupSize > 0 && multiplier > 0 && discount > 0 {
		basePrice = booking.TotalAmount / (float64(booking.GroupSize) * multiplier * discount)
	}

	// Send voucher email asynchronously with all data
	go func() {
		resendClient := services.NewResendClient()

		emailData := services.BookingVoucherPDFEmailData{
			TravelerName:      booking.FullName,
			TravelerEmail:     booking.Email,
			BookingNumber:     booking.BookingNumber,
			BookingDate:       booking.CreatedAt.Format("Jan 02, 2006"),
			TourName:          booking.TourName,
			TourDate:          booking.TourDate,
			GroupSize:         booking.GroupSize,
			AccommodationType: booking.AccommodationType,
			Participants:      serviceParticipants,
			BasePrice:         basePrice,
			Multiplier:        multiplier,
			GroupDiscount:     discount,
			TotalAmount:       booking.TotalAmount,
			Currency:          booking.Currency,
			PDFContent:        pdfBuffer.Bytes(),
		}

		if err := resendClient.SendBookingVoucherPDFEmail(emailData); err != nil {
			log.Printf("[booking.send-voucher] failed to send email for booking %s: %v", bookingId, err)
		} else {
			log.Printf("[booking.send-voucher] voucher email sent to %s for booking %s", booking.Email, bookingId)
		}
	}()

	// ✅ LOG THE ACTIVITY
	changes := map[string]interface{}{
		"booking_id":     booking.ID,
		"booking_number": booking.BookingNumber,
		"traveler_email": booking.Email,
		"sent_to":        booking.Email,
	}
	changesJSON, _ := json.Marshal(changes)

	adminID, _ := uuid.Parse(adminIDStr.(string))
	activityLog := models.ActivityLog{
		ID:           uuid.Must(uuid.NewV7()),
		AdminID:      adminID,
		AdminEmail:   adminEmail.(string),
		Action:       "sent_booking_voucher",
		ResourceType: models.ResourceTypeBooking,
		ResourceID:   booking.ID.String(),
		ResourceName: booking.BookingNumber,
		Changes:      datatypes.JSON(changesJSON),
		Status:       models.StatusSuccess,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
	}

	if err := config.Gorm.WithContext(ctx).Create(&activityLog).Error; err != nil {
		log.Printf("[booking.send-voucher] failed to log activity: %v", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Voucher email sent to traveler", map[string]interface{}{
		"booking_id":     booking.ID,
		"traveler_email": booking.Email,
	}))
}
