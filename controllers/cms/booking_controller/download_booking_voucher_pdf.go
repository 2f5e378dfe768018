package booking_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DownloadBookingVoucherPDF godoc
// @Summary Download booking voucher PDF
// @Description Generate and download a voucher PDF for the booking
// @Tags CMS - Bookings
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid booking ID"
// @Failure 404 {object} models.ApiResponse "Booking not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/cms/bookings/{id}/download-voucher [get]
func DownloadBookingVoucherPDF(c *gin.Context) {
	bookingId := c.Param("id")
	log.Printf("[booking.download-voucher] request for booking: %s", bookingId)

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
			log.Printf("[booking.download-voucher] booking not found: %s", bookingId)
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Booking not found"))
			return
		}
		log.Printf("[booking.download-voucher] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Generate PDF in memory
	pdfBuffer := generateBookingVoucherPDF(&booking)

	// Set response headers for file download
	filename := fmt.Sprintf("voucher-%s.pdf", booking.BookingNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	// CORS headers for PDF download
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

	// Write PDF to response
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[booking.download-voucher] voucher PDF downloaded for booking %s", bookingId)
}
