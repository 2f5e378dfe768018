package booking_controller

import (
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetBookingStats godoc
// @Summary Get booking stats (CMS)
// @Description Returns all-time booking totals, per-status breakdown, and revenue aggregates for the dashboard cards.
// @Tags CMS - Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.BookingStatsResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/cms/bookings/stats [get]
func GetBookingStats(c *gin.Context) {
	log.Printf("[cms.booking.stats] start path=%s method=%s", c.FullPath(), c.Request.Method)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Revenue aggregates count confirmed and completed bookings only;
	// pending money is not revenue yet and cancelled never will be.
	q := `
		SELECT
			COUNT(*)::int AS total_bookings,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0)::int   AS pending_bookings,
			COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0)::int AS confirmed_bookings,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0)::int AS completed_bookings,
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0)::int AS cancelled_bookings,
			COALESCE(SUM(CASE WHEN status IN ('confirmed', 'completed') THEN total_amount ELSE 0 END), 0)::float8 AS total_revenue,
			COALESCE(AVG(CASE WHEN status IN ('confirmed', 'completed') THEN total_amount END), 0)::float8 AS avg_booking_value,
			COALESCE(AVG(group_size), 0)::float8 AS avg_group_size
		FROM bookings;
	`

	var stats models.BookingStatsResponse
	if err := config.Gorm.WithContext(ctx).Raw(q).Scan(&stats).Error; err != nil {
		log.Printf("[cms.booking.stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch booking stats"))
		return
	}

	log.Printf("[cms.booking.stats] respond 200 total=%d revenue=%.2f", stats.TotalBookings, stats.TotalRevenue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Booking stats retrieved successfully", stats))
}
