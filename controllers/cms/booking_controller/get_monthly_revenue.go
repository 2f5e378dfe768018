package booking_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue for last 12 months
// @Description Returns booking revenue per month for chart visualization
// @Tags CMS - Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenueRow}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/cms/bookings/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	log.Printf("[cms.booking.monthly-revenue] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()

	// ================================
	// Get revenue for last 12 months
	// ================================
	var monthlyData []models.MonthlyRevenueRow
	if err := config.Gorm.WithContext(ctx).
		Raw(`
			SELECT
				TO_CHAR(date_trunc('month', created_at), 'Mon') AS month,
				EXTRACT(MONTH FROM created_at)::int AS month_number,
				COALESCE(SUM(total_amount), 0)::float8 AS revenue,
				COUNT(*)::int AS bookings
			FROM bookings
			WHERE status IN ('confirmed', 'completed') AND created_at >= ?
			GROUP BY date_trunc('month', created_at), TO_CHAR(date_trunc('month', created_at), 'Mon'), EXTRACT(MONTH FROM created_at)
			ORDER BY date_trunc('month', created_at) ASC
		`, now.AddDate(0, -12, 0)).
		Scan(&monthlyData).Error; err != nil {
		log.Printf("[cms.booking.monthly-revenue] ERROR query monthly revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly revenue"))
		return
	}

	// ================================
	// Ensure all 12 months are present (fill missing months with 0)
	// ================================
	monthlyMap := make(map[int]models.MonthlyRevenueRow)
	monthNames := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	for _, data := range monthlyData {
		monthlyMap[data.MonthNumber] = data
	}

	// Build complete 12-month data with current and previous 11 months
	completeData := []models.MonthlyRevenueRow{}
	startMonth := now.AddDate(0, -11, 0) // Start from 11 months ago

	for i := 0; i < 12; i++ {
		currentMonth := startMonth.AddDate(0, i, 0)
		monthNum := int(currentMonth.Month())
		monthName := monthNames[monthNum-1]

		if data, exists := monthlyMap[monthNum]; exists {
			completeData = append(completeData, data)
		} else {
			completeData = append(completeData, models.MonthlyRevenueRow{
				Month:       monthName,
				MonthNumber: monthNum,
				Revenue:     0,
				Bookings:    0,
			})
		}
	}

	log.Printf("[cms.booking.monthly-revenue] respond 200 months=%d", len(completeData))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue retrieved successfully", completeData))
}
