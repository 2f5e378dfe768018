package booking_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetBookings godoc
// @Summary Get bookings (CMS)
// @Description Retrieve all bookings for the back office with pagination. Supports optional filtering by status and search.
// @Tags CMS - Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by booking status (pending, confirmed, completed, cancelled)"
// @Param q query string false "Search by booking number, traveler email, name, or tour name"
// @Success 200 {object} models.ApiResponse{data=[]models.CMSBookingListRow,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /api/v1/cms/bookings [get]
func GetBookings(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		log.Printf("[cms.bookings] WARN invalid page=%q err=%v -> default 1", c.Query("page"), err)
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		log.Printf("[cms.bookings] WARN invalid limit=%q err=%v -> default 10", c.Query("limit"), err)
		limit = 10
	}

	if page < 1 {
		log.Printf("[cms.bookings] WARN page < 1 (%d) -> set 1", page)
		page = 1
	}
	if limit < 1 || limit > 50 {
		log.Printf("[cms.bookings] WARN limit out of range (%d) -> set 10", limit)
		limit = 10
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.Query("status"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[cms.bookings] params page=%d limit=%d offset=%d status=%q q=%q", page, limit, offset, status, q)

	db := config.Gorm.Model(&models.Booking{})

	// Apply filters
	if status != "" {
		db = db.Where("status = ?", status)
		log.Printf("[cms.bookings] filter status=%q", status)
	}

	if q != "" {
		like := "%" + q + "%"
		db = db.Where("booking_number ILIKE ? OR email ILIKE ? OR full_name ILIKE ? OR tour_name ILIKE ?", like, like, like, like)
		log.Printf("[cms.bookings] filter q=%q", like)
	}

	// Count total bookings
	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[cms.bookings] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count bookings"))
		return
	}

	log.Printf("[cms.bookings] count OK total=%d", total)

	// Fetch bookings
	rows := make([]models.CMSBookingListRow, 0, limit)
	if err := db.
		Select("id::text AS id, booking_number, tour_name, tour_date, full_name, email, group_size, total_amount, currency, status, created_at").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[cms.bookings] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch bookings"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[cms.bookings] respond 200 meta=%+v", *meta)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Bookings retrieved successfully",
		rows,
		meta,
	))
}
