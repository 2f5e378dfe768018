package admin_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetActivityLogs godoc
// @Summary Get admin activity logs
// @Description Get activity logs for all admins with pagination and optional filters
// @Tags CMS - Admins
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param admin_id query string false "Filter by admin ID"
// @Param action query string false "Filter by action (e.g., created_tour, updated_booking)"
// @Success 200 {object} models.ApiResponse{data=map[string]interface{}}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /cms/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	log.Printf("[admin.activity] request for activity logs")

	// Pagination
	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			if parsed > 100 {
				parsed = 100 // Max 100 items per page
			}
			limit = parsed
		}
	}

	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Build base query
	baseQuery := config.Gorm.WithContext(ctx)

	// Optional filters
	if adminID := c.Query("admin_id"); adminID != "" {
		baseQuery = baseQuery.Where("admin_id = ?", adminID)
	}

	if action := c.Query("action"); action != "" {
		baseQuery = baseQuery.Where("action = ?", action)
	}

	// Get activity logs
	var activityLogs []models.ActivityLog
	var total int64

	if err := baseQuery.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&activityLogs).Error; err != nil {
		log.Printf("[admin.activity] failed to fetch logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Get total count
	if err := baseQuery.Model(&models.ActivityLog{}).Count(&total).Error; err != nil {
		log.Printf("[admin.activity] failed to count logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Convert to response objects
	responses := make([]models.ActivityLogResponse, len(activityLogs))
	for i, entry := range activityLogs {
		responses[i] = entry.ToResponse()
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	response := gin.H{
		"logs": responses,
	}

	log.Printf("[admin.activity] retrieved %d logs (page %d/%d, total: %d)", len(responses), page, totalPages, total)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", response, meta))
}
