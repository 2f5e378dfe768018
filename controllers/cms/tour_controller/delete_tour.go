package tour_controller

import (
	"context"
	"fmt"
	"net/http"
	"time"

	catalog_cache "github.com/Davedaz23/Phoenix-Tour-sub000/cache"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteTour godoc
// @Summary Delete a tour
// @Description Delete a tour by ID and its associated Cloudinary folder
// @Tags CMS - Tours
// @Produce json
// @Param id path string true "Tour ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/cms/tours/{id} [delete]
func DeleteTour(c *gin.Context) {
	// Step 1: Parse and validate tour ID
	idParam := c.Param("id")
	tourID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid tour ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Find tour and check if it has Cloudinary images
	var tour models.Tour
	if err := config.Gorm.WithContext(ctx).
		Select("id, media").
		First(&tour, "id = ?", tourID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Tour not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Refuse to delete tours with pending bookings
	var pendingBookings int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Booking{}).
		Where("tour_id = ? AND status IN ('pending', 'confirmed')", tourID).
		Count(&pendingBookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if pendingBookings > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, fmt.Sprintf("Tour has %d open booking(s); cancel or complete them first", pendingBookings)))
		return
	}

	// Step 4: Check if tour has Cloudinary images
	hasCloudinaryImages := false
	if tour.Media.Primary.URL != "" || len(tour.Media.Other) > 0 {
		hasCloudinaryImages = true
	}

	// Step 5: Delete from database
	if err := config.Gorm.WithContext(ctx).Delete(&tour).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete tour: "+err.Error()))
		return
	}

	catalog_cache.Invalidate()

	// Step 6: Delete Cloudinary folder in background (don't block response)
	if hasCloudinaryImages && cloudinaryService != nil {
		go func(id uuid.UUID) {
			// Create folder path: phoenix/tours/{tourId}
			folderPath := fmt.Sprintf("phoenix/tours/%s", id.String())

			// Create context with timeout for deletion
			deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer deleteCancel()

			// Delete the entire folder
			if err := cloudinaryService.DeleteFolder(deleteCtx, folderPath); err != nil {
				// Log error but don't fail the delete operation
				fmt.Printf("⚠️  Warning: Failed to delete Cloudinary folder %s: %v\n", folderPath, err)
			} else {
				fmt.Printf("✓ Successfully deleted Cloudinary folder: %s\n", folderPath)
			}
		}(tourID)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tour deleted successfully", map[string]string{
		"id": tourID.String(),
	}))
}
