package tour_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	catalog_cache "github.com/Davedaz23/Phoenix-Tour-sub000/cache"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateTour godoc
// @Summary Update an existing tour
// @Description Update tour details by ID with support for both text and image updates
// @Tags CMS - Tours
// @Accept json
// @Produce json
// @Param id path string true "Tour ID (UUID)"
// @Param tour body models.UpdateTourRequest true "Tour update fields"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/cms/tours/{id} [patch]
func UpdateTour(c *gin.Context) {
	// Check if this is multipart (images) or JSON (text only)
	contentType := c.GetHeader("Content-Type")
	isMultipart := strings.Contains(contentType, "multipart/form-data")

	idParam := c.Param("id")
	tourID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid tour ID"))
		return
	}

	if isMultipart {
		updateTourWithImages(c, tourID)
	} else {
		updateTourTextOnly(c, tourID)
	}
}

// updateTourTextOnly handles JSON updates without image changes
func updateTourTextOnly(c *gin.Context, tourID uuid.UUID) {
	var input models.UpdateTourRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 1: Find existing tour
	var tour models.Tour
	if err := config.Gorm.
		First(&tour, "id = ?", tourID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Tour not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 2: Validate category/region if provided
	if input.Category != nil && !isKnownCategory(*input.Category) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown category: "+*input.Category))
		return
	}
	if input.Region != nil && !isKnownRegion(*input.Region) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown region: "+*input.Region))
		return
	}

	// Step 3: Build update map (only non-nil fields)
	updates := make(map[string]interface{})

	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.ShortDescription != nil {
		updates["short_description"] = *input.ShortDescription
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Region != nil {
		updates["region"] = *input.Region
	}
	if input.Difficulty != nil {
		updates["difficulty"] = *input.Difficulty
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.MaxParticipants != nil {
		updates["max_participants"] = *input.MaxParticipants
	}
	if input.AvailableDates != nil {
		updates["available_dates"] = models.DatesList(*input.AvailableDates)
	}
	if input.Tags != nil {
		updates["tags"] = models.TagsList(*input.Tags)
	}
	if input.Itinerary != nil {
		for i, day := range *input.Itinerary {
			if day.Day != i+1 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Itinerary days must be sequential starting at day 1"))
				return
			}
		}
		updates["itinerary"] = models.ItineraryList(*input.Itinerary)
	}
	if input.Inclusions != nil {
		updates["inclusions"] = models.InclusionsList(*input.Inclusions)
	}
	if input.Exclusions != nil {
		updates["exclusions"] = models.InclusionsList(*input.Exclusions)
	}
	// Only update media if it's explicitly provided AND has valid data
	if input.Media != nil && input.Media.Primary.URL != "" {
		updates["media"] = *input.Media
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	// Step 4: Update tour
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.
		Model(&tour).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update tour"))
		return
	}

	// Step 5: Reload and refresh the storefront catalog
	if err := config.Gorm.
		First(&tour, "id = ?", tourID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload tour"))
		return
	}
	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tour updated successfully", tour))
}

// updateTourWithImages handles multipart form updates with image changes
func updateTourWithImages(c *gin.Context, tourID uuid.UUID) {
	// Parse multipart form
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to parse form data"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	// Step 1: Fetch existing tour
	var tour models.Tour
	if err := config.Gorm.WithContext(ctx).
		First(&tour, "id = ?", tourID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Tour not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	existingMedia := tour.Media

	// Get form fields
	updates := make(map[string]interface{})

	if title := c.PostForm("title"); title != "" {
		updates["title"] = title
	}
	if shortDescription := c.PostForm("short_description"); shortDescription != "" {
		updates["short_description"] = shortDescription
	}
	if description := c.PostForm("description"); description != "" {
		updates["description"] = description
	}
	if category := c.PostForm("category"); category != "" && isKnownCategory(category) {
		updates["category"] = category
	}
	if region := c.PostForm("region"); region != "" && isKnownRegion(region) {
		updates["region"] = region
	}
	if difficulty := c.PostForm("difficulty"); difficulty != "" {
		updates["difficulty"] = difficulty
	}
	if duration := c.PostForm("duration"); duration != "" {
		updates["duration"] = duration
	}
	if priceStr := c.PostForm("price"); priceStr != "" {
		var price float64
		if _, err := fmt.Sscanf(priceStr, "%f", &price); err == nil {
			updates["price"] = price
		}
	}
	if maxStr := c.PostForm("max_participants"); maxStr != "" {
		var maxParticipants int
		if _, err := fmt.Sscanf(maxStr, "%d", &maxParticipants); err == nil && maxParticipants > 0 {
			updates["max_participants"] = maxParticipants
		}
	}
	if status := c.PostForm("status"); status != "" {
		updates["status"] = status
	}

	// Parse JSON fields from form
	if datesStr := c.PostForm("available_dates"); datesStr != "" {
		var dates []string
		if err := json.Unmarshal([]byte(datesStr), &dates); err == nil {
			updates["available_dates"] = models.DatesList(dates)
		}
	}
	if tagsStr := c.PostForm("tags"); tagsStr != "" {
		var tags []string
		if err := json.Unmarshal([]byte(tagsStr), &tags); err == nil {
			updates["tags"] = models.TagsList(tags)
		}
	}
	if itineraryStr := c.PostForm("itinerary"); itineraryStr != "" {
		var itinerary []models.ItineraryDay
		if err := json.Unmarshal([]byte(itineraryStr), &itinerary); err == nil {
			updates["itinerary"] = models.ItineraryList(itinerary)
		}
	}
	if inclusionsStr := c.PostForm("inclusions"); inclusionsStr != "" {
		var inclusions []models.InclusionGroup
		if err := json.Unmarshal([]byte(inclusionsStr), &inclusions); err == nil {
			updates["inclusions"] = models.InclusionsList(inclusions)
		}
	}
	if exclusionsStr := c.PostForm("exclusions"); exclusionsStr != "" {
		var exclusions []models.InclusionGroup
		if err := json.Unmarshal([]byte(exclusionsStr), &exclusions); err == nil {
			updates["exclusions"] = models.InclusionsList(exclusions)
		}
	}

	// Tour folder for Cloudinary
	tourFolder := fmt.Sprintf("phoenix/tours/%s", tourID.String())

	// Handle media updates
	var newMedia models.TourMedia

	// === COVER IMAGE HANDLING ===
	coverImageFile, _, err := c.Request.FormFile("coverImage")
	if err == nil {
		defer coverImageFile.Close()

		// Delete old cover image if exists
		if existingMedia.Primary.URL != "" {
			publicID := extractPublicIDFromURL(existingMedia.Primary.URL)
			if publicID != "" {
				// Delete in background
				go func(pid string) {
					deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer deleteCancel()
					_ = cloudinaryService.DeleteImage(deleteCtx, pid)
				}(publicID)
			}
		}

		// Upload new cover image
		coverURL, err := cloudinaryService.UploadImage(ctx, coverImageFile, "cover", tourFolder+"/cover")
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload cover image: "+err.Error()))
			return
		}
		newMedia.Primary = models.TourImage{URL: coverURL}
	} else {
		// No new cover image - check if keeping existing
		coverImageURL := c.PostForm("coverImageUrl")
		if coverImageURL != "" {
			// Keep existing cover image
			newMedia.Primary = models.TourImage{URL: coverImageURL}
		} else {
			// Fallback to existing from database
			newMedia.Primary = existingMedia.Primary
		}
	}

	// === GALLERY IMAGES HANDLING ===
	// First, get list of existing images to keep
	existingGalleryStr := c.PostForm("existingGalleryImages")
	var existingImagesToKeep []models.TourImage
	if existingGalleryStr != "" {
		_ = json.Unmarshal([]byte(existingGalleryStr), &existingImagesToKeep)
	}

	// Find images to delete (images in DB but not in "keep" list)
	imagesToDelete := findImagesToDelete(existingMedia.Other, existingImagesToKeep)
	for _, img := range imagesToDelete {
		publicID := extractPublicIDFromURL(img.URL)
		if publicID != "" {
			// Delete in background
			go func(pid string) {
				deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer deleteCancel()
				_ = cloudinaryService.DeleteImage(deleteCtx, pid)
			}(publicID)
		}
	}

	// Start with kept images
	newMedia.Other = existingImagesToKeep

	// Upload new gallery images
	form, _ := c.MultipartForm()
	imageFiles := form.File["galleryImages"]
	if len(imageFiles) > 0 {
		newImageURLs, err := cloudinaryService.UploadMultipleImages(ctx, imageFiles, tourFolder+"/gallery")
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload gallery images: "+err.Error()))
			return
		}

		// Add new images to the list
		startOrder := len(newMedia.Other)
		for i, url := range newImageURLs {
			order := startOrder + i
			newMedia.Other = append(newMedia.Other, models.TourImage{
				URL:   url,
				Order: &order,
			})
		}
	}

	// Update media in updates map
	updates["media"] = newMedia

	// Step 2: Update database
	if len(updates) > 0 {
		if err := config.Gorm.WithContext(ctx).
			Model(&tour).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update tour: "+err.Error()))
			return
		}
	}

	// Step 3: Reload and refresh the storefront catalog
	if err := config.Gorm.WithContext(ctx).
		First(&tour, "id = ?", tourID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload tour"))
		return
	}
	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tour updated successfully", tour))
}

// ═══════════════════════════════════════════════════════════
// Helper Functions
// ═══════════════════════════════════════════════════════════

// extractPublicIDFromURL extracts the Cloudinary public ID from a full URL
// Example: https://res.cloudinary.com/demo/image/upload/v1234/phoenix/tours/test/cover.jpg
// Returns: phoenix/tours/test/cover
func extractPublicIDFromURL(url string) string {
	if url == "" {
		return ""
	}

	// Find the position after "/upload/"
	uploadIndex := strings.Index(url, "/upload/")
	if uploadIndex == -1 {
		return ""
	}

	// Get everything after "/upload/"
	afterUpload := url[uploadIndex+8:] // +8 to skip "/upload/"

	// Skip version if present (e.g., "v1234567890/")
	if strings.HasPrefix(afterUpload, "v") {
		versionEndIndex := strings.Index(afterUpload, "/")
		if versionEndIndex != -1 {
			afterUpload = afterUpload[versionEndIndex+1:]
		}
	}

	// Remove file extension
	lastDotIndex := strings.LastIndex(afterUpload, ".")
	if lastDotIndex != -1 {
		afterUpload = afterUpload[:lastDotIndex]
	}

	return afterUpload
}

// findImagesToDelete finds images that exist in the database but are not in the keep list
func findImagesToDelete(existingImages, keepImages []models.TourImage) []models.TourImage {
	var toDelete []models.TourImage

	// Create a map of URLs to keep for fast lookup
	keepMap := make(map[string]bool)
	for _, img := range keepImages {
		keepMap[img.URL] = true
	}

	// Find images to delete
	for _, existing := range existingImages {
		if !keepMap[existing.URL] {
			toDelete = append(toDelete, existing)
		}
	}

	return toDelete
}
