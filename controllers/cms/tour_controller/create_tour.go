package tour_controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	catalog_cache "github.com/Davedaz23/Phoenix-Tour-sub000/cache"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/Davedaz23/Phoenix-Tour-sub000/services"
	"github.com/gin-gonic/gin"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// CreateTour godoc
// @Summary Create a new tour
// @Description Create a new tour with Cloudinary URLs (optimized flow)
// @Tags CMS - Tours
// @Accept json
// @Produce json
// @Param tour body models.TourRequest true "Tour details with Cloudinary URLs"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/cms/tours [post]
func CreateTour(c *gin.Context) {
	overallStart := time.Now()
	log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Printf("[PERF] CREATE TOUR START (GORM + UUID v7)")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	// Step 1: Parse JSON request
	var req models.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[ERROR] Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Set default status if not provided
	if req.Status == "" {
		req.Status = "Draft"
	}

	// Step 3: Validate category and region against the known sets
	if !isKnownCategory(req.Category) {
		log.Printf("[ERROR] Unknown category: %s", req.Category)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown category: "+req.Category))
		return
	}
	if !isKnownRegion(req.Region) {
		log.Printf("[ERROR] Unknown region: %s", req.Region)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown region: "+req.Region))
		return
	}

	// Step 4: Validate media URLs exist
	if req.Media.Primary.URL == "" {
		log.Printf("[ERROR] Primary image URL is missing")
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Primary image URL is required"))
		return
	}

	log.Printf("[PERF] 📸 Primary URL: %s", req.Media.Primary.URL)
	if len(req.Media.Other) > 0 {
		log.Printf("[PERF] 📸 Other images: %d URLs", len(req.Media.Other))
	}

	// Step 5: Itinerary days must be sequential starting at 1
	for i, day := range req.Itinerary {
		if day.Day != i+1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Itinerary days must be sequential starting at day 1"))
			return
		}
	}

	// Step 6: Create tour model (UUID v7 auto-generated in BeforeCreate hook)
	tour := models.Tour{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Category:         req.Category,
		Region:           req.Region,
		Difficulty:       req.Difficulty,
		Duration:         req.Duration,
		Price:            req.Price,
		MaxParticipants:  req.MaxParticipants,
		AvailableDates:   models.DatesList(req.AvailableDates),
		Tags:             models.TagsList(req.Tags),
		Itinerary:        models.ItineraryList(req.Itinerary),
		Inclusions:       models.InclusionsList(req.Inclusions),
		Exclusions:       models.InclusionsList(req.Exclusions),
		Media:            req.Media,
		Status:           req.Status,
		Views:            0,
	}

	// Step 7: Save to database
	dbStart := time.Now()
	if err := config.Gorm.WithContext(ctx).Create(&tour).Error; err != nil {
		log.Printf("[ERROR] Failed to create tour: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create tour: "+err.Error()))
		return
	}
	dbDuration := time.Since(dbStart)
	log.Printf("[PERF] ⏱️  Database insert: %v", dbDuration)
	log.Printf("[PERF] 🆔 Tour ID (UUID v7): %s", tour.ID)

	// Step 8: New tour changes the storefront catalog
	catalog_cache.Invalidate()

	totalDuration := time.Since(overallStart)
	log.Printf("[PERF] ⏱️  ⭐ TOTAL TIME: %v (Database only, images already in Cloudinary)", totalDuration)
	log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Tour created successfully", tour))
}

func isKnownCategory(category string) bool {
	for _, known := range models.TourCategories {
		if known == category {
			return true
		}
	}
	return false
}

func isKnownRegion(region string) bool {
	for _, known := range models.TourRegions {
		if known == region {
			return true
		}
	}
	return false
}

// ════════════════════════════════════════════════════════════
// CLEANUP ENDPOINT
// ════════════════════════════════════════════════════════════

// CleanupFolderRequest represents the request to delete a folder
type CleanupFolderRequest struct {
	FolderPath string `json:"folder_path" binding:"required"`
}

// CleanupOrphanedFolder godoc
// @Summary Delete orphaned tour folder from Cloudinary
// @Description Deletes entire tour folder when backend save fails after upload succeeds
// @Tags CMS - Tours
// @Accept json
// @Produce json
// @Param request body CleanupFolderRequest true "Folder path to delete"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/cms/tours/cleanup-folder [post]
func CleanupOrphanedFolder(c *gin.Context) {
	var req CleanupFolderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.FolderPath == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Folder path is required"))
		return
	}

	// Security: Only allow cleanup of tour folders
	if !strings.HasPrefix(req.FolderPath, "phoenix/tours/") {
		log.Printf("[Cleanup] ⚠️  Blocked attempt to delete non-tour folder: %s", req.FolderPath)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Can only cleanup tour folders"))
		return
	}

	// Validate folder path format (should be phoenix/tours/{uuid})
	parts := strings.Split(req.FolderPath, "/")
	if len(parts) != 3 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid folder path format"))
		return
	}

	log.Printf("[Cleanup] Folder deletion requested: %s", req.FolderPath)

	// Delete folder in background (don't block response)
	go func(folderPath string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := cloudinaryService.DeleteFolder(ctx, folderPath)
		if err != nil {
			log.Printf("[Cleanup] ❌ Failed to delete folder %s: %v", folderPath, err)
		} else {
			log.Printf("[Cleanup] ✓ Successfully deleted orphaned folder: %s", folderPath)
		}
	}(req.FolderPath)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Folder cleanup initiated", map[string]string{
		"folder": req.FolderPath,
		"status": "deleting",
	}))
}
