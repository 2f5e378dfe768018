package tour_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadTourImages godoc
// @Summary Upload tour images to Cloudinary
// @Description Uploads a cover image and optional gallery images, returns their secure URLs
// @Tags CMS - Tours
// @Accept multipart/form-data
// @Produce json
// @Param coverImage formData file false "Cover image"
// @Param galleryImages formData file false "Gallery images (repeatable)"
// @Param tour_id formData string false "Existing tour ID to upload into (new UUID generated if omitted)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/cms/tours/upload-images [post]
func UploadTourImages(c *gin.Context) {
	if cloudinaryService == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload is not configured"))
		return
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to parse form data"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	// Uploads land in the tour's folder; a fresh UUID keeps uploads for
	// not-yet-saved tours isolated (cleanup-folder removes orphans).
	tourID := c.PostForm("tour_id")
	if tourID == "" {
		tourID = uuid.Must(uuid.NewV7()).String()
	} else if _, err := uuid.Parse(tourID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid tour_id"))
		return
	}
	tourFolder := fmt.Sprintf("phoenix/tours/%s", tourID)

	var coverURL string
	coverImageFile, _, err := c.Request.FormFile("coverImage")
	if err == nil {
		defer coverImageFile.Close()
		coverURL, err = cloudinaryService.UploadImage(ctx, coverImageFile, "cover", tourFolder+"/cover")
		if err != nil {
			log.Printf("[upload] ❌ cover upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload cover image: "+err.Error()))
			return
		}
	}

	galleryURLs := make([]string, 0)
	form, _ := c.MultipartForm()
	if form != nil {
		if imageFiles := form.File["galleryImages"]; len(imageFiles) > 0 {
			galleryURLs, err = cloudinaryService.UploadMultipleImages(ctx, imageFiles, tourFolder+"/gallery")
			if err != nil {
				log.Printf("[upload] ❌ gallery upload failed: %v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload gallery images: "+err.Error()))
				return
			}
		}
	}

	if coverURL == "" && len(galleryURLs) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No images provided"))
		return
	}

	log.Printf("[upload] ✅ %d image(s) uploaded to %s", len(galleryURLs)+boolToInt(coverURL != ""), tourFolder)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", gin.H{
		"tour_id":      tourID,
		"folder":       tourFolder,
		"cover_url":    coverURL,
		"gallery_urls": galleryURLs,
	}))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
