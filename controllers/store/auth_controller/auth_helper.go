package auth_controller

import (
	"fmt"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func createOrUpdateTraveler(
	c *gin.Context,
	googleUser *models.GoogleUserInfo,
	googleID string,
	emailVerified bool,
) (*models.Traveler, error) {
	var traveler models.Traveler

	// Try to find existing traveler by email
	result := config.Gorm.
		Where("email = ?", googleUser.Email).
		First(&traveler)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create traveler
			traveler = models.Traveler{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      googleID,
				Provider:      "google",
				EmailVerified: emailVerified,
				Avatar:        &googleUser.Picture,
			}

			if err := config.Gorm.Create(&traveler).Error; err != nil {
				return nil, err
			}

			return &traveler, nil
		}

		return nil, result.Error
	}

	// Existing traveler: update safe fields only
	updates := map[string]interface{}{
		"avatar":         googleUser.Picture,
		"email_verified": emailVerified,
	}

	// Only set name if traveler never had one
	if traveler.Name == "" {
		updates["name"] = googleUser.Name
	}

	// Attach Google account if not already linked
	if traveler.GoogleID == "" {
		updates["google_id"] = googleID
		updates["provider"] = "google"
	}

	if err := config.Gorm.Model(&traveler).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Sync struct with DB updates
	if traveler.Name == "" {
		traveler.Name = googleUser.Name
	}
	traveler.Avatar = &googleUser.Picture
	traveler.EmailVerified = emailVerified

	return &traveler, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
