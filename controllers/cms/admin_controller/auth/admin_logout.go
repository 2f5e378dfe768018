package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/Davedaz23/Phoenix-Tour-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Logout the current admin and deactivate session
// @Tags CMS - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /cms/logout [post]
func AdminLogout(c *gin.Context) {
	// Deactivate the DB session when we know who is logging out.
	// A missing or unparsable adminID still clears the cookie.
	if adminIDStr, exists := c.Get("adminID"); exists {
		log.Printf("[admin.logout] admin logging out: %s", adminIDStr)

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if adminID, err := uuid.Parse(adminIDStr.(string)); err == nil {
			if err := services.GetAdminSessionService().DeactivateSession(ctx, adminID); err != nil {
				log.Printf("[admin.logout] failed to deactivate session: %v", err)
			}
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)
	log.Printf("[admin.logout] token cleared from cookie")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
