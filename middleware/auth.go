package middleware

import (
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/Davedaz23/Phoenix-Tour-sub000/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates a traveler JWT from cookie or Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("auth_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			headerToken, err := utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}
			token = headerToken
		}

		// Validate token
		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		// Set traveler info in context
		c.Set("travelerID", claims.TravelerID)
		c.Set("travelerEmail", claims.Email)
		c.Set("travelerName", claims.Name)

		c.Next()
	}
}

func GetTravelerIDFromContext(c *gin.Context) (string, bool) {
	id, exists := c.Get("travelerID")
	if !exists {
		return "", false
	}
	return id.(string), true
}

func GetTravelerEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("travelerEmail")
	if !exists {
		return "", false
	}
	return email.(string), true
}
