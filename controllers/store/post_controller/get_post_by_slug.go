package post_controller

import (
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetPublicPostBySlug godoc
// @Summary Get a published post by slug
// @Description Full article payload for the blog detail page. Bumps the view counter.
// @Tags store
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.ApiResponse{data=models.Post}
// @Failure 404 {object} models.ApiResponse
// @Router /store/posts/{slug} [get]
func GetPublicPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.Post
	if err := config.Gorm.WithContext(ctx).
		Where("slug = ? AND status = 'Published'", slug).
		First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	go incrementPostViews(slug)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post fetched successfully", post))
}

func incrementPostViews(slug string) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	config.Gorm.WithContext(ctx).Exec(`
		UPDATE posts
		SET views = COALESCE(views, 0) + 1
		WHERE slug = ?
	`, slug)
}
