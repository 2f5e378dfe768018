package post_controller

import (
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeletePost godoc
// @Summary Delete a blog post
// @Description Delete a post by ID
// @Tags CMS - Posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/cms/posts/{id} [delete]
func DeletePost(c *gin.Context) {
	idParam := c.Param("id")
	postID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.Post
	if err := config.Gorm.WithContext(ctx).
		Select("id, slug").
		First(&post, "id = ?", postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete post: "+err.Error()))
		return
	}

	log.Printf("[cms.post.delete] ✅ deleted post %s slug=%s", postID, post.Slug)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post deleted successfully", map[string]string{
		"id": postID.String(),
	}))
}
