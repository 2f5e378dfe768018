package post_controller

import (
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdatePost godoc
// @Summary Update a blog post
// @Description Update post fields by ID. Only provided fields are changed.
// @Tags CMS - Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID (UUID)"
// @Param post body models.UpdatePostRequest true "Post update fields"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/cms/posts/{id} [patch]
func UpdatePost(c *gin.Context) {
	idParam := c.Param("id")
	postID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	var input models.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.Post
	if err := config.Gorm.WithContext(ctx).
		First(&post, "id = ?", postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Slug change must stay unique
	if input.Slug != nil && *input.Slug != post.Slug {
		var existing int64
		if err := config.Gorm.WithContext(ctx).
			Model(&models.Post{}).
			Where("slug = ? AND id <> ?", *input.Slug, postID).
			Count(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if existing > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A post with this slug already exists"))
			return
		}
	}

	// Build update map (only non-nil fields)
	updates := make(map[string]interface{})

	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Excerpt != nil {
		updates["excerpt"] = *input.Excerpt
	}
	if input.Body != nil {
		updates["body"] = *input.Body
	}
	if input.CoverImage != nil {
		updates["cover_image"] = *input.CoverImage
	}
	if input.Author != nil {
		updates["author"] = *input.Author
	}
	if input.Tags != nil {
		updates["tags"] = models.TagsList(*input.Tags)
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&post).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload post"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post updated successfully", post))
}
