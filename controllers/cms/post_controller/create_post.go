package post_controller

import (
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// CreatePost godoc
// @Summary Create a blog post
// @Description Create a new blog post with a unique slug
// @Tags CMS - Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body models.PostRequest true "Post details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/cms/posts [post]
func CreatePost(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Slug must be unique
	var existing int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Post{}).
		Where("slug = ?", req.Slug).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A post with this slug already exists"))
		return
	}

	post := models.Post{
		Slug:       req.Slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Author:     req.Author,
		Tags:       models.TagsList(req.Tags),
		Status:     req.Status,
		Views:      0,
	}

	if err := config.Gorm.WithContext(ctx).Create(&post).Error; err != nil {
		log.Printf("[cms.post.create] ERROR create failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create post: "+err.Error()))
		return
	}

	log.Printf("[cms.post.create] ✅ created post %s slug=%s", post.ID, post.Slug)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Post created successfully", post))
}
