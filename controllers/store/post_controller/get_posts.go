package post_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetPublicPosts godoc
// @Summary Get published blog posts
// @Description Paginated index of published posts, newest first. Drafts are never visible here.
// @Tags store
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Success 200 {object} models.ApiResponse{data=object{posts=[]models.PostListRow},meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /store/posts [get]
func GetPublicPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).
		Model(&models.Post{}).
		Where("status = 'Published'")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("❌ [store.posts] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	var posts []models.Post
	if err := db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		log.Printf("❌ [store.posts] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	rows := make([]models.PostListRow, len(posts))
	for i, p := range posts {
		rows[i] = models.PostListRow{
			Slug:       p.Slug,
			Title:      p.Title,
			Excerpt:    p.Excerpt,
			CoverImage: p.CoverImage,
			Author:     p.Author,
			Tags:       p.Tags,
			CreatedAt:  p.CreatedAt,
		}
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Posts retrieved", gin.H{
		"posts": rows,
	}, meta))
}
