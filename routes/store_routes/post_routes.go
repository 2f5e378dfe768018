package store_routes

import (
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/store/post_controller"
	"github.com/gin-gonic/gin"
)

// SetupPostRoutes sets up the public blog (no auth required)
func SetupPostRoutes(store *gin.RouterGroup) {
	posts := store.Group("/posts")
	{
		posts.GET("", post_controller.GetPublicPosts)
		posts.GET("/:slug", post_controller.GetPublicPostBySlug)
	}
}
