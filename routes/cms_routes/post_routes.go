package cms_routes

import (
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/cms/post_controller"
	"github.com/Davedaz23/Phoenix-Tour-sub000/middleware"
	"github.com/gin-gonic/gin"
)

func SetupPostRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.Use(middleware.AdminAuthMiddleware())

	posts.GET("", post_controller.GetPosts)
	posts.GET("/:id", post_controller.GetPostByID)

	protected := posts.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", post_controller.CreatePost)
		protected.PATCH("/:id", post_controller.UpdatePost)
		protected.DELETE("/:id", post_controller.DeletePost)
	}
}
