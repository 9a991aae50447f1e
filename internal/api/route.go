package api

import (
	"Daybook/internal/api/middleware"
	"Daybook/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		postGroup := apiGroup.Group("/posts")
		{
			// 无需登录即可访问的接口
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.POST("/:post_id/share", group.PostHandler.SharePost)
			postGroup.GET("/:post_id/comments", group.CommentHandler.ListComments)
			postGroup.POST("/:post_id/comments", group.CommentHandler.CreateComment)
			postGroup.GET("/:post_id/reactions", group.ReactionHandler.GetPostReactionState)
			postGroup.PUT("/:post_id/reactions", group.ReactionHandler.TogglePostReaction)

			// 需要登录的管理操作
			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.POST("/:post_id/comments/reply", group.CommentHandler.ReplyComment)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.PUT("/:comment_id/reactions", group.ReactionHandler.ToggleCommentReaction)

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		trashGroup := apiGroup.Group("/trash")
		{
			trashGroup.Use(middleware.AuthMiddleware())
			{
				trashGroup.GET("", group.TrashHandler.ListTrash)
				trashGroup.POST("/:trash_id/restore", group.TrashHandler.RestoreTrash)
				trashGroup.DELETE("/:trash_id", group.TrashHandler.PurgeTrash)
				trashGroup.POST("/sweep", group.TrashHandler.SweepTrash)
			}
		}

		syncGroup := apiGroup.Group("/sync")
		{
			syncGroup.Use(middleware.AuthMiddleware())
			{
				syncGroup.POST("/posts/:post_id/comment-count", group.SyncHandler.SyncCommentCount)
				syncGroup.POST("/posts/:post_id/reaction-counts", group.SyncHandler.SyncReactionCounts)
				syncGroup.POST("/comment-counts", group.SyncHandler.SyncAllCommentCounts)
				syncGroup.POST("/reaction-counts", group.SyncHandler.SyncAllReactionCounts)
			}
		}

		visitGroup := apiGroup.Group("/visits")
		{
			visitGroup.POST("", group.VisitorHandler.TrackVisit)

			authGroup := visitGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/summary", group.VisitorHandler.Summary)
			}
		}

		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.POST("/login", group.AdminHandler.Login)

			authGroup := adminGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.AdminHandler.Logout)
			}
		}
	}

	return r
}
