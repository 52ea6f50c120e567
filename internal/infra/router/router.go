/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-07 09:12:40
 * @LastEditTime: 2026-05-23 11:08:21
 * @LastEditors: 墨见寻
 */
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mojianxun/newshub/internal/app/middleware"
	article_handler "github.com/mojianxun/newshub/pkg/handler/article"
	auth_handler "github.com/mojianxun/newshub/pkg/handler/auth"
	category_handler "github.com/mojianxun/newshub/pkg/handler/category"
	comment_handler "github.com/mojianxun/newshub/pkg/handler/comment"
	user_handler "github.com/mojianxun/newshub/pkg/handler/user"
)

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler     *auth_handler.AuthHandler
	userHandler     *user_handler.UserHandler
	categoryHandler *category_handler.Handler
	articleHandler  *article_handler.Handler
	commentHandler  *comment_handler.Handler
	mw              *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	authHandler *auth_handler.AuthHandler,
	userHandler *user_handler.UserHandler,
	categoryHandler *category_handler.Handler,
	articleHandler *article_handler.Handler,
	commentHandler *comment_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		userHandler:     userHandler,
		categoryHandler: categoryHandler,
		articleHandler:  articleHandler,
		commentHandler:  commentHandler,
		mw:              mw,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
// 读操作全部公开；写操作统一挂 JWTAuth，所有权在服务层校验。
func (r *Router) Setup(engine *gin.Engine) {
	apiGroup := engine.Group("/api")

	apiGroup.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.registerAuthRoutes(apiGroup)
	r.registerUserRoutes(apiGroup)
	r.registerCategoryRoutes(apiGroup)
	r.registerArticleRoutes(apiGroup)
	r.registerCommentRoutes(apiGroup)
}

// registerAuthRoutes 注册注册/登录路由。
// 挂每 IP 频率限制，降低撞库与批量注册的速度。
func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("").Use(middleware.AuthRateLimit(30, 60))
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}
}

// registerUserRoutes 注册用户相关的路由
func (r *Router) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("", r.userHandler.List)
		users.GET("/:id", r.userHandler.Get)
		users.GET("/:id/articles", r.userHandler.ListArticles)
		users.GET("/:id/comments", r.userHandler.ListComments)
	}

	usersAuthed := api.Group("/users").Use(r.mw.JWTAuth())
	{
		usersAuthed.PUT("/:id", r.userHandler.Update)
		usersAuthed.PATCH("/:id", r.userHandler.Patch)
		usersAuthed.DELETE("/:id", r.userHandler.Delete)
	}
}

// registerCategoryRoutes 注册文章分类相关的路由
func (r *Router) registerCategoryRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	{
		categories.GET("", r.categoryHandler.List)
		categories.GET("/:id", r.categoryHandler.Get)
		categories.GET("/:id/articles", r.categoryHandler.ListArticles)
	}

	categoriesAuthed := api.Group("/categories").Use(r.mw.JWTAuth())
	{
		categoriesAuthed.POST("", r.categoryHandler.Create)
		categoriesAuthed.PUT("/:id", r.categoryHandler.Update)
		categoriesAuthed.PATCH("/:id", r.categoryHandler.Patch)
		categoriesAuthed.DELETE("/:id", r.categoryHandler.Delete)
	}
}

// registerArticleRoutes 注册文章相关的路由
func (r *Router) registerArticleRoutes(api *gin.RouterGroup) {
	articles := api.Group("/articles")
	{
		articles.GET("", r.articleHandler.List)
		articles.GET("/:id", r.articleHandler.Get)
		articles.GET("/:id/comments", r.articleHandler.ListComments)
	}

	articlesAuthed := api.Group("/articles").Use(r.mw.JWTAuth())
	{
		articlesAuthed.POST("", r.articleHandler.Create)
		articlesAuthed.PUT("/:id", r.articleHandler.Update)
		articlesAuthed.PATCH("/:id", r.articleHandler.Patch)
		articlesAuthed.DELETE("/:id", r.articleHandler.Delete)
	}
}

// registerCommentRoutes 注册评论相关的路由
func (r *Router) registerCommentRoutes(api *gin.RouterGroup) {
	comments := api.Group("/comments")
	{
		comments.GET("", r.commentHandler.List)
		comments.GET("/:id", r.commentHandler.Get)
	}

	commentsAuthed := api.Group("/comments").Use(r.mw.JWTAuth())
	{
		commentsAuthed.POST("", r.commentHandler.Create)
		commentsAuthed.PUT("/:id", r.commentHandler.Update)
		commentsAuthed.PATCH("/:id", r.commentHandler.Patch)
		commentsAuthed.DELETE("/:id", r.commentHandler.Delete)
	}
}
