package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leearn-backend/internal/shared/middleware"
	"leearn-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupContentRoutes(v1, c)
		setupFriendshipRoutes(v1, c)
		setupAIRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		// Development stand-in for a real auth service.
		auth.POST("/token", c.UserHandler.IssueToken)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.POST("", c.UserHandler.Create)
		users.GET("", c.UserHandler.List)
		users.GET("/by-username/:username", c.UserHandler.GetByUsername)
		users.GET("/:id", c.UserHandler.GetByID)
		users.PUT("/:id", c.UserHandler.Update)
		users.DELETE("/:id", c.UserHandler.Delete)
		users.GET("/:id/friendships", c.FriendshipHandler.ListByUser)
	}
}

// ========================================
// CONTENT ROUTES
// ========================================
func setupContentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authed := middleware.AuthMiddleware(c.JWTManager)

	contents := v1.Group("/contents")
	{
		contents.POST("", authed, c.ContentHandler.Create)
		contents.GET("", c.ContentHandler.List)
		contents.GET("/:id", c.ContentHandler.GetByID)
		contents.PUT("/:id", authed, c.ContentHandler.Update)
		contents.DELETE("/:id", authed, c.ContentHandler.Delete)

		contents.POST("/:id/like", authed, c.ContentHandler.Like)
		contents.DELETE("/:id/like", authed, c.ContentHandler.Unlike)

		contents.POST("/:id/comments", authed, c.CommentHandler.Create)
		contents.GET("/:id/comments", c.CommentHandler.ListByContent)
	}
}

// ========================================
// FRIENDSHIP ROUTES
// ========================================
func setupFriendshipRoutes(v1 *gin.RouterGroup, c *container.Container) {
	friendships := v1.Group("/friendships")
	friendships.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		friendships.POST("", c.FriendshipHandler.Create)
	}
}

// ========================================
// AI ROUTES
// ========================================
func setupAIRoutes(v1 *gin.RouterGroup, c *container.Container) {
	aiGroup := v1.Group("/ai")
	{
		aiGroup.POST("/chat", c.AIHandler.Chat)
		aiGroup.POST("/study-plan", c.AIHandler.StudyPlan)
		aiGroup.POST("/suggestions", c.AIHandler.Suggestions)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unavailable"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unavailable"
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
			"app_name": c.Config.App.Name,
		})
	}
}
