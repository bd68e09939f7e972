package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/middleware"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/response"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

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
		setupBookRoutes(v1, c)
		setupReadingListRoutes(v1, c)
		setupBookClubRoutes(v1, c)
		setupForumRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", c.AuthHandler.Signup)
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", middleware.Auth(c.JWTManager, c.UserLoader), c.AuthHandler.Logout)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	books.Use(middleware.Auth(c.JWTManager, c.UserLoader))
	{
		books.GET("/search", c.BookHandler.Search)
		books.GET("/:id", c.BookHandler.GetByID)
	}
}

func setupReadingListRoutes(v1 *gin.RouterGroup, c *container.Container) {
	lists := v1.Group("/reading-lists")
	lists.Use(middleware.Auth(c.JWTManager, c.UserLoader))
	{
		lists.GET("", c.ReadingListHandler.List)
		lists.POST("/add", c.ReadingListHandler.Add)
		lists.PUT("/move", c.ReadingListHandler.Move)
		lists.DELETE("/:bookId", c.ReadingListHandler.Delete)
	}
}

func setupBookClubRoutes(v1 *gin.RouterGroup, c *container.Container) {
	clubs := v1.Group("/bookclubs")
	clubs.Use(middleware.Auth(c.JWTManager, c.UserLoader))
	{
		clubs.GET("", c.BookClubHandler.List)
		clubs.GET("/search", c.BookClubHandler.Search)
		clubs.GET("/:id", c.BookClubHandler.Get)
		clubs.POST("", c.BookClubHandler.Create)
		clubs.PUT("/:id", c.BookClubHandler.Update)
		clubs.POST("/:id/join", c.BookClubHandler.Join)
	}
}

func setupForumRoutes(v1 *gin.RouterGroup, c *container.Container) {
	forums := v1.Group("/forums")
	forums.Use(middleware.Auth(c.JWTManager, c.UserLoader))
	{
		forums.GET("/:clubId/posts", c.ForumHandler.List)
		forums.POST("/:clubId/posts", c.ForumHandler.Create)
	}
}

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.Auth(c.JWTManager, c.UserLoader), middleware.Admin())
	{
		admin.POST("/users/:id/ban", c.AdminHandler.BanUser)
		admin.DELETE("/bookclubs/:id", c.AdminHandler.DeleteClub)
	}
}

// healthCheckHandler probes both backing stores so the endpoint reports
// real readiness, not just process liveness.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		response.JSON(ctx, status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
