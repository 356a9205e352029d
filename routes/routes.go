package routes

import (
	"time"

	"opendraft/config"
	"opendraft/domain/auth"
	"opendraft/domain/category"
	"opendraft/domain/content"
	"opendraft/domain/dashboard"
	"opendraft/domain/health"
	"opendraft/domain/media"
	"opendraft/domain/profile"
	"opendraft/domain/public"
	"opendraft/domain/settings"
	"opendraft/domain/tag"
	"opendraft/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the admin and public HTTP surfaces.
func RegisterRoutes(e *echo.Echo) {
	// Health probes
	e.GET("/health", health.HealthHandler)
	e.GET("/health/live", health.LivenessHandler)
	e.GET("/health/stats", health.StatsHandler, middleware.JWTMiddleware, middleware.RoleMiddleware(middleware.RoleAdmin))

	// Auth
	loginLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		MaxRequests:   10,
		Window:        time.Minute,
		BlockDuration: 5 * time.Minute,
		DB:            config.DB.DB,
	})
	e.POST("/auth/login", auth.LoginHandler, loginLimiter)
	e.POST("/auth/logout", auth.LogoutHandler, middleware.JWTMiddleware)

	// Admin surface (authenticated)
	admin := e.Group("/admin", middleware.JWTMiddleware)

	admin.GET("/dashboard", dashboard.GetDashboardHandler)

	contents := admin.Group("/contents")
	contents.GET("", content.ListContentsHandler)
	contents.POST("", content.SaveContentHandler)
	contents.GET("/:id", content.GetContentHandler)
	contents.PUT("/:id", content.SaveContentHandler)
	contents.DELETE("/:id", content.DeleteContentHandler)
	contents.POST("/bulk-delete", content.BulkDeleteContentsHandler)
	contents.POST("/bulk-status", content.BulkUpdateStatusHandler)
	contents.PATCH("/:id/status", content.UpdateStatusHandler)
	contents.PATCH("/:id/visibility", content.UpdateVisibilityHandler)

	categories := admin.Group("/categories")
	categories.GET("", category.ListCategoriesHandler)
	categories.POST("", category.CreateCategoryHandler)
	categories.PUT("/:id", category.UpdateCategoryHandler)
	categories.DELETE("/:id", category.DeleteCategoryHandler)

	tags := admin.Group("/tags")
	tags.GET("", tag.ListTagsHandler)
	tags.POST("", tag.CreateTagHandler)
	tags.PUT("/:id", tag.UpdateTagHandler)
	tags.DELETE("/:id", tag.DeleteTagHandler)

	mediaGroup := admin.Group("/media")
	mediaGroup.GET("", media.ListMediaHandler)
	mediaGroup.POST("", media.UploadMediaHandler)
	mediaGroup.GET("/:id/download-url", media.DownloadURLHandler)
	mediaGroup.PATCH("/:id", media.UpdateMediaHandler)
	mediaGroup.DELETE("/:id", media.DeleteMediaHandler)
	mediaGroup.POST("/bulk-delete", media.BulkDeleteMediaHandler)

	admin.GET("/settings", settings.GetSettingsHandler)
	admin.PUT("/settings", settings.UpdateSettingsHandler, middleware.RoleMiddleware(middleware.RoleAdmin))

	admin.GET("/profile", profile.GetProfileHandler)
	admin.PUT("/profile", profile.UpdateProfileHandler)

	// Public read-only API
	v1 := e.Group("/api/v1")
	v1.GET("/posts", public.ListPostsHandler)
	v1.GET("/posts/:slug", public.GetPostHandler)
	v1.GET("/categories", public.ListCategoriesHandler)
	v1.GET("/categories/:slug/posts", public.CategoryPostsHandler)
	v1.GET("/tags", public.ListTagsHandler)
	v1.GET("/tags/:slug/posts", public.TagPostsHandler)
	v1.GET("/search", public.SearchHandler)
}
