package routes

import (
	"net/http"
	"time"

	"github.com/Binodkurmi/Birthday-reminderBackend/handlers"
	"github.com/Binodkurmi/Birthday-reminderBackend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.LoginUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.User.GetMeHandler)
		api.PUT("/me", hb.User.UpdateMeHandler)
		api.DELETE("/me", hb.User.DeleteMeHandler)
	}
}

// RegisterBirthdayRoutes registers birthday record CRUD endpoints.
func RegisterBirthdayRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/birthdays")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", hb.Birthday.CreateBirthdayHandler)
		api.GET("", hb.Birthday.ListBirthdaysHandler)
		api.GET("/:id", hb.Birthday.GetBirthdayHandler)
		api.PUT("/:id", hb.Birthday.UpdateBirthdayHandler)
		api.DELETE("/:id", hb.Birthday.DeleteBirthdayHandler)
	}
}

// RegisterNotificationRoutes registers notification management endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.Notification.ListNotificationsHandler)
		api.GET("/unread", hb.Notification.ListUnreadNotificationsHandler)
		api.PUT("/:id/read", hb.Notification.MarkNotificationReadHandler)
		api.DELETE("/:id", hb.Notification.DeleteNotificationHandler)
	}
}

// RegisterStorageRoutes registers the image upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/upload")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", hb.Storage.UploadImageHandler)
	}
}

// RegisterHealthRoute registers the health check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires global middleware and all endpoint groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterBirthdayRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
