package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Binodkurmi/Birthday-reminderBackend/config"
	"github.com/Binodkurmi/Birthday-reminderBackend/cron"
	"github.com/Binodkurmi/Birthday-reminderBackend/database"
	birthdayRepoPkg "github.com/Binodkurmi/Birthday-reminderBackend/database/repository/birthday"
	notificationRepoPkg "github.com/Binodkurmi/Birthday-reminderBackend/database/repository/notification"
	userRepoPkg "github.com/Binodkurmi/Birthday-reminderBackend/database/repository/user"
	"github.com/Binodkurmi/Birthday-reminderBackend/handlers"
	"github.com/Binodkurmi/Birthday-reminderBackend/middleware"
	"github.com/Binodkurmi/Birthday-reminderBackend/routes"
	"github.com/Binodkurmi/Birthday-reminderBackend/services/birthday"
	"github.com/Binodkurmi/Birthday-reminderBackend/services/notification"
	"github.com/Binodkurmi/Birthday-reminderBackend/services/reminder"
	"github.com/Binodkurmi/Birthday-reminderBackend/services/user"
	"github.com/Binodkurmi/Birthday-reminderBackend/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, image upload disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	birthdayRepo := birthdayRepoPkg.NewMongoBirthdayRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to create user indexes: %v", err)
	}
	if err := notificationRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to create notification indexes: %v", err)
	}
	cancelIndex()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	birthdayService := &birthday.DefaultBirthdayService{
		Repo: birthdayRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}
	reminderService := &reminder.DefaultReminderService{
		Users:         userRepo,
		Birthdays:     birthdayRepo,
		Notifications: notificationRepo,
		Location:      config.SchedulerLocation(),
	}

	// Daily reminder scan.
	scheduler := cron.NewReminderScheduler(reminderService, config.SchedulerLocation())
	if err := scheduler.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start reminder scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		User:         handlers.NewUserHandler(userService),
		Birthday:     handlers.NewBirthdayHandler(birthdayService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Storage:      handlers.NewStorageHandler(cloudinaryStorageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
