// File: safarihub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"safarihub/config"
	"safarihub/cron"
	"safarihub/database"
	notificationRepoPkg "safarihub/database/repository/notification"
	rejectionRepoPkg "safarihub/database/repository/rejection"
	staffRepoPkg "safarihub/database/repository/staff"
	tourRepoPkg "safarihub/database/repository/tour"
	"safarihub/handlers"
	"safarihub/middleware"
	"safarihub/routes"
	"safarihub/services/notification"
	"safarihub/services/staff"
	"safarihub/services/tour"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	toursRepo := tourRepoPkg.NewMongoTourRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	rejectionRepo := rejectionRepoPkg.NewMongoRejectionRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}

	coordinator := &tour.DefaultCoordinator{
		Tours:      toursRepo,
		Staff:      staffRepo,
		Rejections: rejectionRepo,
		Notifier:   notificationService,
	}

	staffService := &staff.DefaultStaffService{
		Repo:  staffRepo,
		Cache: utils.GetCacheClient(),
	}

	tourHandler := handlers.NewTourHandler(coordinator)
	rejectionHandler := handlers.NewRejectionHandler(coordinator)
	staffHandler := handlers.NewStaffHandler(staffService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(coordinator)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo: staffRepo,

		// Tour lifecycle endpoints.
		CreateTourHandler:   tourHandler.CreateTourHandler,
		AssignTourHandler:   tourHandler.AssignTourHandler,
		AcceptTourHandler:   tourHandler.AcceptTourHandler,
		StartTourHandler:    tourHandler.StartTourHandler,
		RejectTourHandler:   tourHandler.RejectTourHandler,
		CompleteTourHandler: tourHandler.CompleteTourHandler,
		ReassignTourHandler: tourHandler.ReassignTourHandler,

		// Tour query endpoints.
		ListToursHandler:      tourHandler.ListToursHandler,
		AssignmentPoolHandler: tourHandler.AssignmentPoolHandler,
		ToursByGuideHandler:   tourHandler.ToursByGuideHandler,
		ToursByDriverHandler:  tourHandler.ToursByDriverHandler,

		// Rejection endpoints.
		SubmitRejectionHandler:   rejectionHandler.SubmitRejectionHandler,
		RejectionsByTourHandler:  rejectionHandler.RejectionsByTourHandler,
		RejectionsByGuideHandler: rejectionHandler.RejectionsByGuideHandler,

		// Staff endpoints.
		RegisterStaffHandler:        staffHandler.RegisterStaffHandler,
		AuthenticateStaffHandler:    staffHandler.AuthenticateStaffHandler,
		AuthenticateOfficerHandler:  staffHandler.AuthenticateOfficerHandler,
		GetStaffByIDHandler:         staffHandler.GetStaffByIDHandler,
		SetDailyAvailabilityHandler: staffHandler.SetDailyAvailabilityHandler,
		AvailableStaffHandler:       staffHandler.AvailableStaffHandler,
		UpdateFCMTokenHandler:       staffHandler.UpdateFCMTokenHandler,

		// Notification endpoints.
		ListNotificationsHandler:    notificationHandler.ListNotificationsHandler,
		MarkNotificationReadHandler: notificationHandler.MarkNotificationReadHandler,

		// Admin endpoints.
		ResetAvailabilityHandler: adminHandler.ResetAvailabilityHandler,
		EnqueueSweepHandler:      adminHandler.EnqueueSweepHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for the nightly availability sweep.
	cron.InitSweepWorker(coordinator)

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
