package routes

import (
	"net/http"
	"time"

	"safarihub/handlers"
	"safarihub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTourRoutes registers the tour lifecycle endpoints. Assignment and
// administrative transitions are reserved for the park officer; accept,
// start and reject belong to the assigned staff.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tour")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))

		api.GET("", hb.ListToursHandler)
		api.GET("/guide/:guideId", hb.ToursByGuideHandler)
		api.GET("/driver/:driverId", hb.ToursByDriverHandler)

		api.PUT("/:id/accept", hb.AcceptTourHandler)
		api.PUT("/:id/start", hb.StartTourHandler)
		api.PUT("/:id/reject", hb.RejectTourHandler)

		officer := api.Group("")
		officer.Use(middleware.RequireRoles(middleware.OfficerRole))
		officer.POST("/create", hb.CreateTourHandler)
		officer.PUT("/assign", hb.AssignTourHandler)
		officer.PUT("/reassign", hb.ReassignTourHandler)
		officer.PUT("/:id/complete", hb.CompleteTourHandler)
		officer.GET("/pool", hb.AssignmentPoolHandler)
	}
}

// RegisterRejectionRoutes registers the guide-facing rejection form endpoints.
func RegisterRejectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tour-rejection")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.POST("/submit", hb.SubmitRejectionHandler)
		api.GET("/tour/:tourId", hb.RejectionsByTourHandler)
		api.GET("/guide/:guideId", hb.RejectionsByGuideHandler)
	}
}

// RegisterStaffRoutes registers staff account and availability endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/register", hb.RegisterStaffHandler)
		api.POST("/login", hb.AuthenticateStaffHandler)
		api.POST("/officer/login", hb.AuthenticateOfficerHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("/id/:id", hb.GetStaffByIDHandler)
		api.GET("/available", hb.AvailableStaffHandler)
		api.PUT("/:id/availability", hb.SetDailyAvailabilityHandler)
		api.PUT("/:id/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterNotificationRoutes registers staff notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notification")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("/:role/:id", hb.ListNotificationsHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for the availability sweep.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.Use(middleware.RequireRoles(middleware.OfficerRole))
		api.POST("/availability/reset", hb.ResetAvailabilityHandler)
		api.POST("/availability/reset/async", hb.EnqueueSweepHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "SafariHub tour coordinator"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterTourRoutes(r, hb)
	RegisterRejectionRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
