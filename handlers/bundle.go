// File: safarihub/handlers/bundle.go
package handlers

import (
	staffRepoPkg "safarihub/database/repository/staff"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	StaffRepo staffRepoPkg.StaffRepository

	// Tour lifecycle endpoints.
	CreateTourHandler   gin.HandlerFunc
	AssignTourHandler   gin.HandlerFunc
	AcceptTourHandler   gin.HandlerFunc
	StartTourHandler    gin.HandlerFunc
	RejectTourHandler   gin.HandlerFunc
	CompleteTourHandler gin.HandlerFunc
	ReassignTourHandler gin.HandlerFunc

	// Tour query endpoints.
	ListToursHandler      gin.HandlerFunc
	AssignmentPoolHandler gin.HandlerFunc
	ToursByGuideHandler   gin.HandlerFunc
	ToursByDriverHandler  gin.HandlerFunc

	// Rejection endpoints.
	SubmitRejectionHandler   gin.HandlerFunc
	RejectionsByTourHandler  gin.HandlerFunc
	RejectionsByGuideHandler gin.HandlerFunc

	// Staff endpoints.
	RegisterStaffHandler         gin.HandlerFunc
	AuthenticateStaffHandler     gin.HandlerFunc
	AuthenticateOfficerHandler   gin.HandlerFunc
	GetStaffByIDHandler          gin.HandlerFunc
	SetDailyAvailabilityHandler  gin.HandlerFunc
	AvailableStaffHandler        gin.HandlerFunc
	UpdateFCMTokenHandler        gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc

	// Admin endpoints.
	ResetAvailabilityHandler gin.HandlerFunc
	EnqueueSweepHandler      gin.HandlerFunc
}
