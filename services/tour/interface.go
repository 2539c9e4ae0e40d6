package tour

import (
	"context"

	rejectionRepo "safarihub/database/repository/rejection"
	staffRepo "safarihub/database/repository/staff"
	tourRepo "safarihub/database/repository/tour"
	"safarihub/models"
	"safarihub/services/notification"
)

// Coordinator owns the tour lifecycle and the staff-availability consistency
// rule: a staff member made Busy by an assignment is returned to Available
// exactly once the tour that busied them reaches a terminal outcome.
type Coordinator interface {
	// CreateTour creates the tour for a confirmed booking. At most one tour may
	// exist per booking.
	CreateTour(ctx context.Context, bookingID, preferredDate string) (*models.Tour, error)

	// Assign sets the guide and/or driver on a tour, confirms it, marks the
	// newly assigned staff Busy and emits one notification per new assignee.
	// Omitted (empty) IDs leave the existing assignment untouched.
	Assign(ctx context.Context, tourID, guideID, driverID string) (*models.Tour, error)

	// Accept records the assigned guide's acceptance.
	Accept(ctx context.Context, tourID string) (*models.Tour, error)

	// Start marks the tour as underway.
	Start(ctx context.Context, tourID string) (*models.Tour, error)

	// Reject records a rejection with a reason and releases the assigned guide.
	Reject(ctx context.Context, tourID, reason string) (*models.Tour, error)

	// SubmitRejection is the guide-facing rejection path: it logs an audit
	// record, returns the tour to the assignment pool and releases the guide.
	SubmitRejection(ctx context.Context, tourID, guideID, reason string) (*models.TourRejection, error)

	// Complete ends a tour and releases its guide and driver inline.
	Complete(ctx context.Context, tourID string) (*models.Tour, error)

	// ReassignOnRejection assigns a new guide to a tour sitting in the pool
	// after a rejection.
	ReassignOnRejection(ctx context.Context, tourID, newGuideID string) (*models.Tour, error)

	// ResetEndedToursAvailability sweeps Ended tours and releases any staff
	// still flagged Busy. Returns the number of staff members released.
	ResetEndedToursAvailability(ctx context.Context) (int, error)

	GetTour(ctx context.Context, tourID string) (*models.Tour, error)
	GetTourByBooking(ctx context.Context, bookingID string) (*models.Tour, error)
	ListTours(ctx context.Context) ([]models.Tour, error)
	ListAssignmentPool(ctx context.Context) ([]models.Tour, error)
	ListToursByGuide(ctx context.Context, guideID string) ([]models.Tour, error)
	ListToursByDriver(ctx context.Context, driverID string) ([]models.Tour, error)
	ListRejectionsByTour(ctx context.Context, tourID string) ([]models.TourRejection, error)
	ListRejectionsByGuide(ctx context.Context, guideID string) ([]models.TourRejection, error)
}

// DefaultCoordinator is the production implementation.
type DefaultCoordinator struct {
	Tours      tourRepo.TourRepository
	Staff      staffRepo.StaffRepository
	Rejections rejectionRepo.RejectionRepository
	Notifier   notification.NotificationService
}
