package tourRepo

import (
	"context"

	"safarihub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TourRepository defines methods for tour data access.
type TourRepository interface {
	// Create inserts a new tour record. Fails when the booking already has one.
	Create(tour *models.Tour) error
	// GetByID retrieves a tour by its unique ID. Returns (nil, nil) when missing.
	GetByID(id string) (*models.Tour, error)
	// GetByBookingID retrieves the tour tied to a booking. Returns (nil, nil) when missing.
	GetByBookingID(bookingID string) (*models.Tour, error)
	// Update modifies an existing tour record.
	Update(tour *models.Tour) error
	// UpdateSetDocument applies a $set update to a tour by ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// GetAll retrieves all tours.
	GetAll() ([]models.Tour, error)
	// GetByStatus retrieves all tours with the given status.
	GetByStatus(status models.TourStatus) ([]models.Tour, error)
	// GetByGuide retrieves all tours assigned to a guide.
	GetByGuide(guideID string) ([]models.Tour, error)
	// GetByDriver retrieves all tours assigned to a driver.
	GetByDriver(driverID string) ([]models.Tour, error)

	// AssignTransactionally applies an assignment as one multi-document
	// transaction: the tour update, the conditional busy-marking of each newly
	// assigned staff member, and the notification inserts either all commit or
	// none do.
	AssignTransactionally(ctx context.Context, a AssignmentUpdate) error
}

// AssignmentUpdate describes the full mutation set of one assign operation.
type AssignmentUpdate struct {
	TourID string
	// TourSet is the $set document applied to the tour.
	TourSet bson.M
	// NewGuideID and NewDriverID name staff members that must be flipped from
	// Available to Busy; empty means no change on that side.
	NewGuideID  string
	NewDriverID string
	// ReleaseGuideID and ReleaseDriverID name previously assigned staff being
	// replaced. They must go back to Available in the same transaction, since
	// the tour no longer references them afterwards.
	ReleaseGuideID  string
	ReleaseDriverID string
	// Notifications are inserted after the staff updates succeed.
	Notifications []models.Notification
}
