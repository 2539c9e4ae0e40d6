package staffRepo

import (
	"safarihub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StaffRepository defines methods for staff (guide and driver) data access.
type StaffRepository interface {
	// Create inserts a new staff record.
	Create(staff *models.StaffMember) error
	// GetByID retrieves a staff member by ID. Returns (nil, nil) when missing.
	GetByID(id string) (*models.StaffMember, error)
	// GetByEmail retrieves a staff member by email. Returns (nil, nil) when missing.
	GetByEmail(email string) (*models.StaffMember, error)
	// Update modifies an existing staff record.
	Update(staff *models.StaffMember) error
	// UpdateSetDocument applies a $set update to a staff member by ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a staff record by ID.
	Delete(id string) error

	// Release returns a staff member to Available and, for guides, resets the
	// mirrored tour status. Busy-marking has no standalone counterpart here:
	// it only ever happens inside the assignment transaction.
	Release(id string) error
	// SetDailyAvailability records a per-date availability override.
	SetDailyAvailability(id, date string, day models.DayAvailability) error
	// FindAvailable lists staff of a role that are Available and not overridden
	// unavailable on the given date.
	FindAvailable(role models.StaffRole, date string) ([]models.StaffMember, error)
}
