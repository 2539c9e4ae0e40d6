package staff

import (
	"context"

	staffRepo "safarihub/database/repository/staff"
	"safarihub/models"

	"github.com/go-redis/redis/v8"
)

// StaffService manages staff accounts and availability lookups. Assignment
// driven availability changes belong to the tour coordinator, not here.
type StaffService interface {
	// Register creates a guide or driver account.
	Register(ctx context.Context, req RegistrationRequest) (*models.StaffMember, error)
	// Authenticate verifies credentials and returns the staff member plus a JWT.
	Authenticate(ctx context.Context, email, password string) (*models.StaffMember, string, error)
	// AuthenticateOfficer verifies the configured park-officer credentials and
	// returns a JWT carrying the officer role claim.
	AuthenticateOfficer(ctx context.Context, email, password string) (string, error)
	// GetByID fetches one staff member.
	GetByID(ctx context.Context, id string) (*models.StaffMember, error)
	// SetDailyAvailability records a per-date override, e.g. a day off.
	SetDailyAvailability(ctx context.Context, id, date string, day models.DayAvailability) error
	// FindAvailable searches staff of a role free on a date. Results are cached
	// briefly in Redis.
	FindAvailable(ctx context.Context, role models.StaffRole, date string) ([]models.StaffMember, error)
	// UpdateFCMToken stores the push token for a staff device.
	UpdateFCMToken(ctx context.Context, id, token string) error
}

// RegistrationRequest carries the fields needed to create a staff account.
type RegistrationRequest struct {
	Role     models.StaffRole `json:"role"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Password string           `json:"password"`
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo  staffRepo.StaffRepository
	Cache *redis.Client
}
