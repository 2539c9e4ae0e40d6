package staff

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"safarihub/config"
	"safarihub/models"
	"safarihub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrNotFound           = errors.New("staff member not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenTTL = 24 * time.Hour

// Register creates a guide or driver account.
func (s *DefaultStaffService) Register(ctx context.Context, req RegistrationRequest) (*models.StaffMember, error) {
	if req.Role != models.RoleTourGuide && req.Role != models.RoleSafariDriver {
		return nil, fmt.Errorf("unknown staff role %q", req.Role)
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, errors.New("name, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &models.StaffMember{
		ID:                uuid.New().String(),
		Role:              req.Role,
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      string(hash),
		Availability:      models.AvailabilityAvailable,
		CurrentTourStatus: models.GuideTourAvailable,
	}

	if err := s.Repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return member, nil
}

// Authenticate verifies credentials and returns the staff member plus a JWT.
func (s *DefaultStaffService) Authenticate(ctx context.Context, email, password string) (*models.StaffMember, string, error) {
	member, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch staff member: %w", err)
	}
	if member == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(member.ID, string(member.Role), tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return member, token, nil
}

// AuthenticateOfficer verifies the configured park-officer credentials. There
// is no officer staff record; the bootstrap credentials come from config and
// officer login stays disabled until both are set.
func (s *DefaultStaffService) AuthenticateOfficer(ctx context.Context, email, password string) (string, error) {
	wantEmail := config.AppConfig.OfficerEmail
	wantPassword := config.AppConfig.OfficerPassword
	if wantEmail == "" || wantPassword == "" {
		return "", ErrInvalidCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(wantEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPassword)) == 1
	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(wantEmail, models.RoleParkOfficer, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// GetByID fetches one staff member.
func (s *DefaultStaffService) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	member, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff member: %w", err)
	}
	if member == nil {
		return nil, ErrNotFound
	}
	return member, nil
}

// SetDailyAvailability records a per-date override, e.g. a day off.
func (s *DefaultStaffService) SetDailyAvailability(ctx context.Context, id, date string, day models.DayAvailability) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if err := s.Repo.SetDailyAvailability(id, date, day); err != nil {
		return err
	}
	s.invalidateAvailabilityCache(ctx, date)
	return nil
}

// UpdateFCMToken stores the push token for a staff device.
func (s *DefaultStaffService) UpdateFCMToken(ctx context.Context, id, token string) error {
	return s.Repo.UpdateSetDocument(id, bson.M{"fcm_token": token})
}
