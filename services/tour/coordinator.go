package tour

import (
	"context"
	"errors"
	"fmt"

	tourRepo "safarihub/database/repository/tour"
	"safarihub/models"
	"safarihub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateTour creates the tour for a confirmed booking.
func (c *DefaultCoordinator) CreateTour(ctx context.Context, bookingID, preferredDate string) (*models.Tour, error) {
	if bookingID == "" {
		return nil, NewValidationError("bookingId is required")
	}
	if preferredDate == "" {
		return nil, NewValidationError("preferredDate is required")
	}

	t := &models.Tour{
		ID:            uuid.New().String(),
		BookingID:     bookingID,
		PreferredDate: preferredDate,
		Status:        models.TourStatusPending,
	}

	if err := c.Tours.Create(t); err != nil {
		if errors.Is(err, tourRepo.ErrDuplicateBooking) {
			return nil, NewConflictError(fmt.Sprintf("booking %s already has a tour", bookingID))
		}
		return nil, NewInternalError(err.Error())
	}
	return t, nil
}

// Assign sets the guide and/or driver on a tour and confirms it. All
// references are validated before anything is mutated, then the tour update,
// busy-marking and notification inserts commit as one transaction.
func (c *DefaultCoordinator) Assign(ctx context.Context, tourID, guideID, driverID string) (*models.Tour, error) {
	if guideID == "" && driverID == "" {
		return nil, NewValidationError("at least one of guide or driver must be given")
	}

	t, err := c.getTour(tourID)
	if err != nil {
		return nil, err
	}

	guide, err := c.lookupStaff(guideID, models.RoleTourGuide)
	if err != nil {
		return nil, err
	}
	driver, err := c.lookupStaff(driverID, models.RoleSafariDriver)
	if err != nil {
		return nil, err
	}

	update := tourRepo.AssignmentUpdate{
		TourID:  t.ID,
		TourSet: bson.M{"status": models.TourStatusConfirmed},
	}

	var notifs []models.Notification
	if guide != nil {
		update.TourSet["assigned_tour_guide"] = guide.ID
		if guide.ID != t.AssignedTourGuide {
			update.NewGuideID = guide.ID
			// A replaced guide loses the tour reference, so this transaction
			// is the last place that can return them to Available.
			update.ReleaseGuideID = t.AssignedTourGuide
			notifs = append(notifs, c.Notifier.AssignmentNotification(models.GuideRef(guide.ID), t.ID))
		}
	}
	if driver != nil {
		update.TourSet["assigned_driver"] = driver.ID
		if driver.ID != t.AssignedDriver {
			update.NewDriverID = driver.ID
			update.ReleaseDriverID = t.AssignedDriver
			notifs = append(notifs, c.Notifier.AssignmentNotification(models.DriverRef(driver.ID), t.ID))
		}
	}
	update.Notifications = notifs

	if err := c.Tours.AssignTransactionally(ctx, update); err != nil {
		if errors.Is(err, tourRepo.ErrStaffUnavailable) {
			return nil, NewConflictError(err.Error())
		}
		return nil, NewInternalError(err.Error())
	}

	// Pushes fire only after the transaction committed. Delivery failures are
	// logged, never surfaced: notifications are informational.
	logger := utils.GetLogger()
	for i := range notifs {
		target := guide
		if notifs[i].Recipient.Role == models.RoleSafariDriver {
			target = driver
		}
		if pushErr := c.Notifier.Push(ctx, target, notifs[i]); pushErr != nil {
			logger.Warn("assignment push failed",
				zap.String("tourId", t.ID),
				zap.String("staffId", notifs[i].Recipient.ID),
				zap.Error(pushErr))
		}
	}

	return c.getTour(t.ID)
}

// ReassignOnRejection assigns a new guide to a tour returned to the pool by a
// rejection.
func (c *DefaultCoordinator) ReassignOnRejection(ctx context.Context, tourID, newGuideID string) (*models.Tour, error) {
	if newGuideID == "" {
		return nil, NewValidationError("newGuideId is required")
	}

	t, err := c.getTour(tourID)
	if err != nil {
		return nil, err
	}
	if t.Status != models.TourStatusPending {
		return nil, NewValidationError(fmt.Sprintf("tour %s is not awaiting reassignment (status %s)", tourID, t.Status))
	}

	return c.Assign(ctx, tourID, newGuideID, "")
}

// getTour fetches a tour and maps absence to a NotFound coordinator error.
func (c *DefaultCoordinator) getTour(tourID string) (*models.Tour, error) {
	t, err := c.Tours.GetByID(tourID)
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	if t == nil {
		return nil, NewNotFoundError(fmt.Sprintf("tour %s not found", tourID))
	}
	return t, nil
}

// lookupStaff resolves an optional staff reference, enforcing role. An empty
// id resolves to (nil, nil).
func (c *DefaultCoordinator) lookupStaff(id string, role models.StaffRole) (*models.StaffMember, error) {
	if id == "" {
		return nil, nil
	}
	s, err := c.Staff.GetByID(id)
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	if s == nil {
		return nil, NewNotFoundError(fmt.Sprintf("staff member %s not found", id))
	}
	if s.Role != role {
		return nil, NewValidationError(fmt.Sprintf("staff member %s is not a %s", id, role))
	}
	return s, nil
}
