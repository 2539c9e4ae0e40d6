package tour

import (
	"context"

	"safarihub/models"
	"safarihub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Accept records the assigned guide's acceptance of a tour.
func (c *DefaultCoordinator) Accept(ctx context.Context, tourID string) (*models.Tour, error) {
	t, err := c.getTour(tourID)
	if err != nil {
		return nil, err
	}

	if err := c.Tours.UpdateSetDocument(t.ID, bson.M{"status": models.TourStatusAccepted}); err != nil {
		return nil, NewInternalError(err.Error())
	}

	if t.AssignedTourGuide != "" {
		set := bson.M{"current_tour_status": models.GuideTourAccepted}
		if err := c.Staff.UpdateSetDocument(t.AssignedTourGuide, set); err != nil {
			return nil, NewInternalError(err.Error())
		}
	}

	return c.getTour(t.ID)
}

// Start marks an accepted tour as underway.
func (c *DefaultCoordinator) Start(ctx context.Context, tourID string) (*models.Tour, error) {
	t, err := c.getTour(tourID)
	if err != nil {
		return nil, err
	}

	if err := c.Tours.UpdateSetDocument(t.ID, bson.M{"status": models.TourStatusStarted}); err != nil {
		return nil, NewInternalError(err.Error())
	}
	return c.getTour(t.ID)
}

// Reject records a rejection with a reason. The assigned guide is released
// immediately; no reassignment is triggered here.
func (c *DefaultCoordinator) Reject(ctx context.Context, tourID, reason string) (*models.Tour, error) {
	if reason == "" {
		return nil, NewValidationError("rejection reason is required")
	}

	t, err := c.getTour(tourID)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"status":           models.TourStatusRejected,
		"rejection_reason": reason,
	}
	if err := c.Tours.UpdateSetDocument(t.ID, set); err != nil {
		return nil, NewInternalError(err.Error())
	}

	if t.AssignedTourGuide != "" {
		if err := c.releaseStaff(t.AssignedTourGuide, ""); err != nil {
			return nil, err
		}
	}

	return c.getTour(t.ID)
}

// Complete ends a tour and releases its staff inline, recording a per-date
// availability override for the tour date.
func (c *DefaultCoordinator) Complete(ctx context.Context, tourID string) (*models.Tour, error) {
	t, err := c.getTour(tourID)
	if err != nil {
		return nil, err
	}

	if err := c.Tours.UpdateSetDocument(t.ID, bson.M{"status": models.TourStatusEnded}); err != nil {
		return nil, NewInternalError(err.Error())
	}

	if t.AssignedTourGuide != "" {
		if err := c.releaseStaff(t.AssignedTourGuide, t.PreferredDate); err != nil {
			return nil, err
		}
	}
	if t.AssignedDriver != "" {
		if err := c.releaseStaff(t.AssignedDriver, t.PreferredDate); err != nil {
			return nil, err
		}
	}

	return c.getTour(t.ID)
}

// releaseStaff is the single release path for every terminal outcome: the
// busy flag and mirrored tour status reset together, so an assignment can
// never leave a staff member dangling Busy.
func (c *DefaultCoordinator) releaseStaff(staffID, date string) error {
	if err := c.Staff.Release(staffID); err != nil {
		return NewInternalError(err.Error())
	}
	if date != "" {
		day := models.DayAvailability{IsAvailable: true}
		if err := c.Staff.SetDailyAvailability(staffID, date, day); err != nil {
			// The release itself succeeded; a lost override only affects
			// staff-search results for that date.
			utils.GetLogger().Warn("failed to record availability override",
				zap.String("staffId", staffID),
				zap.String("date", date),
				zap.Error(err))
		}
	}
	return nil
}
