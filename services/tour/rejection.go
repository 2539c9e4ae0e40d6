package tour

import (
	"context"
	"fmt"

	"safarihub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// SubmitRejection is the guide-facing rejection path. It appends an audit
// record, returns the tour to the assignment pool for the park officer to
// reassign, and releases the guide through the shared release helper.
func (c *DefaultCoordinator) SubmitRejection(ctx context.Context, tourID, guideID, reason string) (*models.TourRejection, error) {
	if reason == "" {
		return nil, NewValidationError("rejection reason is required")
	}
	if guideID == "" {
		return nil, NewValidationError("tourGuideId is required")
	}

	t, err := c.getTour(tourID)
	if err != nil {
		return nil, err
	}

	guide, err := c.lookupStaff(guideID, models.RoleTourGuide)
	if err != nil {
		return nil, err
	}
	if t.AssignedTourGuide != "" && t.AssignedTourGuide != guide.ID {
		return nil, NewValidationError(fmt.Sprintf("guide %s is not assigned to tour %s", guideID, tourID))
	}

	rejection := &models.TourRejection{
		ID:          uuid.New().String(),
		TourID:      t.ID,
		TourGuideID: guide.ID,
		Reason:      reason,
	}
	if err := c.Rejections.Create(rejection); err != nil {
		return nil, NewInternalError(err.Error())
	}

	set := bson.M{
		"status":              models.TourStatusPending,
		"assigned_tour_guide": "",
		"rejection_reason":    reason,
	}
	if err := c.Tours.UpdateSetDocument(t.ID, set); err != nil {
		return nil, NewInternalError(err.Error())
	}

	if err := c.releaseStaff(guide.ID, ""); err != nil {
		return nil, err
	}

	return rejection, nil
}

// ListRejectionsByTour lists the audit trail for one tour.
func (c *DefaultCoordinator) ListRejectionsByTour(ctx context.Context, tourID string) ([]models.TourRejection, error) {
	rejections, err := c.Rejections.GetByTour(tourID)
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	return rejections, nil
}

// ListRejectionsByGuide lists the rejections one guide has filed.
func (c *DefaultCoordinator) ListRejectionsByGuide(ctx context.Context, guideID string) ([]models.TourRejection, error) {
	rejections, err := c.Rejections.GetByGuide(guideID)
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	return rejections, nil
}
