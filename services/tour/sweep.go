package tour

import (
	"context"

	"safarihub/models"
	"safarihub/utils"

	"go.uber.org/zap"
)

// ResetEndedToursAvailability is the administrative sweep: for every Ended
// tour, staff still flagged Busy are released and a per-date override is
// recorded for the tour date. It compensates for release steps that were
// skipped or lost, so a partial failure here must not stop the rest of the
// batch.
func (c *DefaultCoordinator) ResetEndedToursAvailability(ctx context.Context) (int, error) {
	ended, err := c.Tours.GetByStatus(models.TourStatusEnded)
	if err != nil {
		return 0, NewInternalError(err.Error())
	}

	logger := utils.GetLogger()
	released := 0

	for i := range ended {
		t := &ended[i]
		for _, staffID := range []string{t.AssignedTourGuide, t.AssignedDriver} {
			if staffID == "" {
				continue
			}
			s, err := c.Staff.GetByID(staffID)
			if err != nil {
				logger.Warn("availability sweep: staff lookup failed",
					zap.String("tourId", t.ID), zap.String("staffId", staffID), zap.Error(err))
				continue
			}
			if s == nil || s.Availability != models.AvailabilityBusy {
				continue
			}
			if err := c.releaseStaff(staffID, t.PreferredDate); err != nil {
				logger.Warn("availability sweep: release failed",
					zap.String("tourId", t.ID), zap.String("staffId", staffID), zap.Error(err))
				continue
			}
			released++
		}
	}

	logger.Info("availability sweep finished",
		zap.Int("endedTours", len(ended)), zap.Int("staffReleased", released))
	return released, nil
}
