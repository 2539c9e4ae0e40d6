package tour

import (
	"context"

	"safarihub/models"
)

// GetTour fetches one tour.
func (c *DefaultCoordinator) GetTour(ctx context.Context, tourID string) (*models.Tour, error) {
	return c.getTour(tourID)
}

// GetTourByBooking fetches the tour tied to one booking.
func (c *DefaultCoordinator) GetTourByBooking(ctx context.Context, bookingID string) (*models.Tour, error) {
	t, err := c.Tours.GetByBookingID(bookingID)
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	if t == nil {
		return nil, NewNotFoundError("no tour found for booking " + bookingID)
	}
	return t, nil
}

// ListTours lists all tours.
func (c *DefaultCoordinator) ListTours(ctx context.Context) ([]models.Tour, error) {
	tours, err := c.Tours.GetAll()
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	return tours, nil
}

// ListAssignmentPool lists Pending tours awaiting guide/driver assignment.
func (c *DefaultCoordinator) ListAssignmentPool(ctx context.Context) ([]models.Tour, error) {
	tours, err := c.Tours.GetByStatus(models.TourStatusPending)
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	return tours, nil
}

// ListToursByGuide lists tours assigned to one guide.
func (c *DefaultCoordinator) ListToursByGuide(ctx context.Context, guideID string) ([]models.Tour, error) {
	tours, err := c.Tours.GetByGuide(guideID)
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	return tours, nil
}

// ListToursByDriver lists tours assigned to one driver.
func (c *DefaultCoordinator) ListToursByDriver(ctx context.Context, driverID string) ([]models.Tour, error) {
	tours, err := c.Tours.GetByDriver(driverID)
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	return tours, nil
}
