package rejectionRepo

import "safarihub/models"

// RejectionRepository stores the append-only tour rejection audit trail.
type RejectionRepository interface {
	// Create appends a rejection record. Records are never mutated afterwards.
	Create(rejection *models.TourRejection) error
	// GetByTour lists rejection records for a tour, newest first.
	GetByTour(tourID string) ([]models.TourRejection, error)
	// GetByGuide lists rejection records filed by a guide, newest first.
	GetByGuide(guideID string) ([]models.TourRejection, error)
}
