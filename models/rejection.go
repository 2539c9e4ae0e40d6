package models

import "time"

// TourRejection is an append-only audit record of a guide rejecting a tour.
// Never mutated after creation.
type TourRejection struct {
	ID          string    `bson:"id" json:"id"`
	TourID      string    `bson:"tour_id" json:"tourId"`
	TourGuideID string    `bson:"tour_guide_id" json:"tourGuideId"`
	Reason      string    `bson:"reason" json:"reason"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
