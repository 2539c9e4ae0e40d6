package models

import "time"

// Notification types.
const (
	NotificationAssignedTour = "ASSIGNED_TOUR"
)

// Notification is an informational record addressed to a staff member. It is
// never required for correctness of the tour/staff invariants.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Recipient StaffRef       `bson:"recipient" json:"recipient"`
	TourID    string         `bson:"tour_id" json:"tourId"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Message   string         `bson:"message" json:"message"`
	Read      bool           `bson:"read" json:"read"`
	Meta      map[string]any `bson:"meta,omitempty" json:"meta,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}
