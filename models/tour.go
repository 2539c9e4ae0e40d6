package models

import "time"

// TourStatus labels where a tour sits in its lifecycle.
type TourStatus string

const (
	TourStatusPending   TourStatus = "Pending"   // awaiting assignment (assignment pool)
	TourStatusConfirmed TourStatus = "Confirmed" // guide/driver assigned by the park officer
	TourStatusAccepted  TourStatus = "Accepted"  // assigned guide accepted the tour
	TourStatusStarted   TourStatus = "Started"   // tour is underway
	TourStatusEnded     TourStatus = "Ended"     // tour finished; staff must be released
	TourStatusRejected  TourStatus = "Rejected"  // rejected by the guide, reason recorded
)

// Tour represents one scheduled guided excursion tied to exactly one booking.
type Tour struct {
	ID                string     `bson:"id" json:"id"`
	BookingID         string     `bson:"booking_id" json:"bookingId"`                             // unique: at most one tour per booking
	PreferredDate     string     `bson:"preferred_date" json:"preferredDate"`                     // "YYYY-MM-DD"
	AssignedTourGuide string     `bson:"assigned_tour_guide,omitempty" json:"assignedTourGuide"`  // staff ID, empty when unassigned
	AssignedDriver    string     `bson:"assigned_driver,omitempty" json:"assignedDriver"`         // staff ID, empty when unassigned
	Status            TourStatus `bson:"status" json:"status"`
	RejectionReason   string     `bson:"rejection_reason,omitempty" json:"rejectionReason,omitempty"`
	CreatedAt         time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updated_at" json:"updatedAt"`
}
