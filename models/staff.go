package models

import "time"

// StaffRole discriminates the two assignable staff kinds.
type StaffRole string

const (
	RoleTourGuide    StaffRole = "tourGuide"
	RoleSafariDriver StaffRole = "safariDriver"
)

// RoleParkOfficer is the dispatcher role claim. Officers are not staff
// records; their credentials come from configuration.
const RoleParkOfficer = "officer"

// Availability is the coarse busy flag maintained by the tour coordinator.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBusy      Availability = "Busy"
)

// GuideTourStatus mirrors the assigned tour's progress on the guide record.
type GuideTourStatus string

const (
	GuideTourAvailable  GuideTourStatus = "Available"
	GuideTourProcessing GuideTourStatus = "Processing"
	GuideTourAccepted   GuideTourStatus = "Accepted"
)

// DayAvailability is a per-date override consulted by staff-search queries.
type DayAvailability struct {
	IsAvailable bool   `bson:"is_available" json:"isAvailable"`
	Reason      string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// StaffMember is a tour guide or safari driver that can be assigned to tours.
type StaffMember struct {
	ID           string       `bson:"id" json:"id"`
	Role         StaffRole    `bson:"role" json:"role"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email" json:"email"`
	PasswordHash string       `bson:"password_hash" json:"-"`
	FCMToken     string       `bson:"fcm_token,omitempty" json:"-"`
	Availability Availability `bson:"availability" json:"availability"`

	// CurrentTourStatus is only meaningful for guides.
	CurrentTourStatus GuideTourStatus `bson:"current_tour_status,omitempty" json:"currentTourStatus,omitempty"`

	// DailyAvailability maps "YYYY-MM-DD" dates to per-date overrides. The
	// coordinator records overrides on release; searches consult them read-only.
	DailyAvailability map[string]DayAvailability `bson:"daily_availability,omitempty" json:"dailyAvailability,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// StaffRef is a tagged reference to a staff member. It replaces a dynamic
// "userType" discriminator with a statically typed pair.
type StaffRef struct {
	Role StaffRole `bson:"role" json:"role"`
	ID   string    `bson:"id" json:"id"`
}

// GuideRef builds a reference to a tour guide.
func GuideRef(id string) StaffRef {
	return StaffRef{Role: RoleTourGuide, ID: id}
}

// DriverRef builds a reference to a safari driver.
func DriverRef(id string) StaffRef {
	return StaffRef{Role: RoleSafariDriver, ID: id}
}
