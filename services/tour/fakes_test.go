package tour

import (
	"context"
	"fmt"

	"safarihub/models"

	tourRepo "safarihub/database/repository/tour"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeStaffRepo is an in-memory StaffRepository.
type fakeStaffRepo struct {
	staff map[string]*models.StaffMember
}

func newFakeStaffRepo(members ...*models.StaffMember) *fakeStaffRepo {
	r := &fakeStaffRepo{staff: make(map[string]*models.StaffMember)}
	for _, m := range members {
		r.staff[m.ID] = m
	}
	return r
}

func (r *fakeStaffRepo) Create(m *models.StaffMember) error {
	r.staff[m.ID] = m
	return nil
}

func (r *fakeStaffRepo) GetByID(id string) (*models.StaffMember, error) {
	m, ok := r.staff[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeStaffRepo) GetByEmail(email string) (*models.StaffMember, error) {
	for _, m := range r.staff {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStaffRepo) Update(m *models.StaffMember) error {
	if _, ok := r.staff[m.ID]; !ok {
		return fmt.Errorf("staff member with id %s not found", m.ID)
	}
	r.staff[m.ID] = m
	return nil
}

func (r *fakeStaffRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	m, ok := r.staff[id]
	if !ok {
		return fmt.Errorf("staff member with id %s not found", id)
	}
	if v, ok := updateDoc["current_tour_status"]; ok {
		m.CurrentTourStatus = v.(models.GuideTourStatus)
	}
	if v, ok := updateDoc["fcm_token"]; ok {
		m.FCMToken = v.(string)
	}
	return nil
}

func (r *fakeStaffRepo) Delete(id string) error {
	delete(r.staff, id)
	return nil
}

func (r *fakeStaffRepo) Release(id string) error {
	m, ok := r.staff[id]
	if !ok {
		return fmt.Errorf("staff member with id %s not found", id)
	}
	m.Availability = models.AvailabilityAvailable
	m.CurrentTourStatus = models.GuideTourAvailable
	return nil
}

func (r *fakeStaffRepo) SetDailyAvailability(id, date string, day models.DayAvailability) error {
	m, ok := r.staff[id]
	if !ok {
		return fmt.Errorf("staff member with id %s not found", id)
	}
	if m.DailyAvailability == nil {
		m.DailyAvailability = make(map[string]models.DayAvailability)
	}
	m.DailyAvailability[date] = day
	return nil
}

func (r *fakeStaffRepo) FindAvailable(role models.StaffRole, date string) ([]models.StaffMember, error) {
	var out []models.StaffMember
	for _, m := range r.staff {
		if m.Role != role || m.Availability != models.AvailabilityAvailable {
			continue
		}
		if day, ok := m.DailyAvailability[date]; ok && !day.IsAvailable {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

// fakeTourRepo is an in-memory TourRepository. It shares the staff store so
// AssignTransactionally can mimic the all-or-nothing transaction.
type fakeTourRepo struct {
	tours         map[string]*models.Tour
	staff         *fakeStaffRepo
	notifications []models.Notification
}

func newFakeTourRepo(staff *fakeStaffRepo, tours ...*models.Tour) *fakeTourRepo {
	r := &fakeTourRepo{tours: make(map[string]*models.Tour), staff: staff}
	for _, t := range tours {
		r.tours[t.ID] = t
	}
	return r
}

func (r *fakeTourRepo) Create(t *models.Tour) error {
	for _, existing := range r.tours {
		if existing.BookingID == t.BookingID {
			return tourRepo.ErrDuplicateBooking
		}
	}
	cp := *t
	r.tours[t.ID] = &cp
	return nil
}

func (r *fakeTourRepo) GetByID(id string) (*models.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTourRepo) GetByBookingID(bookingID string) (*models.Tour, error) {
	for _, t := range r.tours {
		if t.BookingID == bookingID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTourRepo) Update(t *models.Tour) error {
	if _, ok := r.tours[t.ID]; !ok {
		return fmt.Errorf("tour with id %s not found", t.ID)
	}
	cp := *t
	r.tours[t.ID] = &cp
	return nil
}

func (r *fakeTourRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	t, ok := r.tours[id]
	if !ok {
		return fmt.Errorf("tour with id %s not found", id)
	}
	applyTourSet(t, updateDoc)
	return nil
}

func applyTourSet(t *models.Tour, set bson.M) {
	if v, ok := set["status"]; ok {
		t.Status = v.(models.TourStatus)
	}
	if v, ok := set["assigned_tour_guide"]; ok {
		t.AssignedTourGuide = v.(string)
	}
	if v, ok := set["assigned_driver"]; ok {
		t.AssignedDriver = v.(string)
	}
	if v, ok := set["rejection_reason"]; ok {
		t.RejectionReason = v.(string)
	}
}

func (r *fakeTourRepo) GetAll() ([]models.Tour, error) {
	var out []models.Tour
	for _, t := range r.tours {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTourRepo) GetByStatus(status models.TourStatus) ([]models.Tour, error) {
	var out []models.Tour
	for _, t := range r.tours {
		if t.Status == status {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTourRepo) GetByGuide(guideID string) ([]models.Tour, error) {
	var out []models.Tour
	for _, t := range r.tours {
		if t.AssignedTourGuide == guideID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTourRepo) GetByDriver(driverID string) ([]models.Tour, error) {
	var out []models.Tour
	for _, t := range r.tours {
		if t.AssignedDriver == driverID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTourRepo) AssignTransactionally(ctx context.Context, a tourRepo.AssignmentUpdate) error {
	t, ok := r.tours[a.TourID]
	if !ok {
		return fmt.Errorf("tour with id %s not found", a.TourID)
	}

	// Validate the conditional staff updates before mutating anything, so a
	// failure leaves no partial state, just like the real transaction.
	for _, check := range []struct {
		id   string
		role models.StaffRole
	}{{a.NewGuideID, models.RoleTourGuide}, {a.NewDriverID, models.RoleSafariDriver}} {
		if check.id == "" {
			continue
		}
		m, ok := r.staff.staff[check.id]
		if !ok || m.Availability != models.AvailabilityAvailable {
			return fmt.Errorf("staff %s: %w", check.id, tourRepo.ErrStaffUnavailable)
		}
	}

	applyTourSet(t, a.TourSet)
	for _, id := range []string{a.ReleaseGuideID, a.ReleaseDriverID} {
		if id == "" {
			continue
		}
		if m, ok := r.staff.staff[id]; ok {
			m.Availability = models.AvailabilityAvailable
			m.CurrentTourStatus = models.GuideTourAvailable
		}
	}
	if a.NewGuideID != "" {
		m := r.staff.staff[a.NewGuideID]
		m.Availability = models.AvailabilityBusy
		m.CurrentTourStatus = models.GuideTourProcessing
	}
	if a.NewDriverID != "" {
		r.staff.staff[a.NewDriverID].Availability = models.AvailabilityBusy
	}
	r.notifications = append(r.notifications, a.Notifications...)
	return nil
}

// fakeRejectionRepo is an in-memory RejectionRepository.
type fakeRejectionRepo struct {
	rejections []models.TourRejection
}

func (r *fakeRejectionRepo) Create(rejection *models.TourRejection) error {
	r.rejections = append(r.rejections, *rejection)
	return nil
}

func (r *fakeRejectionRepo) GetByTour(tourID string) ([]models.TourRejection, error) {
	var out []models.TourRejection
	for _, rec := range r.rejections {
		if rec.TourID == tourID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRejectionRepo) GetByGuide(guideID string) ([]models.TourRejection, error) {
	var out []models.TourRejection
	for _, rec := range r.rejections {
		if rec.TourGuideID == guideID {
			out = append(out, rec)
		}
	}
	return out, nil
}
