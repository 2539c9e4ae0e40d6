package tour

import (
	"context"
	"testing"

	"safarihub/models"
	"safarihub/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator(staff *fakeStaffRepo, tours *fakeTourRepo) (*DefaultCoordinator, *fakeRejectionRepo) {
	rejections := &fakeRejectionRepo{}
	c := &DefaultCoordinator{
		Tours:      tours,
		Staff:      staff,
		Rejections: rejections,
		Notifier:   &notification.DefaultNotificationService{},
	}
	return c, rejections
}

func availableGuide(id string) *models.StaffMember {
	return &models.StaffMember{
		ID:                id,
		Role:              models.RoleTourGuide,
		Availability:      models.AvailabilityAvailable,
		CurrentTourStatus: models.GuideTourAvailable,
	}
}

func availableDriver(id string) *models.StaffMember {
	return &models.StaffMember{
		ID:           id,
		Role:         models.RoleSafariDriver,
		Availability: models.AvailabilityAvailable,
	}
}

func pendingTour(id, bookingID string) *models.Tour {
	return &models.Tour{
		ID:            id,
		BookingID:     bookingID,
		PreferredDate: "2026-09-15",
		Status:        models.TourStatusPending,
	}
}

func TestCreateTour(t *testing.T) {
	staff := newFakeStaffRepo()
	tours := newFakeTourRepo(staff)
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	created, err := c.CreateTour(ctx, "booking-1", "2026-09-15")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "booking-1", created.BookingID)
	assert.Equal(t, models.TourStatusPending, created.Status)
}

func TestCreateTourDuplicateBooking(t *testing.T) {
	staff := newFakeStaffRepo()
	tours := newFakeTourRepo(staff)
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.CreateTour(ctx, "booking-1", "2026-09-15")
	require.NoError(t, err)

	_, err = c.CreateTour(ctx, "booking-1", "2026-09-20")
	require.Error(t, err)
	assert.Equal(t, CodeConflict, CodeOf(err))
}

func TestCreateTourValidation(t *testing.T) {
	staff := newFakeStaffRepo()
	tours := newFakeTourRepo(staff)
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.CreateTour(ctx, "", "2026-09-15")
	assert.Equal(t, CodeValidation, CodeOf(err))

	_, err = c.CreateTour(ctx, "booking-1", "")
	assert.Equal(t, CodeValidation, CodeOf(err))
}

func TestAssignMarksStaffBusyAndNotifies(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"), availableDriver("driver-1"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)

	updated, err := c.Assign(context.Background(), "tour-1", "guide-1", "driver-1")
	require.NoError(t, err)
	assert.Equal(t, models.TourStatusConfirmed, updated.Status)
	assert.Equal(t, "guide-1", updated.AssignedTourGuide)
	assert.Equal(t, "driver-1", updated.AssignedDriver)

	guide := staff.staff["guide-1"]
	assert.Equal(t, models.AvailabilityBusy, guide.Availability)
	assert.Equal(t, models.GuideTourProcessing, guide.CurrentTourStatus)
	assert.Equal(t, models.AvailabilityBusy, staff.staff["driver-1"].Availability)

	require.Len(t, tours.notifications, 2)
	byRole := map[models.StaffRole]models.Notification{}
	for _, n := range tours.notifications {
		byRole[n.Recipient.Role] = n
	}
	assert.Equal(t, "guide-1", byRole[models.RoleTourGuide].Recipient.ID)
	assert.Equal(t, "driver-1", byRole[models.RoleSafariDriver].Recipient.ID)
	for _, n := range tours.notifications {
		assert.Equal(t, models.NotificationAssignedTour, n.Type)
		assert.Equal(t, "tour-1", n.TourID)
		assert.False(t, n.CreatedAt.IsZero())
	}
}

func TestAssignUnknownStaffLeavesStateUntouched(t *testing.T) {
	staff := newFakeStaffRepo(availableDriver("driver-1"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)

	_, err := c.Assign(context.Background(), "tour-1", "ghost-guide", "driver-1")
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))

	// Nothing was mutated: the tour is still in the pool and the valid driver
	// was not busied.
	tour := tours.tours["tour-1"]
	assert.Equal(t, models.TourStatusPending, tour.Status)
	assert.Empty(t, tour.AssignedDriver)
	assert.Equal(t, models.AvailabilityAvailable, staff.staff["driver-1"].Availability)
	assert.Empty(t, tours.notifications)
}

func TestAssignWrongRoleIsValidationError(t *testing.T) {
	staff := newFakeStaffRepo(availableDriver("driver-1"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)

	// A driver ID passed in the guide slot must be rejected.
	_, err := c.Assign(context.Background(), "tour-1", "driver-1", "")
	require.Error(t, err)
	assert.Equal(t, CodeValidation, CodeOf(err))
}

func TestAssignBusyStaffConflicts(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"))
	tours := newFakeTourRepo(staff,
		pendingTour("tour-1", "booking-1"),
		pendingTour("tour-2", "booking-2"))
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "")
	require.NoError(t, err)

	_, err = c.Assign(ctx, "tour-2", "guide-1", "")
	require.Error(t, err)
	assert.Equal(t, CodeConflict, CodeOf(err))
	assert.Equal(t, models.TourStatusPending, tours.tours["tour-2"].Status)
}

func TestAssignSameStaffAgainDoesNotRenotify(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"), availableDriver("driver-1"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "")
	require.NoError(t, err)
	require.Len(t, tours.notifications, 1)

	// Adding a driver while keeping the same guide only notifies the driver.
	updated, err := c.Assign(ctx, "tour-1", "guide-1", "driver-1")
	require.NoError(t, err)
	assert.Equal(t, "guide-1", updated.AssignedTourGuide)
	assert.Equal(t, "driver-1", updated.AssignedDriver)
	require.Len(t, tours.notifications, 2)
	assert.Equal(t, models.RoleSafariDriver, tours.notifications[1].Recipient.Role)
}

func TestAssignReplacementReleasesPreviousStaff(t *testing.T) {
	staff := newFakeStaffRepo(
		availableGuide("guide-1"), availableGuide("guide-2"),
		availableDriver("driver-1"), availableDriver("driver-2"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "driver-1")
	require.NoError(t, err)

	updated, err := c.Assign(ctx, "tour-1", "guide-2", "driver-2")
	require.NoError(t, err)
	assert.Equal(t, "guide-2", updated.AssignedTourGuide)
	assert.Equal(t, "driver-2", updated.AssignedDriver)

	// The replaced staff are released in the same transaction: the tour no
	// longer references them, so nothing else could ever free them.
	assert.Equal(t, models.AvailabilityAvailable, staff.staff["guide-1"].Availability)
	assert.Equal(t, models.GuideTourAvailable, staff.staff["guide-1"].CurrentTourStatus)
	assert.Equal(t, models.AvailabilityAvailable, staff.staff["driver-1"].Availability)
	assert.Equal(t, models.AvailabilityBusy, staff.staff["guide-2"].Availability)
	assert.Equal(t, models.AvailabilityBusy, staff.staff["driver-2"].Availability)

	_, err = c.Complete(ctx, "tour-1")
	require.NoError(t, err)
	released, err := c.ResetEndedToursAvailability(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, released)
	for _, id := range []string{"guide-1", "guide-2", "driver-1", "driver-2"} {
		assert.Equal(t, models.AvailabilityAvailable, staff.staff[id].Availability)
	}
}

func TestAssignRequiresAtLeastOneRef(t *testing.T) {
	staff := newFakeStaffRepo()
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)

	_, err := c.Assign(context.Background(), "tour-1", "", "")
	assert.Equal(t, CodeValidation, CodeOf(err))
}

func TestAcceptMirrorsStatusOntoGuide(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "")
	require.NoError(t, err)

	updated, err := c.Accept(ctx, "tour-1")
	require.NoError(t, err)
	assert.Equal(t, models.TourStatusAccepted, updated.Status)
	assert.Equal(t, models.GuideTourAccepted, staff.staff["guide-1"].CurrentTourStatus)
}

func TestStart(t *testing.T) {
	staff := newFakeStaffRepo()
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)

	updated, err := c.Start(context.Background(), "tour-1")
	require.NoError(t, err)
	assert.Equal(t, models.TourStatusStarted, updated.Status)
}

func TestRejectReleasesGuide(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "")
	require.NoError(t, err)

	updated, err := c.Reject(ctx, "tour-1", "vehicle unavailable")
	require.NoError(t, err)
	assert.Equal(t, models.TourStatusRejected, updated.Status)
	assert.Equal(t, "vehicle unavailable", updated.RejectionReason)

	guide := staff.staff["guide-1"]
	assert.Equal(t, models.AvailabilityAvailable, guide.Availability)
	assert.Equal(t, models.GuideTourAvailable, guide.CurrentTourStatus)
}

func TestRejectRequiresReason(t *testing.T) {
	staff := newFakeStaffRepo()
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)

	_, err := c.Reject(context.Background(), "tour-1", "")
	assert.Equal(t, CodeValidation, CodeOf(err))
}

func TestCompleteReleasesBothStaffInline(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"), availableDriver("driver-1"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "driver-1")
	require.NoError(t, err)

	updated, err := c.Complete(ctx, "tour-1")
	require.NoError(t, err)
	assert.Equal(t, models.TourStatusEnded, updated.Status)

	for _, id := range []string{"guide-1", "driver-1"} {
		member := staff.staff[id]
		assert.Equal(t, models.AvailabilityAvailable, member.Availability)
		day, ok := member.DailyAvailability["2026-09-15"]
		require.True(t, ok, "override for %s missing", id)
		assert.True(t, day.IsAvailable)
	}
}

func TestSubmitRejectionReturnsTourToPool(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, rejections := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "")
	require.NoError(t, err)

	rec, err := c.SubmitRejection(ctx, "tour-1", "guide-1", "family emergency")
	require.NoError(t, err)
	assert.Equal(t, "tour-1", rec.TourID)
	assert.Equal(t, "guide-1", rec.TourGuideID)
	assert.Equal(t, "family emergency", rec.Reason)
	require.Len(t, rejections.rejections, 1)

	tour := tours.tours["tour-1"]
	assert.Equal(t, models.TourStatusPending, tour.Status)
	assert.Empty(t, tour.AssignedTourGuide)
	assert.Equal(t, "family emergency", tour.RejectionReason)

	guide := staff.staff["guide-1"]
	assert.Equal(t, models.AvailabilityAvailable, guide.Availability)
	assert.Equal(t, models.GuideTourAvailable, guide.CurrentTourStatus)
}

func TestSubmitRejectionGuideMismatch(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"), availableGuide("guide-2"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, rejections := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "")
	require.NoError(t, err)

	_, err = c.SubmitRejection(ctx, "tour-1", "guide-2", "not my tour")
	require.Error(t, err)
	assert.Equal(t, CodeValidation, CodeOf(err))
	assert.Empty(t, rejections.rejections)
}

func TestListRejectionsByGuide(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "")
	require.NoError(t, err)
	_, err = c.SubmitRejection(ctx, "tour-1", "guide-1", "schedule clash")
	require.NoError(t, err)

	history, err := c.ListRejectionsByGuide(ctx, "guide-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "tour-1", history[0].TourID)
	assert.Equal(t, "schedule clash", history[0].Reason)

	history, err = c.ListRejectionsByGuide(ctx, "guide-2")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestReassignOnRejection(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"), availableGuide("guide-2"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "")
	require.NoError(t, err)
	_, err = c.SubmitRejection(ctx, "tour-1", "guide-1", "schedule clash")
	require.NoError(t, err)

	updated, err := c.ReassignOnRejection(ctx, "tour-1", "guide-2")
	require.NoError(t, err)
	assert.Equal(t, models.TourStatusConfirmed, updated.Status)
	assert.Equal(t, "guide-2", updated.AssignedTourGuide)
	assert.Equal(t, models.AvailabilityBusy, staff.staff["guide-2"].Availability)
}

func TestReassignOnRejectionRequiresPendingTour(t *testing.T) {
	staff := newFakeStaffRepo(availableGuide("guide-1"), availableGuide("guide-2"))
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"))
	c, _ := newTestCoordinator(staff, tours)
	ctx := context.Background()

	_, err := c.Assign(ctx, "tour-1", "guide-1", "")
	require.NoError(t, err)

	_, err = c.ReassignOnRejection(ctx, "tour-1", "guide-2")
	require.Error(t, err)
	assert.Equal(t, CodeValidation, CodeOf(err))
}

func TestGetTourNotFound(t *testing.T) {
	staff := newFakeStaffRepo()
	tours := newFakeTourRepo(staff)
	c, _ := newTestCoordinator(staff, tours)

	_, err := c.GetTour(context.Background(), "missing")
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestListAssignmentPool(t *testing.T) {
	staff := newFakeStaffRepo()
	ended := pendingTour("tour-2", "booking-2")
	ended.Status = models.TourStatusEnded
	tours := newFakeTourRepo(staff, pendingTour("tour-1", "booking-1"), ended)
	c, _ := newTestCoordinator(staff, tours)

	pool, err := c.ListAssignmentPool(context.Background())
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, "tour-1", pool[0].ID)
}
