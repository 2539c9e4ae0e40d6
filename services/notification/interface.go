package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "safarihub/database/repository/notification"
	"safarihub/models"
	"safarihub/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
)

// NotificationService builds, serves and pushes staff notifications. Records
// themselves are persisted by the coordinator's assignment transaction; the
// FCM push is informational and best-effort only.
type NotificationService interface {
	// AssignmentNotification builds the ASSIGNED_TOUR record for one staff member.
	AssignmentNotification(ref models.StaffRef, tourID string) models.Notification
	// Push delivers a notification to the staff member's device via FCM.
	Push(ctx context.Context, staff *models.StaffMember, n models.Notification) error
	// ListForStaff lists stored notifications for one staff member.
	ListForStaff(ref models.StaffRef) ([]models.Notification, error)
	// MarkRead flags a stored notification as read.
	MarkRead(id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// AssignmentNotification builds the ASSIGNED_TOUR record for one staff member.
func (s *DefaultNotificationService) AssignmentNotification(ref models.StaffRef, tourID string) models.Notification {
	role := "safari driver"
	if ref.Role == models.RoleTourGuide {
		role = "tour guide"
	}
	return models.Notification{
		ID:        uuid.New().String(),
		Recipient: ref,
		TourID:    tourID,
		Type:      models.NotificationAssignedTour,
		Title:     "New tour assignment",
		Message:   fmt.Sprintf("You have been assigned to tour %s as %s.", tourID, role),
		Meta:      map[string]any{"tourId": tourID},
		// Stamped here because the assignment transaction inserts the record
		// directly, without going through the notification repository.
		CreatedAt: time.Now(),
	}
}

// Push delivers a notification via FCM. Staff without a registered device
// token are skipped silently.
func (s *DefaultNotificationService) Push(ctx context.Context, staff *models.StaffMember, n models.Notification) error {
	if utils.FCMClient == nil || staff == nil || staff.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: staff.FCMToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: map[string]string{
			"type":   n.Type,
			"tourId": n.TourID,
			"role":   string(n.Recipient.Role),
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message to staff %s: %w", staff.ID, err)
	}
	return nil
}

// ListForStaff lists stored notifications for one staff member.
func (s *DefaultNotificationService) ListForStaff(ref models.StaffRef) ([]models.Notification, error) {
	return s.Repo.GetByRecipient(ref)
}

// MarkRead flags a stored notification as read.
func (s *DefaultNotificationService) MarkRead(id string) error {
	return s.Repo.MarkRead(id)
}
