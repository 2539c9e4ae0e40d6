package notificationRepo

import "safarihub/models"

// NotificationRepository stores informational notifications for staff members.
type NotificationRepository interface {
	// Create inserts a notification record.
	Create(notification *models.Notification) error
	// GetByRecipient lists notifications addressed to one staff member, newest first.
	GetByRecipient(ref models.StaffRef) ([]models.Notification, error)
	// MarkRead flags a notification as read.
	MarkRead(id string) error
}
