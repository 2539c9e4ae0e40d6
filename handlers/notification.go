package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/services/notification"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves stored staff notifications.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(service notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// ListNotificationsHandler lists notifications for one staff member.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	role := models.StaffRole(c.Param("role"))
	if role != models.RoleTourGuide && role != models.RoleSafariDriver {
		utils.JSONError(c, http.StatusBadRequest, "unknown staff role", "")
		return
	}

	ref := models.StaffRef{Role: role, ID: c.Param("id")}
	notifications, err := h.Service.ListForStaff(ref)
	if err != nil {
		getLogger(c).Error("failed to list notifications", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", "")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationReadHandler flags a notification as read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	if err := h.Service.MarkRead(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
