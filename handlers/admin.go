package handlers

import (
	"net/http"

	"safarihub/cron"
	"safarihub/services/tour"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the park officer's administrative operations.
type AdminHandler struct {
	Coordinator tour.Coordinator
}

func NewAdminHandler(coordinator tour.Coordinator) *AdminHandler {
	return &AdminHandler{Coordinator: coordinator}
}

// ResetAvailabilityHandler runs the staff-availability sweep synchronously and
// reports how many staff members were released.
func (h *AdminHandler) ResetAvailabilityHandler(c *gin.Context) {
	released, err := h.Coordinator.ResetEndedToursAvailability(c.Request.Context())
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staffReleased": released})
}

// EnqueueSweepHandler schedules the sweep on the background worker instead of
// blocking the request.
func (h *AdminHandler) EnqueueSweepHandler(c *gin.Context) {
	if err := cron.EnqueueAvailabilitySweep(); err != nil {
		getLogger(c).Error("failed to enqueue availability sweep", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to enqueue sweep", "")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "enqueued"})
}
