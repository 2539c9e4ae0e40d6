package handlers

import (
	"net/http"

	"safarihub/services/tour"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
)

// RejectionHandler exposes the guide-facing rejection form endpoints.
type RejectionHandler struct {
	Coordinator tour.Coordinator
}

func NewRejectionHandler(coordinator tour.Coordinator) *RejectionHandler {
	return &RejectionHandler{Coordinator: coordinator}
}

// SubmitRejectionHandler logs a rejection and returns the tour to the pool.
func (h *RejectionHandler) SubmitRejectionHandler(c *gin.Context) {
	var input struct {
		TourID      string `json:"tourId"`
		TourGuideID string `json:"tourGuideId"`
		Reason      string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rejection, err := h.Coordinator.SubmitRejection(c.Request.Context(), input.TourID, input.TourGuideID, input.Reason)
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rejection)
}

// RejectionsByTourHandler lists the audit trail for one tour.
func (h *RejectionHandler) RejectionsByTourHandler(c *gin.Context) {
	rejections, err := h.Coordinator.ListRejectionsByTour(c.Request.Context(), c.Param("tourId"))
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, rejections)
}

// RejectionsByGuideHandler lists the rejections one guide has filed.
func (h *RejectionHandler) RejectionsByGuideHandler(c *gin.Context) {
	rejections, err := h.Coordinator.ListRejectionsByGuide(c.Request.Context(), c.Param("guideId"))
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, rejections)
}
