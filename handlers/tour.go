package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/services/tour"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TourHandler exposes the tour lifecycle coordinator over HTTP.
type TourHandler struct {
	Coordinator tour.Coordinator
}

func NewTourHandler(coordinator tour.Coordinator) *TourHandler {
	return &TourHandler{Coordinator: coordinator}
}

// statusForCode maps coordinator error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case tour.CodeNotFound:
		return http.StatusNotFound
	case tour.CodeValidation:
		return http.StatusBadRequest
	case tour.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondCoordinatorError(c *gin.Context, err error) {
	status := statusForCode(tour.CodeOf(err))
	if status == http.StatusInternalServerError {
		getLogger(c).Error("coordinator operation failed", zap.Error(err))
	}
	utils.JSONError(c, status, err.Error(), "")
}

// CreateTourHandler creates the tour for a confirmed booking.
func (h *TourHandler) CreateTourHandler(c *gin.Context) {
	var input struct {
		BookingID     string `json:"bookingId"`
		PreferredDate string `json:"preferredDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Coordinator.CreateTour(c.Request.Context(), input.BookingID, input.PreferredDate)
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AssignTourHandler assigns a guide and/or driver to the tour of a booking.
func (h *TourHandler) AssignTourHandler(c *gin.Context) {
	var input struct {
		BookingID         string `json:"bookingId"`
		AssignedTourGuide string `json:"assignedTourGuide"`
		AssignedDriver    string `json:"assignedDriver"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	tourDoc, err := h.Coordinator.GetTourByBooking(c.Request.Context(), input.BookingID)
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}

	updated, err := h.Coordinator.Assign(c.Request.Context(), tourDoc.ID, input.AssignedTourGuide, input.AssignedDriver)
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AcceptTourHandler records the guide's acceptance.
func (h *TourHandler) AcceptTourHandler(c *gin.Context) {
	updated, err := h.Coordinator.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// StartTourHandler marks the tour as underway.
func (h *TourHandler) StartTourHandler(c *gin.Context) {
	updated, err := h.Coordinator.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RejectTourHandler records a rejection with a reason.
func (h *TourHandler) RejectTourHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Coordinator.Reject(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CompleteTourHandler ends a tour and releases its staff.
func (h *TourHandler) CompleteTourHandler(c *gin.Context) {
	updated, err := h.Coordinator.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ReassignTourHandler assigns a new guide after a rejection.
func (h *TourHandler) ReassignTourHandler(c *gin.Context) {
	var input struct {
		TourID     string `json:"tourId"`
		NewGuideID string `json:"newGuideId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Coordinator.ReassignOnRejection(c.Request.Context(), input.TourID, input.NewGuideID)
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListToursHandler lists tours filtered by the caller's role: guides and
// drivers only see their own assignments.
func (h *TourHandler) ListToursHandler(c *gin.Context) {
	ctx := c.Request.Context()
	staffID := c.GetString("staffID")

	var (
		tours []models.Tour
		err   error
	)
	switch c.GetString("staffRole") {
	case string(models.RoleTourGuide):
		tours, err = h.Coordinator.ListToursByGuide(ctx, staffID)
	case string(models.RoleSafariDriver):
		tours, err = h.Coordinator.ListToursByDriver(ctx, staffID)
	default:
		tours, err = h.Coordinator.ListTours(ctx)
	}
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

// AssignmentPoolHandler lists Pending tours awaiting assignment.
func (h *TourHandler) AssignmentPoolHandler(c *gin.Context) {
	tours, err := h.Coordinator.ListAssignmentPool(c.Request.Context())
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

// ToursByGuideHandler lists tours assigned to a guide.
func (h *TourHandler) ToursByGuideHandler(c *gin.Context) {
	tours, err := h.Coordinator.ListToursByGuide(c.Request.Context(), c.Param("guideId"))
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

// ToursByDriverHandler lists tours assigned to a driver.
func (h *TourHandler) ToursByDriverHandler(c *gin.Context) {
	tours, err := h.Coordinator.ListToursByDriver(c.Request.Context(), c.Param("driverId"))
	if err != nil {
		respondCoordinatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}
