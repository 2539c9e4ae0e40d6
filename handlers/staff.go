package handlers

import (
	"errors"
	"net/http"

	"safarihub/models"
	"safarihub/services/staff"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler exposes staff account and availability endpoints.
type StaffHandler struct {
	Service staff.StaffService
}

func NewStaffHandler(service staff.StaffService) *StaffHandler {
	return &StaffHandler{Service: service}
}

// RegisterStaffHandler creates a guide or driver account.
func (h *StaffHandler) RegisterStaffHandler(c *gin.Context) {
	var req staff.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	member, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, staff.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// AuthenticateStaffHandler verifies credentials and issues a JWT.
func (h *StaffHandler) AuthenticateStaffHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	member, token, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, staff.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		getLogger(c).Error("staff authentication failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": member, "token": token})
}

// AuthenticateOfficerHandler verifies the configured park-officer credentials
// and issues a JWT with the officer role claim.
func (h *StaffHandler) AuthenticateOfficerHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := h.Service.AuthenticateOfficer(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, staff.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		getLogger(c).Error("officer authentication failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetStaffByIDHandler fetches one staff member.
func (h *StaffHandler) GetStaffByIDHandler(c *gin.Context) {
	member, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		getLogger(c).Error("failed to fetch staff member", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch staff member", "")
		return
	}
	c.JSON(http.StatusOK, member)
}

// SetDailyAvailabilityHandler records a per-date availability override.
func (h *StaffHandler) SetDailyAvailabilityHandler(c *gin.Context) {
	var input struct {
		Date        string `json:"date"`
		IsAvailable bool   `json:"isAvailable"`
		Reason      string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	day := models.DayAvailability{IsAvailable: input.IsAvailable, Reason: input.Reason}
	if err := h.Service.SetDailyAvailability(c.Request.Context(), c.Param("id"), input.Date, day); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// AvailableStaffHandler searches staff of a role free on a date.
func (h *StaffHandler) AvailableStaffHandler(c *gin.Context) {
	role := models.StaffRole(c.Query("role"))
	date := c.Query("date")
	if (role != models.RoleTourGuide && role != models.RoleSafariDriver) || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "role and date query parameters are required", "")
		return
	}

	members, err := h.Service.FindAvailable(c.Request.Context(), role, date)
	if err != nil {
		getLogger(c).Error("availability search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "availability search failed", "")
		return
	}
	c.JSON(http.StatusOK, members)
}

// UpdateFCMTokenHandler stores the push token for a staff device.
func (h *StaffHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateFCMToken(c.Request.Context(), c.Param("id"), input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
