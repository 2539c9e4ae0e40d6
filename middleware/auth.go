package middleware

import (
	"net/http"
	"strings"

	staffRepo "safarihub/database/repository/staff"
	"safarihub/models"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
)

// OfficerRole is the dispatcher role claim carried by park-officer tokens,
// minted by the officer bootstrap login.
const OfficerRole = models.RoleParkOfficer

// JWTAuthStaffMiddleware validates the bearer token and puts the caller's
// staff ID and role on the context. When repo is non-nil, staff tokens are
// additionally checked against an existing staff record.
func JWTAuthStaffMiddleware(repo staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, role, err := utils.ExtractIDAndRoleFromToken(tokenString)
		if err != nil || staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if repo != nil && role != OfficerRole {
			member, err := repo.GetByID(staffID)
			if err != nil || member == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
		}

		c.Set("staffID", staffID)
		c.Set("staffRole", role)
		c.Next()
	}
}

// RequireRoles rejects callers whose role claim is not in the allowed set.
// Must run after JWTAuthStaffMiddleware.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("staffRole")
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
