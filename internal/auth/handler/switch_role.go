package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/logger"
	"campus-portal/internal/middleware"
	"campus-portal/internal/portal"
)

type switchRoleRequest struct {
	UserID      string `json:"user_id"` // empty: switch yourself
	Role        string `json:"role" binding:"required"`
	DisplayName string `json:"display_name"`
}

// SwitchRole is the account-switch affordance: overwrite role and
// display name on an existing profile. Targeting another user is
// an admin action, enforced by the resolver.
func (h *Handler) SwitchRole(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req switchRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.resolver.SwitchRole(
		c.Request.Context(),
		user,
		req.UserID,
		portal.Role(req.Role),
		req.DisplayName,
	)
	if err != nil {
		switch {
		case errors.Is(err, portal.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		case errors.Is(err, portal.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, portal.ErrInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("role switch failed", map[string]any{
				"user_id": user.ID,
				"error":   err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": updated})
}

func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
