package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/auth/provider/anonymous"
)

// Anonymous signs in without credentials. Every call creates a
// fresh identity, so it doubles as the demo entry point.
func (h *Handler) Anonymous(c *gin.Context) {
	identity := anonymous.NewIdentity()

	user, err := h.resolver.Resolve(c.Request.Context(), identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
		return
	}

	if !h.issueSession(c, user) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "authenticated", "user": user})
}
