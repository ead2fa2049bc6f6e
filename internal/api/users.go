package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listUsers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	users, err := h.repo.ListUsers(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.repo.LoadDashboard(c.Request.Context(), user))
}
