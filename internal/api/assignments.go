package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/access"
)

func (h *Handler) listAssignments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	assignments, err := h.repo.ListAssignments(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

type createAssignmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	TotalPoints int       `json:"total_points"`
}

func (h *Handler) createAssignment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	assignment, err := h.repo.CreateAssignment(c.Request.Context(), user, access.AssignmentDraft{
		CourseID:    c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		TotalPoints: req.TotalPoints,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"assignment": assignment})
}
