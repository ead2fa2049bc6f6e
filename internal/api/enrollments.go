package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listEnrollments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	// Default to the caller's own enrollments; admin may ask for
	// any student's.
	studentID := c.Query("student_id")
	if studentID == "" {
		studentID = user.ID
	}

	enrollments, err := h.repo.ListEnrollments(c.Request.Context(), user, studentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"enrollments": enrollments})
}

type enrollRequest struct {
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id" binding:"required"`
}

func (h *Handler) enroll(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.StudentID == "" {
		req.StudentID = user.ID
	}

	enrollment, err := h.repo.EnrollStudent(c.Request.Context(), user, req.StudentID, req.CourseID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"enrollment": enrollment})
}
