package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/access"
	"campus-portal/internal/logger"
)

func (h *Handler) listAnnouncements(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	announcements, err := h.repo.ListAnnouncements(c.Request.Context(), user, limit)
	if err != nil {
		logger.Error("announcements fetch failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusOK, gin.H{"announcements": []any{}, "notice": "announcements unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"announcements": announcements})
}

type createAnnouncementRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body" binding:"required"`
	CourseID   string `json:"course_id"`
	TargetRole string `json:"target_role"`
}

func (h *Handler) createAnnouncement(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ann, err := h.repo.CreateAnnouncement(c.Request.Context(), user, access.AnnouncementDraft{
		Title:      req.Title,
		Body:       req.Body,
		CourseID:   req.CourseID,
		TargetRole: req.TargetRole,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"announcement": ann})
}
