// Package api exposes the portal's protected HTTP surface. The
// handlers hold no authorization logic of their own: they pass
// the authenticated user into the access-scoped repository and
// translate its errors to status codes.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/access"
	"campus-portal/internal/logger"
	"campus-portal/internal/middleware"
	"campus-portal/internal/portal"
)

type Handler struct {
	repo *access.Repository
}

func NewHandler(repo *access.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/courses", h.listCourses)
	r.POST("/courses", h.createCourse)
	r.GET("/courses/:id/roster.xlsx", h.exportRoster)
	r.GET("/courses/:id/assignments", h.listAssignments)
	r.POST("/courses/:id/assignments", h.createAssignment)
	r.GET("/enrollments", h.listEnrollments)
	r.POST("/enrollments", h.enroll)
	r.GET("/announcements", h.listAnnouncements)
	r.POST("/announcements", h.createAnnouncement)
	r.GET("/users", h.listUsers)
	r.GET("/dashboard", h.dashboard)
}

// writeError maps repository errors onto the API surface.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portal.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, portal.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, portal.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, gin.H{"error": "already enrolled"})
	case errors.Is(err, portal.ErrProfileLoad):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile unavailable"})
	case errors.Is(err, portal.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		// Unrecognized errors come from infrastructure; their text
		// stays in the log, not in the response body.
		logger.Error("request failed", map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func currentUser(c *gin.Context) (*portal.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return user, ok
}
