package access

import (
	"context"
	"sync"

	"campus-portal/internal/logger"
	"campus-portal/internal/portal"
)

// dashboardPreviewLimit caps the announcements panel.
const dashboardPreviewLimit = 5

// Dashboard is the composed landing view. Each panel carries its
// own error so one failed fetch never blanks the page.
type Dashboard struct {
	Courses            []portal.Course       `json:"courses"`
	CoursesError       string                `json:"courses_error,omitempty"`
	Announcements      []portal.Announcement `json:"announcements"`
	AnnouncementsError string                `json:"announcements_error,omitempty"`
}

// LoadDashboard fetches both panels concurrently. The fetches
// have no ordering dependency; both always run to completion and
// a failure in one leaves the other's result intact.
func (r *Repository) LoadDashboard(ctx context.Context, user *portal.User) *Dashboard {
	var (
		wg sync.WaitGroup
		d  Dashboard

		coursesErr       error
		announcementsErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		d.Courses, coursesErr = r.ListCoursesVisibleTo(ctx, user)
	}()

	go func() {
		defer wg.Done()
		d.Announcements, announcementsErr = r.ListAnnouncements(ctx, user, dashboardPreviewLimit)
	}()

	wg.Wait()

	if coursesErr != nil {
		logger.Error("dashboard courses fetch failed", map[string]any{
			"user_id": user.ID,
			"error":   coursesErr.Error(),
		})
		d.Courses = nil
		d.CoursesError = "courses unavailable"
	}

	if announcementsErr != nil {
		logger.Error("dashboard announcements fetch failed", map[string]any{
			"user_id": user.ID,
			"error":   announcementsErr.Error(),
		})
		d.Announcements = nil
		d.AnnouncementsError = "announcements unavailable"
	}

	return &d
}
