package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-portal/internal/portal"
	"campus-portal/internal/store"
)

// brokenAnnouncements wraps a Store and fails its announcement
// reads, simulating one panel's backing query going down.
type brokenAnnouncements struct {
	store.Store
}

func (brokenAnnouncements) ListAnnouncements(context.Context) ([]portal.Announcement, error) {
	return nil, errors.New("query timeout")
}

func TestLoadDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Should compose both panels on the happy path", func(t *testing.T) {
		mem := store.NewMemory()
		repo := NewRepository(mem, nil)

		admin := newTestUser(t, mem, portal.RoleAdmin, "Admin")
		faculty := newTestUser(t, mem, portal.RoleFaculty, "F")
		newTestCourse(t, mem, faculty, "X")

		_, err := repo.CreateAnnouncement(ctx, admin, AnnouncementDraft{Body: "hello"})
		require.NoError(t, err)

		d := repo.LoadDashboard(ctx, admin)
		assert.Len(t, d.Courses, 1)
		assert.Len(t, d.Announcements, 1)
		assert.Empty(t, d.CoursesError)
		assert.Empty(t, d.AnnouncementsError)
	})

	t.Run("Should keep courses when the announcements fetch fails", func(t *testing.T) {
		mem := store.NewMemory()

		admin := newTestUser(t, mem, portal.RoleAdmin, "Admin")
		faculty := newTestUser(t, mem, portal.RoleFaculty, "F")
		newTestCourse(t, mem, faculty, "X")

		repo := NewRepository(brokenAnnouncements{Store: mem}, nil)

		d := repo.LoadDashboard(ctx, admin)
		assert.Len(t, d.Courses, 1)
		assert.Empty(t, d.CoursesError)
		assert.Empty(t, d.Announcements)
		assert.NotEmpty(t, d.AnnouncementsError)
	})

	t.Run("Should cap the announcements preview", func(t *testing.T) {
		mem := store.NewMemory()
		repo := NewRepository(mem, nil)

		admin := newTestUser(t, mem, portal.RoleAdmin, "Admin")
		for i := 0; i < dashboardPreviewLimit+3; i++ {
			_, err := repo.CreateAnnouncement(ctx, admin, AnnouncementDraft{Body: "n"})
			require.NoError(t, err)
		}

		d := repo.LoadDashboard(ctx, admin)
		assert.Len(t, d.Announcements, dashboardPreviewLimit)
	})
}
