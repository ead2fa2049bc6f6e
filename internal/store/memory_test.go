package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-portal/internal/portal"
)

func TestMemoryIdentityMapping(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	u := &portal.User{Role: portal.RoleStudent, DisplayName: "S"}
	require.NoError(t, mem.CreateUser(ctx, u))
	require.NotEmpty(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	t.Run("Should resolve a linked identity to its user", func(t *testing.T) {
		require.NoError(t, mem.LinkIdentity(ctx, u.ID, "password", "s@x.edu"))

		got, err := mem.UserByIdentity(ctx, "password", "s@x.edu")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("Should miss on unknown identity", func(t *testing.T) {
		_, err := mem.UserByIdentity(ctx, "password", "nobody@x.edu")
		assert.ErrorIs(t, err, portal.ErrNotFound)
	})
}

func TestMemoryEnrollmentUniqueness(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	e := &portal.Enrollment{StudentID: "s1", StudentName: "S", CourseID: "c1"}
	require.NoError(t, mem.CreateEnrollment(ctx, e))

	dup := &portal.Enrollment{StudentID: "s1", StudentName: "S", CourseID: "c1"}
	assert.ErrorIs(t, mem.CreateEnrollment(ctx, dup), portal.ErrAlreadyEnrolled)

	other := &portal.Enrollment{StudentID: "s1", StudentName: "S", CourseID: "c2"}
	assert.NoError(t, mem.CreateEnrollment(ctx, other))
}

func TestMemoryAnnouncementOrdering(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	for _, body := range []string{"a", "b", "c"} {
		require.NoError(t, mem.CreateAnnouncement(ctx, &portal.Announcement{
			Body:     body,
			AuthorID: "u1",
		}))
	}

	t.Run("Should list newest first even within one clock tick", func(t *testing.T) {
		got, err := mem.ListAnnouncements(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "c", got[0].Body)
		assert.Equal(t, "b", got[1].Body)
		assert.Equal(t, "a", got[2].Body)
	})
}

func TestMemoryAssignmentOrdering(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	// inserted out of due-date order on purpose
	for _, a := range []portal.Assignment{
		{CourseID: "c1", Title: "late", DueDate: base.Add(48 * time.Hour)},
		{CourseID: "c1", Title: "early", DueDate: base},
		{CourseID: "c2", Title: "elsewhere", DueDate: base.Add(time.Hour)},
		{CourseID: "c1", Title: "middle", DueDate: base.Add(24 * time.Hour)},
	} {
		a := a
		require.NoError(t, mem.CreateAssignment(ctx, &a))
	}

	t.Run("Should list a course's assignments due date ascending", func(t *testing.T) {
		got, err := mem.ListAssignmentsByCourse(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "early", got[0].Title)
		assert.Equal(t, "middle", got[1].Title)
		assert.Equal(t, "late", got[2].Title)
	})

	t.Run("Should return nothing for a course without assignments", func(t *testing.T) {
		got, err := mem.ListAssignmentsByCourse(ctx, "c3")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMemoryUpdateUser(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	u := &portal.User{Role: portal.RoleStudent, DisplayName: "S"}
	require.NoError(t, mem.CreateUser(ctx, u))

	t.Run("Should persist role and name changes", func(t *testing.T) {
		require.NoError(t, mem.UpdateUser(ctx, u.ID, portal.RoleFaculty, "Prof"))

		got, err := mem.UserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, portal.RoleFaculty, got.Role)
		assert.Equal(t, "Prof", got.DisplayName)
	})

	t.Run("Should report missing users", func(t *testing.T) {
		err := mem.UpdateUser(ctx, "missing", portal.RoleAdmin, "X")
		assert.ErrorIs(t, err, portal.ErrNotFound)
	})
}
