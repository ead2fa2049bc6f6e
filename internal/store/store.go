package store

import (
	"context"

	"campus-portal/internal/portal"
)

// Store persists portal records. It answers equality-filtered
// lookups only; visibility rules live one layer up, in the
// access-scoped repository. Implementations assign IDs and
// timestamps at write time.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *portal.User) error
	UserByID(ctx context.Context, id string) (*portal.User, error)
	UpdateUser(ctx context.Context, id string, role portal.Role, displayName string) error
	CountUsers(ctx context.Context) (int, error)
	ListUsers(ctx context.Context) ([]portal.User, error)

	// Identity mapping (provider, provider_user_id) -> user
	UserByIdentity(ctx context.Context, provider, providerUserID string) (*portal.User, error)
	LinkIdentity(ctx context.Context, userID, provider, providerUserID string) error

	// Courses
	CreateCourse(ctx context.Context, c *portal.Course) error
	CourseByID(ctx context.Context, id string) (*portal.Course, error)
	ListCourses(ctx context.Context) ([]portal.Course, error)
	ListCoursesByInstructor(ctx context.Context, instructorID string) ([]portal.Course, error)

	// Enrollments
	CreateEnrollment(ctx context.Context, e *portal.Enrollment) error
	ListEnrollmentsByStudent(ctx context.Context, studentID string) ([]portal.Enrollment, error)
	ListEnrollmentsByCourse(ctx context.Context, courseID string) ([]portal.Enrollment, error)

	// Assignments, due date ascending
	CreateAssignment(ctx context.Context, a *portal.Assignment) error
	ListAssignmentsByCourse(ctx context.Context, courseID string) ([]portal.Assignment, error)

	// Announcements, newest first
	CreateAnnouncement(ctx context.Context, a *portal.Announcement) error
	ListAnnouncements(ctx context.Context) ([]portal.Announcement, error)
}
