package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"campus-portal/internal/portal"
)

// Memory is an in-process Store. It backs the local demo mode and
// the test suite. Slices keep insertion order; announcements are
// returned newest first, mirroring the Postgres ordering.
type Memory struct {
	mu sync.RWMutex

	users         []portal.User
	identities    map[string]string // provider + "\x00" + providerUserID -> userID
	courses       []portal.Course
	enrollments   []portal.Enrollment
	assignments   []portal.Assignment
	announcements []portal.Announcement
}

func NewMemory() *Memory {
	return &Memory{identities: make(map[string]string)}
}

func identityKey(provider, providerUserID string) string {
	return provider + "\x00" + providerUserID
}

func (m *Memory) CreateUser(_ context.Context, u *portal.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	m.users = append(m.users, *u)
	return nil
}

func (m *Memory) UserByID(_ context.Context, id string) (*portal.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, portal.ErrNotFound
}

func (m *Memory) UpdateUser(_ context.Context, id string, role portal.Role, displayName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Role = role
			m.users[i].DisplayName = displayName
			return nil
		}
	}
	return portal.ErrNotFound
}

func (m *Memory) CountUsers(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users), nil
}

func (m *Memory) ListUsers(_ context.Context) ([]portal.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]portal.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *Memory) UserByIdentity(_ context.Context, provider, providerUserID string) (*portal.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	userID, ok := m.identities[identityKey(provider, providerUserID)]
	if !ok {
		return nil, portal.ErrNotFound
	}
	for i := range m.users {
		if m.users[i].ID == userID {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, portal.ErrNotFound
}

func (m *Memory) LinkIdentity(_ context.Context, userID, provider, providerUserID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identities[identityKey(provider, providerUserID)] = userID
	return nil
}

func (m *Memory) CreateCourse(_ context.Context, c *portal.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	m.courses = append(m.courses, *c)
	return nil
}

func (m *Memory) CourseByID(_ context.Context, id string) (*portal.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.courses {
		if m.courses[i].ID == id {
			c := m.courses[i]
			return &c, nil
		}
	}
	return nil, portal.ErrNotFound
}

func (m *Memory) ListCourses(_ context.Context) ([]portal.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]portal.Course, len(m.courses))
	copy(out, m.courses)
	return out, nil
}

func (m *Memory) ListCoursesByInstructor(_ context.Context, instructorID string) ([]portal.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []portal.Course
	for _, c := range m.courses {
		if c.InstructorID == instructorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *Memory) CreateEnrollment(_ context.Context, e *portal.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.enrollments {
		if existing.StudentID == e.StudentID && existing.CourseID == e.CourseID {
			return portal.ErrAlreadyEnrolled
		}
	}
	e.ID = uuid.NewString()
	e.EnrolledAt = time.Now()
	m.enrollments = append(m.enrollments, *e)
	return nil
}

func (m *Memory) ListEnrollmentsByStudent(_ context.Context, studentID string) ([]portal.Enrollment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []portal.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *Memory) ListEnrollmentsByCourse(_ context.Context, courseID string) ([]portal.Enrollment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []portal.Enrollment
	for _, e := range m.enrollments {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *Memory) CreateAssignment(_ context.Context, a *portal.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	m.assignments = append(m.assignments, *a)
	return nil
}

func (m *Memory) ListAssignmentsByCourse(_ context.Context, courseID string) ([]portal.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []portal.Assignment
	for _, a := range m.assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

func (m *Memory) CreateAnnouncement(_ context.Context, a *portal.Announcement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	m.announcements = append(m.announcements, *a)
	return nil
}

// ListAnnouncements returns newest first. Insertion order breaks
// ties, so two writes in the same clock tick still come back in
// reverse write order.
func (m *Memory) ListAnnouncements(_ context.Context) ([]portal.Announcement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]portal.Announcement, 0, len(m.announcements))
	for i := len(m.announcements) - 1; i >= 0; i-- {
		out = append(out, m.announcements[i])
	}
	return out, nil
}
