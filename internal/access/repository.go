// Package access is the authorization-aware data layer. Every
// read of courses, enrollments and announcements is filtered here
// by the caller's role, and every write independently re-checks
// that role before the store is touched. Nothing outside this
// package decides visibility.
package access

import (
	"context"
	"fmt"
	"time"

	"campus-portal/internal/logger"
	"campus-portal/internal/portal"
	"campus-portal/internal/store"
	"campus-portal/internal/summary"
)

type Repository struct {
	store      store.Store
	summarizer summary.Summarizer // optional
}

func NewRepository(s store.Store, sum summary.Summarizer) *Repository {
	return &Repository{store: s, summarizer: sum}
}

// ListCoursesVisibleTo returns the caller's visibility scope:
// admin sees everything, faculty their own courses, students the
// courses they are enrolled in. Order is stable insertion order.
func (r *Repository) ListCoursesVisibleTo(ctx context.Context, user *portal.User) ([]portal.Course, error) {
	switch user.Role {
	case portal.RoleAdmin:
		return r.store.ListCourses(ctx)

	case portal.RoleFaculty:
		return r.store.ListCoursesByInstructor(ctx, user.ID)

	case portal.RoleStudent:
		enrollments, err := r.store.ListEnrollmentsByStudent(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if len(enrollments) == 0 {
			return nil, nil
		}

		enrolled := make(map[string]bool, len(enrollments))
		for _, e := range enrollments {
			enrolled[e.CourseID] = true
		}

		all, err := r.store.ListCourses(ctx)
		if err != nil {
			return nil, err
		}

		var out []portal.Course
		for _, c := range all {
			if enrolled[c.ID] {
				out = append(out, c)
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown role: %s", user.Role)
	}
}

// ListEnrollments returns a student's enrollments. Only the
// student themself or an admin may ask.
func (r *Repository) ListEnrollments(ctx context.Context, caller *portal.User, studentID string) ([]portal.Enrollment, error) {
	if caller.Role != portal.RoleAdmin && caller.ID != studentID {
		return nil, portal.ErrForbidden
	}
	return r.store.ListEnrollmentsByStudent(ctx, studentID)
}

// ListAnnouncements returns announcements visible to the caller,
// newest first. Global announcements pass when untargeted,
// targeted at all roles, or targeted at the caller's role.
// Course-scoped announcements pass only when the course is in the
// caller's visibility scope. limit <= 0 means no limit.
func (r *Repository) ListAnnouncements(ctx context.Context, user *portal.User, limit int) ([]portal.Announcement, error) {
	all, err := r.store.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}

	visible, err := r.visibleCourseIDs(ctx, user)
	if err != nil {
		return nil, err
	}

	var out []portal.Announcement
	for _, a := range all {
		if !r.announcementVisible(a, user, visible) {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *Repository) announcementVisible(a portal.Announcement, user *portal.User, visibleCourses map[string]bool) bool {
	if a.Global() {
		switch a.TargetRole {
		case "", portal.TargetAll, string(user.Role):
			return true
		}
		return false
	}
	return visibleCourses[a.CourseID]
}

func (r *Repository) visibleCourseIDs(ctx context.Context, user *portal.User) (map[string]bool, error) {
	courses, err := r.ListCoursesVisibleTo(ctx, user)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(courses))
	for _, c := range courses {
		ids[c.ID] = true
	}
	return ids, nil
}

// CourseDraft carries caller-supplied course fields.
type CourseDraft struct {
	Name         string
	Description  string
	InstructorID string // admin only; faculty always own their courses
}

// CreateCourse creates a course. Faculty create courses they
// instruct; admin may assign any instructor. Students are
// rejected before the store is touched.
func (r *Repository) CreateCourse(ctx context.Context, user *portal.User, draft CourseDraft) (*portal.Course, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("%w: course name required", portal.ErrInvalid)
	}

	course := &portal.Course{
		Name:        draft.Name,
		Description: draft.Description,
		CreatedBy:   user.ID,
	}

	switch user.Role {
	case portal.RoleFaculty:
		course.InstructorID = user.ID
		course.InstructorName = user.DisplayName

	case portal.RoleAdmin:
		instructorID := draft.InstructorID
		if instructorID == "" {
			instructorID = user.ID
		}
		instructor, err := r.store.UserByID(ctx, instructorID)
		if err != nil {
			return nil, err
		}
		course.InstructorID = instructor.ID
		course.InstructorName = instructor.DisplayName

	default:
		return nil, portal.ErrForbidden
	}

	if err := r.store.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// AnnouncementDraft carries caller-supplied announcement fields.
type AnnouncementDraft struct {
	Title      string
	Body       string
	CourseID   string // empty for a global announcement
	TargetRole string // global announcements only
}

// CreateAnnouncement posts an announcement. Faculty may post only
// to their own courses; admin may post anything, including
// role-targeted globals. The summary is best-effort enrichment
// and never fails the write.
func (r *Repository) CreateAnnouncement(ctx context.Context, user *portal.User, draft AnnouncementDraft) (*portal.Announcement, error) {
	if draft.Body == "" {
		return nil, fmt.Errorf("%w: announcement body required", portal.ErrInvalid)
	}

	switch user.Role {
	case portal.RoleAdmin:
		if draft.TargetRole != "" && draft.TargetRole != portal.TargetAll && !portal.Role(draft.TargetRole).Valid() {
			return nil, fmt.Errorf("%w: target role %s", portal.ErrInvalid, draft.TargetRole)
		}
		if draft.CourseID != "" {
			if _, err := r.store.CourseByID(ctx, draft.CourseID); err != nil {
				return nil, err
			}
		}

	case portal.RoleFaculty:
		if draft.CourseID == "" {
			return nil, portal.ErrForbidden
		}
		course, err := r.store.CourseByID(ctx, draft.CourseID)
		if err != nil {
			return nil, err
		}
		if course.InstructorID != user.ID {
			return nil, portal.ErrForbidden
		}
		draft.TargetRole = ""

	default:
		return nil, portal.ErrForbidden
	}

	ann := &portal.Announcement{
		Title:      draft.Title,
		Body:       draft.Body,
		AuthorID:   user.ID,
		AuthorName: user.DisplayName,
		CourseID:   draft.CourseID,
		TargetRole: draft.TargetRole,
		Summary:    r.summarize(ctx, draft.Body),
	}

	if err := r.store.CreateAnnouncement(ctx, ann); err != nil {
		return nil, err
	}
	return ann, nil
}

func (r *Repository) summarize(ctx context.Context, body string) string {
	if r.summarizer == nil {
		return ""
	}
	s, err := r.summarizer.Summarize(ctx, body)
	if err != nil {
		logger.Warn("announcement summary skipped", map[string]any{
			"error": err.Error(),
		})
		return ""
	}
	return s
}

// AssignmentDraft carries caller-supplied assignment fields.
type AssignmentDraft struct {
	CourseID    string
	Title       string
	Description string
	DueDate     time.Time
	TotalPoints int
}

// CreateAssignment posts coursework on a course. Only the owning
// faculty or an admin may post.
func (r *Repository) CreateAssignment(ctx context.Context, user *portal.User, draft AssignmentDraft) (*portal.Assignment, error) {
	if draft.Title == "" {
		return nil, fmt.Errorf("%w: assignment title required", portal.ErrInvalid)
	}
	if draft.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: assignment due date required", portal.ErrInvalid)
	}

	course, err := r.store.CourseByID(ctx, draft.CourseID)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case portal.RoleAdmin:
	case portal.RoleFaculty:
		if course.InstructorID != user.ID {
			return nil, portal.ErrForbidden
		}
	default:
		return nil, portal.ErrForbidden
	}

	assignment := &portal.Assignment{
		CourseID:    course.ID,
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		TotalPoints: draft.TotalPoints,
		CreatedBy:   user.ID,
	}

	if err := r.store.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// ListAssignments returns a course's assignments, due date
// ascending. The course must be in the caller's visibility scope.
func (r *Repository) ListAssignments(ctx context.Context, user *portal.User, courseID string) ([]portal.Assignment, error) {
	if _, err := r.store.CourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	visible, err := r.visibleCourseIDs(ctx, user)
	if err != nil {
		return nil, err
	}
	if !visible[courseID] {
		return nil, portal.ErrForbidden
	}

	return r.store.ListAssignmentsByCourse(ctx, courseID)
}

// EnrollStudent enrolls a student in a course. The student
// themself or an admin may enroll; duplicates are rejected with
// ErrAlreadyEnrolled.
func (r *Repository) EnrollStudent(ctx context.Context, caller *portal.User, studentID, courseID string) (*portal.Enrollment, error) {
	if caller.Role != portal.RoleAdmin && caller.ID != studentID {
		return nil, portal.ErrForbidden
	}

	student, err := r.store.UserByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if _, err := r.store.CourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment := &portal.Enrollment{
		StudentID:   student.ID,
		StudentName: student.DisplayName,
		CourseID:    courseID,
	}

	if err := r.store.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListUsers is the admin directory read.
func (r *Repository) ListUsers(ctx context.Context, caller *portal.User) ([]portal.User, error) {
	if caller.Role != portal.RoleAdmin {
		return nil, portal.ErrForbidden
	}
	return r.store.ListUsers(ctx)
}
