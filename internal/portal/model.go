package portal

import "time"

// Role is the sole authorization attribute carried by a User.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"

	// TargetAll marks an announcement addressed to every role.
	TargetAll = "all"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// User is the portal profile behind an authenticated identity.
// One record per identity; role changes only through SwitchRole
// or an admin action.
type User struct {
	ID          string    `json:"id"`
	Role        Role      `json:"role"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Course is owned by its instructor (a faculty user).
type Course struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	InstructorID   string    `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// Enrollment joins a student to a course. Unique per
// (StudentID, CourseID); immutable once created.
type Enrollment struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	CourseID    string    `json:"course_id"`
	EnrolledAt  time.Time `json:"enrolled_at"`
}

// Assignment is coursework posted on a course by its owning
// faculty. Listed in due-date order, soonest first.
type Assignment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	TotalPoints int       `json:"total_points"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Announcement is either global (CourseID empty, filtered by
// TargetRole) or course-scoped (visible only with access to the
// course). Summary is best-effort enrichment and may be empty.
type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Summary    string    `json:"summary,omitempty"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CourseID   string    `json:"course_id,omitempty"`
	TargetRole string    `json:"target_role,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Global reports whether the announcement is not bound to a course.
func (a Announcement) Global() bool {
	return a.CourseID == ""
}
