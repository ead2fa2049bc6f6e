package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"campus-portal/internal/db"
	"campus-portal/internal/portal"
)

// Postgres is the canonical Store. IDs and timestamps come from
// the database (gen_random_uuid, NOW) so ordering keys are never
// client-supplied.
type Postgres struct {
	db *db.DB
}

func NewPostgres(db *db.DB) *Postgres {
	return &Postgres{db: db}
}

const uniqueViolation = "23505"

func (p *Postgres) CreateUser(ctx context.Context, u *portal.User) error {
	return p.db.QueryRowContext(ctx, `
		INSERT INTO users (role, display_name, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`,
		u.Role,
		u.DisplayName,
		u.Email,
	).Scan(&u.ID, &u.CreatedAt)
}

func (p *Postgres) UserByID(ctx context.Context, id string) (*portal.User, error) {
	var u portal.User
	err := p.db.QueryRowContext(ctx, `
		SELECT id, role, display_name, email, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Role, &u.DisplayName, &u.Email, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, portal.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *Postgres) UpdateUser(ctx context.Context, id string, role portal.Role, displayName string) error {
	res, err := p.db.ExecContext(ctx, `
		UPDATE users
		SET role = $2, display_name = $3
		WHERE id = $1
	`, id, role, displayName)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return portal.ErrNotFound
	}
	return nil
}

func (p *Postgres) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (p *Postgres) ListUsers(ctx context.Context) ([]portal.User, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, role, display_name, email, created_at
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []portal.User
	for rows.Next() {
		var u portal.User
		if err := rows.Scan(&u.ID, &u.Role, &u.DisplayName, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (p *Postgres) UserByIdentity(ctx context.Context, provider, providerUserID string) (*portal.User, error) {
	var u portal.User
	err := p.db.QueryRowContext(ctx, `
		SELECT u.id, u.role, u.display_name, u.email, u.created_at
		FROM users u
		JOIN identities i ON i.user_id = u.id
		WHERE i.provider = $1
		  AND i.provider_user_id = $2
	`,
		provider,
		providerUserID,
	).Scan(&u.ID, &u.Role, &u.DisplayName, &u.Email, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, portal.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *Postgres) LinkIdentity(ctx context.Context, userID, provider, providerUserID string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO identities (user_id, provider, provider_user_id)
		VALUES ($1, $2, $3)
	`,
		userID,
		provider,
		providerUserID,
	)
	return err
}

func (p *Postgres) CreateCourse(ctx context.Context, c *portal.Course) error {
	return p.db.QueryRowContext(ctx, `
		INSERT INTO courses (name, description, instructor_id, instructor_name, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		c.Name,
		c.Description,
		c.InstructorID,
		c.InstructorName,
		c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt)
}

func (p *Postgres) CourseByID(ctx context.Context, id string) (*portal.Course, error) {
	var c portal.Course
	err := p.db.QueryRowContext(ctx, `
		SELECT id, name, description, instructor_id, instructor_name, created_by, created_at
		FROM courses
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.InstructorID, &c.InstructorName, &c.CreatedBy, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, portal.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *Postgres) ListCourses(ctx context.Context) ([]portal.Course, error) {
	return p.queryCourses(ctx, `
		SELECT id, name, description, instructor_id, instructor_name, created_by, created_at
		FROM courses
		ORDER BY created_at, id
	`)
}

func (p *Postgres) ListCoursesByInstructor(ctx context.Context, instructorID string) ([]portal.Course, error) {
	return p.queryCourses(ctx, `
		SELECT id, name, description, instructor_id, instructor_name, created_by, created_at
		FROM courses
		WHERE instructor_id = $1
		ORDER BY created_at, id
	`, instructorID)
}

func (p *Postgres) queryCourses(ctx context.Context, query string, args ...any) ([]portal.Course, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []portal.Course
	for rows.Next() {
		var c portal.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.InstructorID, &c.InstructorName, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateEnrollment(ctx context.Context, e *portal.Enrollment) error {
	err := p.db.QueryRowContext(ctx, `
		INSERT INTO enrollments (student_id, student_name, course_id)
		VALUES ($1, $2, $3)
		RETURNING id, enrolled_at
	`,
		e.StudentID,
		e.StudentName,
		e.CourseID,
	).Scan(&e.ID, &e.EnrolledAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return portal.ErrAlreadyEnrolled
	}
	return err
}

func (p *Postgres) ListEnrollmentsByStudent(ctx context.Context, studentID string) ([]portal.Enrollment, error) {
	return p.queryEnrollments(ctx, `
		SELECT id, student_id, student_name, course_id, enrolled_at
		FROM enrollments
		WHERE student_id = $1
		ORDER BY enrolled_at, id
	`, studentID)
}

func (p *Postgres) ListEnrollmentsByCourse(ctx context.Context, courseID string) ([]portal.Enrollment, error) {
	return p.queryEnrollments(ctx, `
		SELECT id, student_id, student_name, course_id, enrolled_at
		FROM enrollments
		WHERE course_id = $1
		ORDER BY enrolled_at, id
	`, courseID)
}

func (p *Postgres) queryEnrollments(ctx context.Context, query string, args ...any) ([]portal.Enrollment, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []portal.Enrollment
	for rows.Next() {
		var e portal.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.StudentName, &e.CourseID, &e.EnrolledAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateAssignment(ctx context.Context, a *portal.Assignment) error {
	return p.db.QueryRowContext(ctx, `
		INSERT INTO assignments (course_id, title, description, due_date, total_points, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		a.CourseID,
		a.Title,
		a.Description,
		a.DueDate,
		a.TotalPoints,
		a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
}

func (p *Postgres) ListAssignmentsByCourse(ctx context.Context, courseID string) ([]portal.Assignment, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, course_id, title, description, due_date, total_points, created_by, created_at
		FROM assignments
		WHERE course_id = $1
		ORDER BY due_date, id
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []portal.Assignment
	for rows.Next() {
		var a portal.Assignment
		if err := rows.Scan(&a.ID, &a.CourseID, &a.Title, &a.Description, &a.DueDate, &a.TotalPoints, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateAnnouncement(ctx context.Context, a *portal.Announcement) error {
	courseID := sql.NullString{String: a.CourseID, Valid: a.CourseID != ""}
	return p.db.QueryRowContext(ctx, `
		INSERT INTO announcements (title, body, summary, author_id, author_name, course_id, target_role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`,
		a.Title,
		a.Body,
		a.Summary,
		a.AuthorID,
		a.AuthorName,
		courseID,
		a.TargetRole,
	).Scan(&a.ID, &a.CreatedAt)
}

func (p *Postgres) ListAnnouncements(ctx context.Context) ([]portal.Announcement, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, title, body, summary, author_id, author_name, course_id, target_role, created_at
		FROM announcements
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []portal.Announcement
	for rows.Next() {
		var (
			a        portal.Announcement
			courseID sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Summary, &a.AuthorID, &a.AuthorName, &courseID, &a.TargetRole, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.CourseID = courseID.String
		out = append(out, a)
	}
	return out, rows.Err()
}
