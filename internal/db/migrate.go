package db

import (
	"context"
	"database/sql"
)

const portalMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    role text NOT NULL DEFAULT 'student',
    display_name text NOT NULL,
    email text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS identities (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    provider text NOT NULL,
    provider_user_id text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT identities_provider_unique
        UNIQUE (provider, provider_user_id)
);

CREATE INDEX IF NOT EXISTS identities_user_id_idx
ON identities (user_id);

CREATE TABLE IF NOT EXISTS credentials (
    email text PRIMARY KEY,
    password_hash text NOT NULL,
    hash_version text NOT NULL DEFAULT 'bcrypt',
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS courses (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    name text NOT NULL,
    description text NOT NULL DEFAULT '',
    instructor_id uuid NOT NULL REFERENCES users(id),
    instructor_name text NOT NULL,
    created_by uuid NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS courses_instructor_idx
ON courses (instructor_id);

CREATE TABLE IF NOT EXISTS enrollments (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    student_id uuid NOT NULL REFERENCES users(id),
    student_name text NOT NULL,
    course_id uuid NOT NULL REFERENCES courses(id),
    enrolled_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT enrollments_student_course_unique
        UNIQUE (student_id, course_id)
);

CREATE INDEX IF NOT EXISTS enrollments_student_idx
ON enrollments (student_id);

CREATE INDEX IF NOT EXISTS enrollments_course_idx
ON enrollments (course_id);

CREATE TABLE IF NOT EXISTS assignments (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    course_id uuid NOT NULL REFERENCES courses(id),
    title text NOT NULL,
    description text NOT NULL DEFAULT '',
    due_date timestamptz NOT NULL,
    total_points integer NOT NULL DEFAULT 0,
    created_by uuid NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS assignments_course_due_idx
ON assignments (course_id, due_date);

CREATE TABLE IF NOT EXISTS announcements (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    title text NOT NULL,
    body text NOT NULL,
    summary text NOT NULL DEFAULT '',
    author_id uuid NOT NULL REFERENCES users(id),
    author_name text NOT NULL,
    course_id uuid REFERENCES courses(id),
    target_role text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS announcements_created_at_idx
ON announcements (created_at DESC);
`

// RunPortalMigration applies the portal schema. Timestamps are
// assigned server-side so ordering keys never come from clients.
func RunPortalMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, portalMigration)
	return err
}
