package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-portal/internal/access"
	"campus-portal/internal/middleware"
	"campus-portal/internal/portal"
	"campus-portal/internal/session"
	"campus-portal/internal/store"
)

type testEnv struct {
	router   *gin.Engine
	store    *store.Memory
	sessions *session.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	mem := store.NewMemory()
	return newTestEnvWithStore(t, mem, mem)
}

// newTestEnvWithStore lets a test hand the repository a store
// wrapper with failure-injecting overrides while sign-in keeps
// writing users through the underlying memory store.
func newTestEnvWithStore(t *testing.T, s store.Store, mem *store.Memory) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewMemoryStore()
	repo := access.NewRepository(s, nil)

	router := gin.New()
	protected := router.Group("/api")
	protected.Use(middleware.GinRequireAuth(middleware.NewAuthMiddleware(sessions, mem)))
	NewHandler(repo).RegisterRoutes(protected)

	return &testEnv{router: router, store: mem, sessions: sessions}
}

// signIn creates a user and a live session, returning the cookie.
func (e *testEnv) signIn(t *testing.T, role portal.Role, name string) (*portal.User, *http.Cookie) {
	t.Helper()
	ctx := context.Background()

	u := &portal.User{Role: role, DisplayName: name}
	require.NoError(t, e.store.CreateUser(ctx, u))

	sid, err := session.GenerateID()
	require.NoError(t, err)
	require.NoError(t, e.sessions.Create(ctx, session.Session{
		SessionID: sid,
		UserID:    u.ID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	return u, &http.Cookie{Name: session.CookieName, Value: sid}
}

func (e *testEnv) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCourseEndpoints(t *testing.T) {
	t.Run("Should reject a student course creation with 403", func(t *testing.T) {
		env := newTestEnv(t)
		_, cookie := env.signIn(t, portal.RoleStudent, "S")

		w := env.do(t, http.MethodPost, "/api/courses", `{"name":"Sneaky"}`, cookie)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should create and list a faculty course", func(t *testing.T) {
		env := newTestEnv(t)
		faculty, cookie := env.signIn(t, portal.RoleFaculty, "F")

		w := env.do(t, http.MethodPost, "/api/courses", `{"name":"Compilers"}`, cookie)
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(t, http.MethodGet, "/api/courses", "", cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Courses []portal.Course `json:"courses"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Courses, 1)
		assert.Equal(t, faculty.ID, resp.Courses[0].InstructorID)
	})
}

func TestEnrollmentEndpoints(t *testing.T) {
	t.Run("Should enroll self and surface duplicates as 409", func(t *testing.T) {
		env := newTestEnv(t)
		faculty, _ := env.signIn(t, portal.RoleFaculty, "F")
		_, cookie := env.signIn(t, portal.RoleStudent, "S")

		course := &portal.Course{Name: "X", InstructorID: faculty.ID, InstructorName: "F", CreatedBy: faculty.ID}
		require.NoError(t, env.store.CreateCourse(context.Background(), course))

		body := `{"course_id":"` + course.ID + `"}`
		w := env.do(t, http.MethodPost, "/api/enrollments", body, cookie)
		assert.Equal(t, http.StatusCreated, w.Code)

		w = env.do(t, http.MethodPost, "/api/enrollments", body, cookie)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAnnouncementEndpoints(t *testing.T) {
	t.Run("Should reject student posts and accept admin globals", func(t *testing.T) {
		env := newTestEnv(t)
		_, studentCookie := env.signIn(t, portal.RoleStudent, "S")
		_, adminCookie := env.signIn(t, portal.RoleAdmin, "A")

		w := env.do(t, http.MethodPost, "/api/announcements", `{"body":"spam"}`, studentCookie)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = env.do(t, http.MethodPost, "/api/announcements", `{"body":"welcome","target_role":"all"}`, adminCookie)
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestAssignmentEndpoints(t *testing.T) {
	t.Run("Should post and list assignments due date ascending", func(t *testing.T) {
		env := newTestEnv(t)
		faculty, cookie := env.signIn(t, portal.RoleFaculty, "F")

		course := &portal.Course{Name: "X", InstructorID: faculty.ID, InstructorName: "F", CreatedBy: faculty.ID}
		require.NoError(t, env.store.CreateCourse(context.Background(), course))

		w := env.do(t, http.MethodPost, "/api/courses/"+course.ID+"/assignments",
			`{"title":"final","due_date":"2026-12-01T09:00:00Z","total_points":100}`, cookie)
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(t, http.MethodPost, "/api/courses/"+course.ID+"/assignments",
			`{"title":"pset 1","due_date":"2026-09-15T09:00:00Z"}`, cookie)
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(t, http.MethodGet, "/api/courses/"+course.ID+"/assignments", "", cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Assignments []portal.Assignment `json:"assignments"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Assignments, 2)
		assert.Equal(t, "pset 1", resp.Assignments[0].Title)
		assert.Equal(t, "final", resp.Assignments[1].Title)
	})

	t.Run("Should reject unenrolled students with 403 and students posting", func(t *testing.T) {
		env := newTestEnv(t)
		faculty, _ := env.signIn(t, portal.RoleFaculty, "F")
		_, cookie := env.signIn(t, portal.RoleStudent, "S")

		course := &portal.Course{Name: "X", InstructorID: faculty.ID, InstructorName: "F", CreatedBy: faculty.ID}
		require.NoError(t, env.store.CreateCourse(context.Background(), course))

		w := env.do(t, http.MethodGet, "/api/courses/"+course.ID+"/assignments", "", cookie)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = env.do(t, http.MethodPost, "/api/courses/"+course.ID+"/assignments",
			`{"title":"sneaky","due_date":"2026-09-15T09:00:00Z"}`, cookie)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should return 404 for an unknown course", func(t *testing.T) {
		env := newTestEnv(t)
		_, cookie := env.signIn(t, portal.RoleAdmin, "A")

		w := env.do(t, http.MethodGet, "/api/courses/missing/assignments", "", cookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// brokenStore simulates database outage on course writes.
type brokenStore struct {
	*store.Memory
}

func (brokenStore) CreateCourse(context.Context, *portal.Course) error {
	return errors.New("pq: connection refused")
}

func TestWriteErrorHidesInternals(t *testing.T) {
	t.Run("Should answer 500 without echoing driver text", func(t *testing.T) {
		mem := store.NewMemory()
		env := newTestEnvWithStore(t, brokenStore{mem}, mem)
		_, cookie := env.signIn(t, portal.RoleFaculty, "F")

		w := env.do(t, http.MethodPost, "/api/courses", `{"name":"Compilers"}`, cookie)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "pq:")
		assert.Contains(t, w.Body.String(), "internal error")
	})

	t.Run("Should keep validation details on 400", func(t *testing.T) {
		env := newTestEnv(t)
		_, cookie := env.signIn(t, portal.RoleAdmin, "A")

		w := env.do(t, http.MethodPost, "/api/announcements",
			`{"body":"hi","target_role":"wizard"}`, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "target role")
	})
}

func TestUsersEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, adminCookie := env.signIn(t, portal.RoleAdmin, "A")
	_, studentCookie := env.signIn(t, portal.RoleStudent, "S")

	w := env.do(t, http.MethodGet, "/api/users", "", adminCookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/users", "", studentCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.signIn(t, portal.RoleStudent, "S")

	w := env.do(t, http.MethodGet, "/api/dashboard", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var d access.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Empty(t, d.CoursesError)
	assert.Empty(t, d.AnnouncementsError)
}
