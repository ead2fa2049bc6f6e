package middleware

import (
	"context"
	"net/http"
	"time"

	"campus-portal/internal/portal"
	"campus-portal/internal/session"
	"campus-portal/internal/store"
)

// unexported, collision-proof context key
type userContextKeyType struct{}

var userKey = userContextKeyType{}

// UserFromContext extracts the authenticated portal user from context.
func UserFromContext(ctx context.Context) (*portal.User, bool) {
	u, ok := ctx.Value(userKey).(*portal.User)
	return u, ok
}

type AuthMiddleware struct {
	Sessions session.Store
	Users    store.Store
}

func NewAuthMiddleware(sessions session.Store, users store.Store) *AuthMiddleware {
	return &AuthMiddleware{Sessions: sessions, Users: users}
}

// RequireAuth authenticates the request from its session cookie
// and loads the full user profile into context, so handlers pass
// an explicit user into every repository call. A profile-load
// failure blocks entry; it is never downgraded to guest access.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sessionID := cookie.Value

		// 2. Load session
		sess, err := a.Sessions.Get(r.Context(), sessionID)
		if err != nil || sess == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Enforce session expiry
		if time.Now().After(sess.ExpiresAt) {
			_ = a.Sessions.Delete(r.Context(), sessionID)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 4. Load the profile behind the session. Role is re-read
		// on every request, never trusted from the client.
		user, err := a.Users.UserByID(r.Context(), sess.UserID)
		if err != nil {
			http.Error(w, "profile unavailable", http.StatusInternalServerError)
			return
		}

		// 5. Continue with the user attached
		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
