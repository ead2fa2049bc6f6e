package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/portal"
)

// GinRequireAuth adapts the net/http AuthMiddleware to Gin. Auth
// decisions stay session-based and provider-agnostic.
func GinRequireAuth(auth *AuthMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		handler := auth.RequireAuth(next)
		handler.ServeHTTP(c.Writer, c.Request)

		// If auth middleware already handled the response, stop Gin chain
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}

// CurrentUser returns the authenticated user for a request that
// passed GinRequireAuth.
func CurrentUser(c *gin.Context) (*portal.User, bool) {
	return UserFromContext(c.Request.Context())
}
