package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/auth/provider"
	"campus-portal/internal/auth/provider/password"
	"campus-portal/internal/auth/resolver"
	"campus-portal/internal/logger"
	"campus-portal/internal/portal"
	"campus-portal/internal/session"
)

const sessionTTL = 24 * time.Hour

type Handler struct {
	providers    *provider.Registry
	passwordSvc  *password.Service
	sessionStore session.Store
	resolver     resolver.Resolver
}

func NewHandler(
	registry *provider.Registry,
	passwordSvc *password.Service,
	sessionStore session.Store,
	resolver resolver.Resolver,
) *Handler {
	return &Handler{
		providers:    registry,
		passwordSvc:  passwordSvc,
		sessionStore: sessionStore,
		resolver:     resolver,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/anonymous", h.Anonymous)
	r.GET("/oauth/login/:provider", h.oauthLogin)
	r.GET("/oauth/callback/:provider", h.oauthCallback)
	r.POST("/auth/logout", h.Logout)
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/me", h.Me)
	r.POST("/me/switch-role", h.SwitchRole)
}

// issueSession persists a fresh session for the user and sets the
// cookie. Shared by every sign-in path.
func (h *Handler) issueSession(c *gin.Context, user *portal.User) bool {
	sessionID, err := session.GenerateID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return false
	}

	now := time.Now()
	expiresAt := now.Add(sessionTTL)

	if err := h.sessionStore.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			UserID:    user.ID,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return false
	}

	session.SetCookie(
		c.Writer,
		sessionID,
		expiresAt,
		session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)

	logger.Info("session issued", map[string]any{
		"user_id": user.ID,
		"role":    user.Role,
	})

	return true
}

func (h *Handler) Logout(c *gin.Context) {
	// Delete session from store (best-effort), then clear cookie
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	// Idempotent response
	c.Status(http.StatusNoContent)
}
