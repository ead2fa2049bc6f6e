package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/access"
	"campus-portal/internal/api"
	authhandler "campus-portal/internal/auth/handler"
	"campus-portal/internal/auth/provider"
	"campus-portal/internal/auth/provider/google"
	"campus-portal/internal/auth/provider/password"
	"campus-portal/internal/auth/resolver"
	"campus-portal/internal/config"
	"campus-portal/internal/logger"
	"campus-portal/internal/middleware"
	"campus-portal/internal/summary"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	identityResolver := resolver.NewStoreResolver(infra.Store)
	passwordSvc := password.NewService(infra.Credentials)

	var oauthProviders []provider.OAuthProvider
	if cfg.GoogleClientID != "" {
		googleProvider, err := google.New(
			ctx,
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
		)
		if err != nil {
			return nil, nil, err
		}
		oauthProviders = append(oauthProviders, googleProvider)
	}
	registry := provider.NewRegistry(oauthProviders...)

	var summarizer summary.Summarizer
	if cfg.GeminiAPIKey != "" {
		summarizer = summary.NewClient(cfg.GeminiAPIKey)
		logger.Info("announcement summarizer enabled", nil)
	}

	repo := access.NewRepository(infra.Store, summarizer)

	authHandler := authhandler.NewHandler(
		registry,
		passwordSvc,
		infra.Sessions,
		identityResolver,
	)
	apiHandler := api.NewHandler(repo)

	authMiddleware := middleware.NewAuthMiddleware(infra.Sessions, infra.Store)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	protected := router.Group("/api")
	protected.Use(middleware.GinRequireAuth(authMiddleware))

	authHandler.RegisterProtectedRoutes(protected)
	apiHandler.RegisterRoutes(protected)

	return router, infra.cleanup, nil
}
