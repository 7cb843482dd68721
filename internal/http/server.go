// Package http assembles the API server: routes, middleware, and lifecycle.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accountHTTP "github.com/setlistify/setlistify/internal/account/http"
	authHTTP "github.com/setlistify/setlistify/internal/auth/http"
	"github.com/setlistify/setlistify/internal/httputil"
	"github.com/setlistify/setlistify/internal/metrics"
	setlistHTTP "github.com/setlistify/setlistify/internal/setlist/http"
)

// Options carries the handlers and policies wired into the API router.
type Options struct {
	AuthHandler     *authHTTP.AuthHandler
	AccountHandler  *accountHTTP.AccountHandler
	SetlistHandler  *setlistHTTP.SetlistHandler
	CredentialStore *authHTTP.CredentialStore

	MetricsProvider  *metrics.Provider
	MetricsNamespace string

	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitResetEnabled bool
	RateLimitResetRPS     float64
	RateLimitResetBurst   int
}

// Server represents the API HTTP server.
type Server struct {
	db      *sql.DB
	logger  *slog.Logger
	router  *gin.Engine
	server  *http.Server
	options Options
}

// NewServer creates a new API server.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger, options Options) *Server {
	return &Server{
		db:      db,
		logger:  logger,
		options: options,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin engine with all routes and middleware. The
// acquisition routes are registered outside the guarded groups: they must
// never re-trigger the redirect router, or the chain would loop.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(httputil.MethodNotAllowedHandler())

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.options.CORSEnabled, s.options.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.options.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			s.options.MetricsProvider.MeterProvider(), s.options.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	if s.options.AuthHandler != nil {
		router.GET("/authorize", s.options.AuthHandler.Authorize)
		router.GET("/callback", s.options.AuthHandler.Callback)
		router.GET("/generate-access-token", s.options.AuthHandler.GenerateAccessToken)
	}

	if s.options.AccountHandler != nil {
		router.POST("/register", s.options.AccountHandler.Register)
		router.POST("/change-password", s.options.AccountHandler.ChangePassword)

		reset := router.Group("/")
		if s.options.RateLimitResetEnabled {
			reset.Use(accountHTTP.ResetRateLimitMiddleware(
				s.options.RateLimitResetRPS, s.options.RateLimitResetBurst, s.logger))
		}
		reset.POST("/forgot-password", s.options.AccountHandler.ForgotPassword)
		reset.POST("/reset-password", s.options.AccountHandler.ResetPassword)
	}

	if s.options.SetlistHandler != nil && s.options.CredentialStore != nil {
		api := router.Group("/api", authHTTP.RequireServiceToken(s.options.CredentialStore))
		api.GET("/search", s.options.SetlistHandler.Search)

		user := router.Group("/api", authHTTP.RequireUserSession(s.options.CredentialStore))
		user.POST("/playlists", s.options.SetlistHandler.CreatePlaylist)
	}

	return router
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.router = s.SetupRouter()
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can take traffic, checking the
// database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
