// Package web wires the HTTP transport: routing, request validation,
// session cookies, CORS and graceful shutdown. All protocol logic lives
// in the services layer; this package only translates between HTTP and
// the service error taxonomy.
package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/webauth/internal/logging"
	"github.com/dmitrijs2005/webauth/internal/server/config"
	"github.com/dmitrijs2005/webauth/internal/server/services"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "wa_session"

// Server hosts the HTTP API.
type Server struct {
	address  string
	cfg      *config.Config
	logger   logging.Logger
	sessions *services.SessionService
	contacts *services.ContactService
	engine   *gin.Engine
}

// NewServer builds the gin engine and wires all routes.
func NewServer(cfg *config.Config, l logging.Logger, sessions *services.SessionService, contacts *services.ContactService) *Server {
	gin.SetMode(cfg.GinMode)

	s := &Server{
		address:  cfg.EndpointAddr,
		cfg:      cfg,
		logger:   l.With("module", "http_server"),
		sessions: sessions,
		contacts: contacts,
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/register", s.handleRegister)
		api.POST("/login", s.handleLogin)
		api.POST("/contact", s.handleContact)

		protected := api.Group("")
		protected.Use(s.requireAuth())
		{
			protected.GET("/logout", s.handleLogout)
			protected.GET("/getAuthUser", s.handleGetAuthUser)
		}
	}

	return router
}

// Handler exposes the underlying engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
