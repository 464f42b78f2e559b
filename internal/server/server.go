package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/HoseaMuriira/iruma-portal/internal/app/repositories"
	"github.com/HoseaMuriira/iruma-portal/internal/bootstrap"
	"github.com/HoseaMuriira/iruma-portal/internal/config"
	"github.com/HoseaMuriira/iruma-portal/internal/db"
)

// sessionSweepInterval is how often expired session rows are purged.
const sessionSweepInterval = time.Hour

// staticDir holds the portal's front-end pages; form posts redirect back
// into it.
const staticDir = "public"

// Server holds the state for the HTTP server.
type Server struct {
	config    *config.Config
	router    *gin.Engine
	database  *db.PostgresDB
	sessions  *repositories.SessionRepository
	logger    zerolog.Logger
	http      *http.Server
	stopSweep chan struct{}
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, database.Pool, lgr)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	setupStaticFileServing(router, lgr)

	s := &Server{
		config:    cfg,
		router:    router,
		database:  database,
		sessions:  deps.Repos.SessionRepository,
		logger:    lgr,
		stopSweep: make(chan struct{}),
	}

	return s, nil
}

// setupStaticFileServing serves the portal pages when the public directory
// is present. API-only deployments run without it.
func setupStaticFileServing(router *gin.Engine, lgr zerolog.Logger) {
	info, err := os.Stat(staticDir)
	if err != nil || !info.IsDir() {
		lgr.Info().Str("path", staticDir).Msg("No static directory found, serving API only")
		return
	}

	router.Static("/static", staticDir)
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.File(staticDir + c.Request.URL.Path)
			return
		}
		c.Status(http.StatusNotFound)
	})
	lgr.Info().Str("path", staticDir).Msg("Static file serving configured")
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	go s.sweepExpiredSessions()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// sweepExpiredSessions purges expired session rows on an interval until
// shutdown. Expired rows are also deleted lazily on lookup; the sweep keeps
// rows for sessions nobody presents again from piling up.
func (s *Server) sweepExpiredSessions() {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			removed, err := s.sessions.DeleteExpired(ctx)
			cancel()
			if err != nil {
				s.logger.Error().Err(err).Msg("Expired session sweep failed")
				continue
			}
			if removed > 0 {
				s.logger.Debug().Int64("removed", removed).Msg("Purged expired sessions")
			}
		case <-s.stopSweep:
			return
		}
	}
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false

	if s.stopSweep != nil {
		close(s.stopSweep)
		s.stopSweep = nil
	}

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if s.database != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.database.Close()
		s.logger.Info().Msg("Database connection pool closed.")
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
