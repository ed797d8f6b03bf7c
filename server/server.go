package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ghiac/suitenav"
	"github.com/ghiac/suitenav/config"
	"github.com/ghiac/suitenav/log"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server represents the HTTP server
type Server struct {
	config *config.Config
	sn     *suitenav.SuiteNav
	router *gin.Engine
}

// NewServer creates a new HTTP server serving the suite header routes
func NewServer(cfg *config.Config, sn *suitenav.SuiteNav) *Server {
	if log.Log.DebugEnabled() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	sn.RegisterRoutes(router)

	return &Server{
		config: cfg,
		sn:     sn,
		router: router,
	}
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	if !s.config.HTTP.Enabled {
		log.Log.Infof("HTTP server is disabled")
		return nil
	}

	if err := s.sn.Start(ctx); err != nil {
		return fmt.Errorf("failed to start nav file watcher: %w", err)
	}

	address := s.config.GetAddress()
	srv := &http.Server{
		Addr:              address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Log.Infof("Starting HTTP server on %s", address)
		log.Log.Infof("Available endpoints:")
		log.Log.Infof("  GET  /suitenav - Suite shell page with header")
		log.Log.Infof("  GET  /suitenav/header - Header fragment (?path= marks the active item)")
		log.Log.Infof("  POST /suitenav/header/sidebar/toggle - Toggle sidebar")
		log.Log.Infof("  GET  /suitenav/url - Build a cross-app URL")
		log.Log.Infof("  GET  /suitenav/graph - Navigation graph")
		log.Log.Infof("  GET  /suitenav/health - Health check")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Log.Infof("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return <-errCh
}

// requestLogger logs every request at debug level
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Log.Debugf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
		for _, err := range c.Errors {
			log.Log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err.Err)
		}
	}
}
