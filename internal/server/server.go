// Package server exposes the detection engine over HTTP as a browser
// form and a JSON API under /api/v1.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"essaylens/internal/config"
	"essaylens/internal/detect"
)

const shutdownTimeout = 10 * time.Second

// Server runs the HTTP front end.
type Server struct {
	http *http.Server
	log  *zap.Logger
}

// New assembles the router and the underlying http.Server.
func New(cfg config.ServerConfig, engine *detect.Engine, log *zap.Logger) *Server {
	h := NewHandler(engine, log)
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	router := NewRouter(h, log, limiter)

	return &Server{
		http: &http.Server{
			Addr:         cfg.Listen,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("http server stopped")
	return nil
}
