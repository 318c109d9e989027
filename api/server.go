// Package api owns the HTTP server lifecycle for the web app.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
)

const shutdownGrace = 10 * time.Second

// Server wraps http.Server with graceful shutdown.
type Server struct {
	inner *http.Server
	logg  *logger.Logger
}

func NewServer(addr string, handler http.Handler, logg *logger.Logger) *Server {
	return &Server{
		inner: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logg: logg,
	}
}

// Run serves until the context is cancelled, then drains in-flight
// requests within the grace period.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.inner.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if s.logg != nil {
		s.logg.Info(context.Background(), "shutting down server")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.inner.Shutdown(shutdownCtx)
}
