package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jkalnins/daybook/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server wraps http.Server with graceful shutdown.
type Server struct {
	httpServer *http.Server
	log        logging.Logger
}

func NewServer(addr string, handler http.Handler, log logging.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info(ctx, "http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.log.Info(shutdownCtx, "http server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}
