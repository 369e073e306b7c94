package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cottington/wealth-calculator/internal/session"
)

const sweepInterval = time.Minute

// Server runs the HTTP listener and the session sweeper until its context ends.
type Server struct {
	Handler         http.Handler
	Sessions        *session.Store
	Logger          *zap.Logger
	ShutdownTimeout time.Duration
}

// Serve accepts connections on ln. When ctx is cancelled the server drains
// in-flight requests for up to ShutdownTimeout and Serve returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}
	srv := &http.Server{
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("api listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := s.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		log.Info("api shutting down", zap.Duration("timeout", timeout))
		return srv.Shutdown(shutdownCtx)
	})
	if s.Sessions != nil {
		g.Go(func() error {
			if err := s.Sessions.Run(gctx, sweepInterval); err != nil && gctx.Err() == nil {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
