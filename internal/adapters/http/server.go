package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"registration/internal/config"
	"registration/internal/platform/logger"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	server *http.Server
	logger logger.Logger
	ln     net.Listener
}

func NewServer(cfg *config.HttpConfig, log logger.Logger, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		},
		logger: log,
	}
}

// Start binds the listener synchronously and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("Failed to listen", logger.String("addr", s.server.Addr), logger.Error(err))
		return err
	}
	s.ln = ln

	s.logger.Info("Starting HTTP server", logger.String("addr", ln.Addr().String()))

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Failed to serve", logger.Error(err))
		}
	}()

	return nil
}

// Addr returns the bound address once started, or the configured one before.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.server.Addr
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
