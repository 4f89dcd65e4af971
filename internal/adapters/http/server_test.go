package http

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"registration/internal/config"
	"registration/internal/platform/logger"
)

type ServerTestSuite struct {
	suite.Suite
	logger logger.Logger
}

func (s *ServerTestSuite) SetupTest() {
	s.logger = logger.NewNop()
}

func (s *ServerTestSuite) config(host string, port int) *config.HttpConfig {
	return &config.HttpConfig{
		Server: config.HttpServerConfig{
			Host:         host,
			Port:         port,
			ReadTimeout:  10,
			WriteTimeout: 15,
			IdleTimeout:  60,
		},
	}
}

func (s *ServerTestSuite) TestNewServer() {
	handler := http.NewServeMux()

	server := NewServer(s.config("localhost", 8080), s.logger, handler)

	s.Assert().Equal("localhost:8080", server.Addr())
	s.Assert().Equal(handler, server.server.Handler)
	s.Assert().Equal(10*time.Second, server.server.ReadTimeout)
	s.Assert().Equal(15*time.Second, server.server.WriteTimeout)
	s.Assert().Equal(60*time.Second, server.server.IdleTimeout)
}

func (s *ServerTestSuite) TestNewServer_IPv6Host() {
	server := NewServer(s.config("::1", 9000), s.logger, http.NewServeMux())

	s.Assert().Equal("[::1]:9000", server.Addr())
}

func (s *ServerTestSuite) TestStartServeStop() {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	server := NewServer(s.config("127.0.0.1", 0), s.logger, mux)

	s.Require().NoError(server.Start(context.Background()))

	resp, err := http.Get("http://" + server.Addr() + "/ping")
	s.Require().NoError(err)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().NoError(resp.Body.Close())
	s.Assert().Equal("pong", string(body))

	s.Require().NoError(server.Stop(context.Background()))
	_, err = http.Get("http://" + server.Addr() + "/ping")
	s.Assert().Error(err)
}

func (s *ServerTestSuite) TestStart_PortInUse() {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer func() { _ = ln.Close() }()

	port := ln.Addr().(*net.TCPAddr).Port
	server := NewServer(s.config("127.0.0.1", port), s.logger, http.NewServeMux())

	s.Assert().Error(server.Start(context.Background()))
}

func (s *ServerTestSuite) TestStart_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	server := NewServer(s.config("127.0.0.1", 0), s.logger, http.NewServeMux())

	s.Assert().ErrorIs(server.Start(ctx), context.Canceled)
}

func (s *ServerTestSuite) TestStop_NotStarted() {
	server := NewServer(s.config("127.0.0.1", 0), s.logger, http.NewServeMux())

	s.Assert().NoError(server.Stop(context.Background()))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
