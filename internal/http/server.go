package http

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/bicihub/internal/observability/logger"
)

// Server envuelve http.Server con timeouts y shutdown ordenado.
type Server struct {
	srv *http.Server
}

// NewServer crea el server HTTP del gateway.
func NewServer(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// ListenAndServe bloquea hasta que el server cae.
func (s *Server) ListenAndServe() error {
	logger.L().Info("http server listening", logger.String("addr", s.srv.Addr))
	return s.srv.ListenAndServe()
}

// Shutdown apaga el server con gracia.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
