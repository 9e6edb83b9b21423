package server

import (
	"context"
	"net/http"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/config"
	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/router"
)

// Server represents the HTTP server
type Server struct {
	http *http.Server
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	engine, err := router.SetupRouter(cfg)
	if err != nil {
		return nil, err
	}

	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
