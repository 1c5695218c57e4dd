package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"spv_wallet_summary/internal/config"
	"spv_wallet_summary/internal/logger"
	"spv_wallet_summary/pkg/summaryapi"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     logger.AppLogger
}

// NewServer creates a new instance of the REST API server.
func NewServer(service summaryapi.Service, appLogger logger.AppLogger, cfg *config.ServerConfig) (*Server, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil for Server")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for Server")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil for Server")
	}

	h, err := NewHTTPHandler(service, appLogger.With("component", "http-handler"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handler: %w", err)
	}

	smux := setupRouter(h)

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           smux,
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
	}

	return &Server{
		httpServer: server,
		logger:     appLogger,
	}, nil
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("-------------------------------------")
	s.logger.Info("API Server starting", "address", s.httpServer.Addr)
	s.logger.Info("Available Endpoints:")
	s.logger.Info("  GET    /accounts/{account}/transactions?since=<ms>")
	s.logger.Info("  POST   /accounts/{account}/transactions")
	s.logger.Info("  GET    /accounts/{account}/transactions/{txid}")
	s.logger.Info("  DELETE /accounts/{account}/transactions/{txid}")
	s.logger.Info("-------------------------------------")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("HTTP server ListenAndServe error", "error", err)
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
		return err
	}
	s.logger.Info("HTTP server stopped gracefully.")
	return nil
}

// setupRouter creates a new ServeMux and registers all API handlers.
func setupRouter(h *HTTPHandler) *http.ServeMux {
	smux := http.NewServeMux()

	smux.HandleFunc("GET /accounts/{account}/transactions", h.HandleGetTransactions)
	smux.HandleFunc("POST /accounts/{account}/transactions", h.HandleRecordSnapshot)
	smux.HandleFunc("GET /accounts/{account}/transactions/{txid}", h.HandleGetTransaction)
	smux.HandleFunc("DELETE /accounts/{account}/transactions/{txid}", h.HandleCancel)

	return smux
}
