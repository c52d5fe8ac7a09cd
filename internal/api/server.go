// Package api exposes schema validation as an HTTP service, so build
// pipelines can check configurations without installing the binary.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// Server represents the HTTP API server
type Server struct {
	router *chi.Mux
	addr   string
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port    int
	Version string
}

// NewServer creates a new API server with the given configuration
func NewServer(config ServerConfig) *Server {
	handler := NewHandler(config.Version)

	router := chi.NewRouter()
	setupMiddleware(router)
	setupRoutes(router, handler)

	return &Server{
		router: router,
		addr:   fmt.Sprintf(":%d", config.Port),
	}
}

// setupMiddleware configures the middleware chain
func setupMiddleware(router *chi.Mux) {
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.Default(),
		NoColor: false,
	}))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(httprate.LimitByIP(100, 1*time.Minute))
}

// setupRoutes configures the API routes
func setupRoutes(router *chi.Mux, handler *Handler) {
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Get("/version", handler.Version)
		r.Post("/validate", handler.Validate)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Printf("Starting validation server on %s", s.addr)

	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// StartWithContext starts the HTTP server with graceful shutdown support
func (s *Server) StartWithContext(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Printf("Validation server listening on %s", s.addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
			return err
		}

		log.Println("Server stopped gracefully")
		return nil

	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}
