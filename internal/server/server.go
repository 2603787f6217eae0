// Package server provides the HTTP REST API for the company data extractor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/feldges/data-extractor/internal/config"
	"github.com/feldges/data-extractor/internal/extract"
	"github.com/feldges/data-extractor/internal/jobs"
	"github.com/feldges/data-extractor/internal/llm"
	"github.com/feldges/data-extractor/internal/store"
)

// maxUploadBytes caps accepted PDF uploads at 50 MB.
const maxUploadBytes = 50 << 20

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	snapshots  store.Store
	manager    *jobs.Manager
	client     llm.Client
}

// New creates a new server instance: snapshot store (filesystem or
// PostgreSQL per config), Gemini client, extraction engine and job manager.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	snapshots, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		snapshots.Close()
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	docs := store.NewDocumentStore(cfg.DocumentDir())
	engine := extract.NewEngine(client, snapshots, docs)
	manager := jobs.NewManager(engine, snapshots, docs, cfg.MaxExtractions)

	s := &Server{
		snapshots: snapshots,
		manager:   manager,
		client:    client,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPG(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot database: %w", err)
		}
		return pg, nil
	}
	return store.NewFSStore(cfg.SnapshotDir()), nil
}

// Handler builds the route table. Exposed separately so tests can drive the
// API through httptest without a listening socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /companies", s.handleSubmit)
	mux.HandleFunc("GET /companies", s.handleListCompanies)
	mux.HandleFunc("GET /companies/{id}", s.handleGetCompany)
	mux.HandleFunc("GET /companies/{id}/status", s.handleStatus)
	mux.HandleFunc("GET /companies/{id}/copy/{field}", s.handleCopyField)
	mux.HandleFunc("GET /companies/{id}/financials.tsv", s.handleFinancialsTSV)
	mux.HandleFunc("GET /companies/{id}/financials.xlsx", s.handleFinancialsXLSX)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.client != nil {
		if err := s.client.Close(); err != nil {
			log.Printf("Error closing model client: %v", err)
		}
	}
	if err := s.snapshots.Close(); err != nil {
		log.Printf("Error closing snapshot store: %v", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with timing.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
