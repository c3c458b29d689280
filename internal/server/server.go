// Package server provides the HTTP REST API for the program coach.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/daniel/program-coach/internal/config"
	"github.com/daniel/program-coach/internal/db"
	"github.com/daniel/program-coach/internal/engine"
	"github.com/daniel/program-coach/internal/llm"
	"github.com/daniel/program-coach/internal/server/middleware"
	"github.com/daniel/program-coach/internal/types"
)

// Store is the persistence surface the handlers need: intake profiles in
// both directions plus the active-program read. The db package satisfies it.
type Store interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error)
	SaveUserProfile(ctx context.Context, profile *types.UserProfile) error
	GetActiveProgram(ctx context.Context, userID uuid.UUID) (*db.ProgramRecord, error)
}

// Generator runs the full generation pipeline for a profile.
type Generator interface {
	Generate(ctx context.Context, profile types.UserProfile, opts engine.Options) (*engine.Output, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	llmClient  llm.Client
	store      Store
	generator  Generator
	jwtService *JWTService
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := newServer(database, engine.New(client, database), NewJWTService(jwtConfig))
	s.db = database
	s.llmClient = client
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for generation runs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires routes against the given dependencies. Tests use it
// directly with fakes.
func newServer(store Store, generator Generator, jwtService *JWTService) *Server {
	return &Server{
		store:      store,
		generator:  generator,
		jwtService: jwtService,
	}
}

// Handler builds the routed and middleware-wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.Handle("POST /api/generate", requireAuth(http.HandlerFunc(s.handleGenerate)))
	mux.Handle("PUT /api/profile", requireAuth(http.HandlerFunc(s.handleSaveProfile)))
	mux.Handle("GET /api/program", requireAuth(http.HandlerFunc(s.handleActiveProgram)))
	mux.HandleFunc("GET /api/landmarks/{userID}", s.handleLandmarks)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		if s.llmClient != nil {
			if err := s.llmClient.Close(); err != nil {
				log.Printf("Error closing LLM client: %v", err)
			}
		}
		if s.db != nil {
			s.db.Close()
		}
		return nil
	})

	return g.Wait()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
