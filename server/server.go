// Package server exposes the resolver over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/pokespeare/pokespeare"
)

// Server routes HTTP requests to the resolver.
//
// Routes:
//
//	GET /pokemon/{name}  Shakespearean description of a Pokemon
//	GET /health          liveness check
//	GET /metrics         Prometheus metrics (when configured)
type Server struct {
	router   *mux.Router
	resolver *pokespeare.Resolver
	logger   zerolog.Logger
	metrics  http.Handler
}

// Option is a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts the given handler at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// New creates a Server around the given resolver.
func New(resolver *pokespeare.Resolver, opts ...Option) *Server {
	s := &Server{
		resolver: resolver,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.router = mux.NewRouter()
	s.router.HandleFunc("/pokemon/{name}", s.handleGetPokemon).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics).Methods(http.MethodGet)
	}
	s.router.Use(s.logRequests)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// getPokemonResponse is the body of a successful lookup.
type getPokemonResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// errorResponse is the consistent error envelope for every failure.
type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleGetPokemon(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	out := s.resolver.Resolve(r.Context(), name)
	switch out.Kind {
	case pokespeare.OutcomeFound:
		// The response echoes the caller's spelling, not the cache key.
		writeJSON(w, http.StatusOK, getPokemonResponse{
			Name:        name,
			Description: out.Description,
		})
	case pokespeare.OutcomeNotFound:
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "Not Found"})
	default:
		// The reason is logged by the resolver; clients get a bare 500.
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal Server Error"})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// logRequests is a middleware logging one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
