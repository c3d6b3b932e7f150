// Package httpapi exposes word membership over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/roach88/fourword/internal/logging"
	"github.com/roach88/fourword/internal/words"
)

// Lookuper answers membership queries, surfacing storage failures.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (bool, error)
}

// Counter is implemented by lookups that can report how many words they hold.
// Health responses include the count when the lookup has one.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Words  *int   `json:"words,omitempty"`
}

// WordResponse is the body of a successful lookup.
type WordResponse struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server handles membership requests.
type Server struct {
	lookup Lookuper
	logger *slog.Logger
}

// NewServer creates a Server. A nil logger discards events.
func NewServer(lookup Lookuper, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{lookup: lookup, logger: logger}
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Get("/v1/words/{word}", s.checkWord)

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	counter, ok := s.lookup.(Counter)
	if !ok {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
		return
	}

	n, err := counter.Count(r.Context())
	if err != nil {
		s.logger.Warn("error counting valid words", "error", err)
		writeError(w, http.StatusServiceUnavailable, "word store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Words: &n})
}

func (s *Server) checkWord(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")

	if !words.Valid(word) {
		s.logger.Warn("invalid guess format, expected a 4-letter lowercase word", "guess", word)
		writeError(w, http.StatusBadRequest, "word must be exactly 4 lowercase letters")
		return
	}

	found, err := s.lookup.Lookup(r.Context(), word)
	if err != nil {
		s.logger.Warn("error checking if word is valid", "guess", word, "error", err)
		writeError(w, http.StatusServiceUnavailable, "word store unavailable")
		return
	}

	s.logger.Info("user guessed", "guess", word, "valid", found)
	writeJSON(w, http.StatusOK, WordResponse{Word: word, Valid: found})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
