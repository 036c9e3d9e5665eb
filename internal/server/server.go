// Package server exposes the drawing engine over HTTP.
//
// Two flavors of endpoint mirror the interactive drawing tool:
//
//   - Stateless: GET /drawing.svg and /drawing.json take the five input
//     fields plus the available viewport as query parameters and render in
//     one shot. Omitting all five input fields renders the initial
//     placeholder drawing.
//   - Session-based: POST /sessions stores normalized inputs once (the
//     calculate trigger); GET /sessions/{id}/drawing.svg re-renders them
//     for each new viewport (the resize trigger); GET /sessions/{id}/spacing
//     returns the textual spacing summary.
//
// Sessions live in memory and expire; nothing is persisted.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/drafthaus/orthodraw/pkg/drawing/styles"
	"github.com/drafthaus/orthodraw/pkg/session"
)

// Default viewport reported when a client omits the available size.
const (
	defaultAvailW = 800.0
	defaultAvailH = 600.0
)

// Option configures a Server.
type Option func(*Server)

// WithTheme sets the theme used for SVG responses without an explicit
// theme parameter.
func WithTheme(t styles.Theme) Option {
	return func(s *Server) { s.theme = t }
}

// WithSessionTTL sets how long stored inputs stay renderable.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) { s.ttl = ttl }
}

// Server holds the HTTP surface's dependencies.
type Server struct {
	logger *log.Logger
	store  session.Store
	theme  styles.Theme
	ttl    time.Duration
}

// New creates a server rendering with the given logger and session store.
func New(logger *log.Logger, store session.Store, opts ...Option) *Server {
	s := &Server{
		logger: logger,
		store:  store,
		theme:  styles.Paper(),
		ttl:    session.DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler assembles the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Get("/drawing.svg", s.handleDrawingSVG)
	r.Get("/drawing.json", s.handleDrawingJSON)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Get("/{id}/drawing.svg", s.handleSessionDrawingSVG)
		r.Get("/{id}/spacing", s.handleSessionSpacing)
		r.Delete("/{id}", s.handleDeleteSession)
	})

	return r
}

// requestLogger logs method, path, status and duration for every request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
