// Package web serves the challenge page over HTTP.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/verte-zerg/hundred/internal/page"
	"github.com/verte-zerg/hundred/internal/schedule"
	"github.com/verte-zerg/hundred/internal/theme"
)

// Server renders the tracker page and its JSON endpoints.
type Server struct {
	plan   schedule.Plan
	source page.Source
	prefs  theme.Preferences
	now    func() time.Time
	router *chi.Mux
}

// NewServer creates a new HTTP server. now defaults to time.Now.
func NewServer(plan schedule.Plan, source page.Source, prefs theme.Preferences, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}
	s := &Server{
		plan:   plan,
		source: source,
		prefs:  prefs,
		now:    now,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handlePage)
	r.Get("/questions.json", s.handleDocument)
	r.Get("/api/days", s.handleDays)
	r.Post("/theme", s.handleToggleTheme)

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
