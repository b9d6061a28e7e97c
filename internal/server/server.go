package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizforge/internal/quizgen"
)

// Config holds the API server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string

	// Timeout bounds each generation request. Zero disables the bound.
	Timeout time.Duration
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:    ":8000",
		Timeout: 60 * time.Second,
	}
}

// Server is the quiz generation API process.
type Server struct {
	cfg       Config
	generator quizgen.Generator
	log       *logrus.Logger
	router    http.Handler
}

// New wires the handlers into a chi router.
func New(cfg Config, generator quizgen.Generator, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}

	s := &Server{
		cfg:       cfg,
		generator: generator,
		log:       log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/", s.handleHealth)
	r.Post("/generate-quiz", s.handleGenerateQuiz)

	s.router = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe blocks serving the API.
func (s *Server) ListenAndServe() error {
	s.log.WithField("addr", s.cfg.Addr).Info("quiz API listening")
	return http.ListenAndServe(s.cfg.Addr, s.router)
}

// corsMiddleware allows all origins, methods and headers, matching the
// deployment posture of the UI process being served from anywhere.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
