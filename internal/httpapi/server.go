package httpapi

import (
	"io/fs"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"log/slog"

	swaggerfiles "github.com/swaggo/files/v2"

	"github.com/ossian/todo-api/internal/errs"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	log *slog.Logger
	ui  fs.FS
	rt  *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by basic request/response logging and panic recovery.
func New(logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	// metrics sit outside the recoverer so recovered panics count as 500s
	r.Use(metricsMiddleware)
	r.Use(recoverer(logger))

	// swaggerfiles.FS is already rooted at the swagger-ui dist
	s := &Server{log: logger, ui: swaggerfiles.FS, rt: r}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
	s.rt.Get("/", s.root)
	// Todos
	s.rt.Get("/todos", s.getTodos)
	s.rt.Post("/todos", s.createTodo)
	s.rt.Get("/todos/{id}", s.getTodo)
	s.rt.Put("/todos/{id}", s.updateTodo)
	s.rt.Delete("/todos/{id}", s.deleteTodo)
	// Documentation explorer
	s.rt.Get("/explorer/*", s.explorer)
	// Operational (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Handle("/metrics", metricsHandler())

	s.rt.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, errs.NotFound("not found"))
	})
	s.rt.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, errs.New(http.StatusMethodNotAllowed, "method not allowed"))
	})
}
