package demo

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glaze-ui/glaze/pkg/live"
	"github.com/glaze-ui/glaze/pkg/middleware"
	"github.com/glaze-ui/glaze/pkg/render"
	"github.com/glaze-ui/glaze/pkg/toast"
)

// Server is the demo application: one page showing the form components and
// a live toast overlay driven over WebSocket.
type Server struct {
	manager  *toast.Manager
	hub      *live.Hub
	renderer *render.Renderer
	logger   *slog.Logger
	router   chi.Router
}

// New builds the demo server. Metrics are registered on a private registry
// exposed at /metrics, so constructing multiple servers never collides.
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	manager := toast.NewManager(
		toast.WithLogger(logger),
		toast.WithMetrics(toast.NewMetrics(toast.MetricsConfig{Registry: registry})),
	)

	s := &Server{
		manager:  manager,
		hub:      live.NewHub(manager, live.WithLogger(logger)),
		renderer: render.NewRenderer(render.Config{}),
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Prometheus(middleware.WithRegistry(registry)))
	r.Use(middleware.OpenTelemetry())

	r.Get("/", s.handleIndex)
	r.Handle("/ws", s.hub)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", s.handleHealthz)

	s.router = r
	return s
}

// Manager returns the toast manager backing the demo, so callers can drive
// notifications from server code as well.
func (s *Server) Manager() *toast.Manager {
	return s.manager
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close shuts down the live hub.
func (s *Server) Close() {
	s.hub.Close()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte("<!DOCTYPE html>\n"))
	if err := s.renderer.RenderToWriter(w, buildPage(s.manager)); err != nil {
		s.logger.Error("page render failed", "error", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
