// Package server provides the HTTP server and routing for the energy intelligence service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/energyintel/internal/di"
	chathandlers "github.com/aristath/energyintel/internal/modules/chat/handlers"
	historyhandlers "github.com/aristath/energyintel/internal/modules/history/handlers"
	markethandlers "github.com/aristath/energyintel/internal/modules/market/handlers"
	newshandlers "github.com/aristath/energyintel/internal/modules/news/handlers"
	sectorshandlers "github.com/aristath/energyintel/internal/modules/sectors/handlers"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Port      int
	DevMode   bool
	Container *di.Container // DI container with all services
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	port           int
	container      *di.Container
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		port:           cfg.Port,
		container:      cfg.Container,
		systemHandlers: NewSystemHandlers(cfg.Container, cfg.Log),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // a cold news refresh runs several upstream queries
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware installs the chain shared by every route. Compression is
// skipped in dev mode so responses stay readable with curl.
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(
		middleware.Recoverer,
		middleware.RequestID,
		middleware.RealIP,
		s.loggingMiddleware,
		middleware.Timeout(100*time.Second),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
	)

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/favicon.ico", s.handleFavicon)

	c := s.container

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/system/status", s.systemHandlers.HandleSystemStatus)
		r.Get("/system/jobs", s.systemHandlers.HandleJobs)

		markethandlers.NewHandler(c.MarketSnapshot, s.log).RegisterRoutes(r)
		newshandlers.NewHandler(c.NewsEngine, s.log).RegisterRoutes(r)
		historyhandlers.NewHandler(c.HistoryResolver, s.log).RegisterRoutes(r)
		chathandlers.NewHandler(c.MarketSnapshot, s.log).RegisterRoutes(r)
		sectorshandlers.NewHandler(c.SectorGenerator, s.log).RegisterRoutes(r)
	})
}

// Router exposes the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware records one line per request. Server errors log at
// error level, client errors at warn, and polling endpoints at debug.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		var event *zerolog.Event
		switch status := ww.Status(); {
		case status >= http.StatusInternalServerError:
			event = s.log.Error()
		case status >= http.StatusBadRequest:
			event = s.log.Warn()
		case quietPaths[r.URL.Path]:
			event = s.log.Debug()
		default:
			event = s.log.Info()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Request served")
	})
}

// quietPaths are hit by dashboard polling and health probes
var quietPaths = map[string]bool{
	"/health":            true,
	"/api/live-data":     true,
	"/api/system/status": true,
}
