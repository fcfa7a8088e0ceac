// Package server provides HTTP server for the toggle page and its API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/toggler/app/enum"
	"github.com/umputun/toggler/app/server/api"
	"github.com/umputun/toggler/app/server/web"
	"github.com/umputun/toggler/app/toggle"
)

// Server represents the HTTP server.
type Server struct {
	sessions   Sessions
	palette    PaletteSource
	counter    SessionCounter
	cfg        Config
	version    string
	baseURL    string
	apiHandler *api.Handler
	webHandler *web.Handler
	staticFS   fs.FS // embedded static files
}

// Sessions binds requests to session states.
// Defined here (consumer side) to allow different session implementations.
type Sessions interface {
	Middleware(next http.Handler) http.Handler
	View(ctx context.Context, id string) (toggle.View, error)
	Apply(ctx context.Context, id string, t enum.Trigger) (toggle.View, error)
}

// PaletteSource provides the active palette.
type PaletteSource interface {
	Palette() toggle.Palette
}

// SessionCounter reports the number of live sessions.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string // base URL path for reverse proxy (e.g., /toggler)

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance.
func New(ss Sessions, ps PaletteSource, sc SessionCounter, cfg Config) (*Server, error) {
	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	s := &Server{
		sessions: ss,
		palette:  ps,
		counter:  sc,
		cfg:      cfg,
		version:  cfg.Version,
		baseURL:  cfg.BaseURL,
		staticFS: staticContent,
	}

	webHandler, err := web.New(ss, ps, web.Config{BaseURL: cfg.BaseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	s.webHandler = webHandler
	s.apiHandler = api.New(ss, ps)

	return s, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	// strip prefix for all routes under base URL
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	// anything outside of base URL redirects into it
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		target := s.baseURL + r.URL.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	})
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware (applies to all routes)
	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("toggler", "umputun", s.version),
		rest.Ping,
	)

	// routes without session
	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))
	router.HandleFunc("GET /health", s.handleHealth)

	// page routes, session created on first access
	router.Group().Route(func(webRouter *routegroup.Bundle) {
		webRouter.Use(s.sessions.Middleware)
		s.webHandler.Register(webRouter)
	})

	// json api, shares the session cookie with the page
	router.Mount("/api/v1").Route(func(apiRouter *routegroup.Bundle) {
		apiRouter.Use(s.sessions.Middleware)
		s.apiHandler.Register(apiRouter)
	})

	return router
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024 // 64KB default
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// shutdownTimeout returns the configured shutdown timeout, or default 5s if not set.
func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 5 * time.Second
}
