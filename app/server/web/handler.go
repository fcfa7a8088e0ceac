// Package web provides HTTP handlers for the toggle page.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/toggler/app/enum"
	"github.com/umputun/toggler/app/session"
	"github.com/umputun/toggler/app/toggle"
)

//go:generate moq -out mocks/sessions.go -pkg mocks -skip-ensure -fmt goimports . Sessions
//go:generate moq -out mocks/palettesource.go -pkg mocks -skip-ensure -fmt goimports . PaletteSource

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Sessions defines session operations used by the page.
type Sessions interface {
	View(ctx context.Context, id string) (toggle.View, error)
	Apply(ctx context.Context, id string, t enum.Trigger) (toggle.View, error)
}

// PaletteSource provides the active palette.
type PaletteSource interface {
	Palette() toggle.Palette
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
}

// Handler handles web UI requests.
type Handler struct {
	sessions Sessions
	palette  PaletteSource
	tmpl     *template.Template
	baseURL  string
}

// New creates a new web handler.
func New(ss Sessions, ps PaletteSource, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Handler{sessions: ss, palette: ps, tmpl: tmpl, baseURL: cfg.BaseURL}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /web/panel", h.handlePanel)
	r.HandleFunc("POST /web/trigger/{trigger}", h.handleTrigger)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"faceStyle": faceStyle,
	}
}

// faceStyle renders inline css for a button face.
func faceStyle(c enum.Color) template.CSS {
	return template.CSS("background-color: " + c.Background() + "; color: " + c.Foreground() + ";") //nolint:gosec // values come from a fixed table
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	if _, err = tmpl.New("base.html").Parse(string(baseContent)); err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	for _, name := range []string{"panel"} {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		if _, parseErr := tmpl.New(name).Parse(string(content)); parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}
	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	View        toggle.View
	PaletteName string
	Theme       string
	BaseURL     string
}

// getTheme returns the current theme from cookie.
func (h *Handler) getTheme(r *http.Request) enum.Theme {
	cookie, err := r.Cookie("theme")
	if err != nil || cookie.Value == "" {
		return enum.ThemeSystem
	}
	if cookie.Value == enum.ThemeDark.String() || cookie.Value == enum.ThemeLight.String() {
		return enum.MustTheme(cookie.Value)
	}
	return enum.ThemeSystem
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}

// sessionID extracts the session id attached by the session middleware.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := session.FromContext(r.Context())
	if !ok {
		log.Printf("[ERROR] no session in request context for %s", r.URL.Path)
		http.Error(w, "session required", http.StatusInternalServerError)
		return "", false
	}
	return id, true
}

// render executes the named template, logging failures.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, view toggle.View) {
	data := templateData{
		View:        view,
		PaletteName: h.palette.Palette().Name,
		Theme:       h.getTheme(r).String(),
		BaseURL:     h.baseURL,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to execute template %s: %v", name, err)
	}
}
