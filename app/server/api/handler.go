// Package api provides HTTP handlers for the JSON API.
package api

import (
	"context"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/toggler/app/enum"
	"github.com/umputun/toggler/app/server/internal"
	"github.com/umputun/toggler/app/session"
	"github.com/umputun/toggler/app/toggle"
)

//go:generate moq -out mocks/sessions.go -pkg mocks -skip-ensure -fmt goimports . Sessions
//go:generate moq -out mocks/palettesource.go -pkg mocks -skip-ensure -fmt goimports . PaletteSource

// Sessions defines session operations used by the API.
type Sessions interface {
	View(ctx context.Context, id string) (toggle.View, error)
	Apply(ctx context.Context, id string, t enum.Trigger) (toggle.View, error)
}

// PaletteSource provides the active palette.
type PaletteSource interface {
	Palette() toggle.Palette
}

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	sessions Sessions
	palette  PaletteSource
}

// New creates a new API handler.
func New(ss Sessions, ps PaletteSource) *Handler {
	return &Handler{sessions: ss, palette: ps}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /state", h.handleState)
	r.HandleFunc("POST /trigger/{trigger}", h.handleTrigger)
	r.HandleFunc("GET /palette", h.handlePalette)
}

// handleState returns the view of the caller's session.
// GET /api/v1/state
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	id, ok := session.FromContext(r.Context())
	if !ok {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, nil, "no session")
		return
	}
	view, err := h.sessions.View(r.Context(), id)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to load state")
		return
	}
	rest.RenderJSON(w, view)
}

// handleTrigger applies a trigger to the caller's session and returns the new view.
// POST /api/v1/trigger/{trigger}
func (h *Handler) handleTrigger(w http.ResponseWriter, r *http.Request) {
	trigger, err := internal.TriggerFromPath(r)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, err.Error())
		return
	}
	id, ok := session.FromContext(r.Context())
	if !ok {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, nil, "no session")
		return
	}
	view, err := h.sessions.Apply(r.Context(), id, trigger)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to apply trigger")
		return
	}
	log.Printf("[DEBUG] api trigger %s, mode=%s", trigger, view.Mode)
	rest.RenderJSON(w, view)
}

// handlePalette returns the active palette.
// GET /api/v1/palette
func (h *Handler) handlePalette(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, h.palette.Palette())
}
