package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/toggler/app/server/internal"
)

// handleIndex renders the full page for the current session.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.sessions.View(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to load view: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "base.html", view)
}

// handlePanel renders the buttons and the status line only.
func (h *Handler) handlePanel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.sessions.View(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to load view: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "panel", view)
}

// handleTrigger applies a button press. HTMX requests get the refreshed panel,
// plain form posts are redirected back to the page.
func (h *Handler) handleTrigger(w http.ResponseWriter, r *http.Request) {
	trigger, err := internal.TriggerFromPath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.sessions.Apply(r.Context(), id, trigger)
	if err != nil {
		log.Printf("[ERROR] failed to apply %s: %v", trigger, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
		return
	}
	h.render(w, r, "panel", view)
}

// handleThemeToggle toggles the theme between light and dark.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	newTheme := h.getTheme(r).Toggle()
	http.SetCookie(w, &http.Cookie{
		Name:     "theme",
		Value:    newTheme.String(),
		Path:     h.cookiePath(),
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// trigger full page refresh
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}
