package server

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
)

// handleHealth reports liveness of the session backend, the number of live sessions and the active palette.
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.counter.Count(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusServiceUnavailable, err, "session backend unavailable")
		return
	}
	rest.RenderJSON(w, rest.JSON{
		"status":   "ok",
		"sessions": count,
		"palette":  s.palette.Palette().Name,
	})
}
