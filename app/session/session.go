// Package session owns per-browser toggle states: it maps a cookie token to a stored state,
// initializes new sessions, applies triggers and cleans up expired sessions.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/toggler/app/enum"
	"github.com/umputun/toggler/app/store"
	"github.com/umputun/toggler/app/toggle"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// CookieName is the name of the session cookie.
const CookieName = "toggler-session"

const (
	defaultTTL             = 24 * time.Hour
	defaultCleanupInterval = 10 * time.Minute
)

// Store is the session backend.
type Store interface {
	Get(ctx context.Context, id string) (store.Session, error)
	Set(ctx context.Context, sess store.Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// Presenter applies triggers to states and renders them.
type Presenter interface {
	Initialize(st *toggle.State) bool
	Handle(st *toggle.State, t enum.Trigger)
	Render(st toggle.State) toggle.View
}

// Config holds session manager configuration.
type Config struct {
	TTL             time.Duration // idle time before a session expires
	CleanupInterval time.Duration // how often expired sessions are removed
	CookiePath      string        // cookie path, "/" if empty
}

// Manager binds requests to session states.
type Manager struct {
	store     Store
	presenter Presenter
	cfg       Config
	mu        sync.Mutex // serializes load-mutate-save
}

type ctxKey struct{}

// New makes a session manager.
func New(st Store, p Presenter, cfg Config) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = defaultCleanupInterval
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = "/"
	}
	return &Manager{store: st, presenter: p, cfg: cfg}
}

// Middleware resolves the session for every request, creating and initializing a new one
// if the cookie is missing, unknown or expired. The session id is available via FromContext.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := m.resolve(r)
		if err != nil {
			log.Printf("[ERROR] failed to resolve session: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		secure := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     m.cfg.CookiePath,
			MaxAge:   int(m.cfg.TTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   secure,
		})
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

// resolve returns the id of an existing session from the request cookie or creates a new session.
// An existing session gets its expiration extended, any request counts as activity.
func (m *Manager) resolve(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		err := m.touch(r.Context(), cookie.Value)
		if err == nil {
			return cookie.Value, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return "", err
		}
	}
	return m.Create(r.Context())
}

// touch extends the expiration of a stored session, returns store.ErrNotFound for unknown or expired ones.
func (m *Manager) touch(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to load session: %w", err)
	}
	return m.save(ctx, id, toggle.State{Mode: sess.Mode, Status: sess.Status})
}

// Create starts a new initialized session and returns its id.
func (m *Manager) Create(ctx context.Context) (string, error) {
	var st toggle.State
	m.presenter.Initialize(&st)
	id := uuid.NewString()
	if err := m.save(ctx, id, st); err != nil {
		return "", err
	}
	log.Printf("[DEBUG] session %s created, mode=%s", maskID(id), st.Mode)
	return id, nil
}

// View renders the current state of the session.
func (m *Manager) View(ctx context.Context, id string) (toggle.View, error) {
	st, err := m.load(ctx, id)
	if err != nil {
		return toggle.View{}, err
	}
	return m.presenter.Render(st), nil
}

// Apply handles the trigger for the session and returns the view of the new state.
// Handling completes and is stored before the view is rendered.
func (m *Manager) Apply(ctx context.Context, id string, t enum.Trigger) (toggle.View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.load(ctx, id)
	if err != nil {
		return toggle.View{}, err
	}
	m.presenter.Handle(&st, t)
	if err := m.save(ctx, id, st); err != nil {
		return toggle.View{}, err
	}
	log.Printf("[DEBUG] session %s: %s -> mode=%s", maskID(id), t, st.Mode)
	return m.presenter.Render(st), nil
}

// load returns the stored state, a missing or expired session yields a fresh initialized state.
func (m *Manager) load(ctx context.Context, id string) (toggle.State, error) {
	sess, err := m.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		var st toggle.State
		m.presenter.Initialize(&st)
		return st, nil
	}
	if err != nil {
		return toggle.State{}, fmt.Errorf("failed to load session: %w", err)
	}
	st := toggle.State{Mode: sess.Mode, Status: sess.Status}
	m.presenter.Initialize(&st)
	return st, nil
}

// save stores the state and extends the session expiration.
func (m *Manager) save(ctx context.Context, id string, st toggle.State) error {
	sess := store.Session{ID: id, Mode: st.Mode, Status: st.Status, ExpiresAt: time.Now().Add(m.cfg.TTL)}
	if err := m.store.Set(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Invalidate removes the session, the next request starts a fresh one.
func (m *Manager) Invalidate(ctx context.Context, id string) {
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("[WARN] failed to delete session %s: %v", maskID(id), err)
	}
}

// StartCleanup starts background cleanup of expired sessions.
// Runs periodically until context is canceled.
func (m *Manager) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.cfg.CleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Printf("[INFO] session cleanup stopped")
				return
			case <-ticker.C:
				deleted, err := m.store.DeleteExpired(ctx)
				if err != nil {
					log.Printf("[WARN] failed to cleanup expired sessions: %v", err)
					continue
				}
				if deleted > 0 {
					log.Printf("[INFO] cleaned up %d expired sessions", deleted)
				}
			}
		}
	}()

	log.Printf("[INFO] session cleanup started (interval: %s)", m.cfg.CleanupInterval)
}

// WithID returns a copy of ctx carrying the session id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the session id set by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// maskID shortens a session id for logs.
func maskID(id string) string {
	if len(id) <= 8 {
		return "****"
	}
	return id[:8] + "****"
}
