package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lcw/v2"
)

// Memory keeps sessions in an expirable LRU cache. Sessions are lost on restart.
// Set replaces an entry in two cache calls, mu keeps readers from seeing the gap.
type Memory struct {
	cache lcw.LoadingCache[Session]
	mu    sync.RWMutex
}

// NewMemory creates an in-memory session store.
// ttl is the cache-level expiration, maxKeys limits the number of live sessions, least recently used are evicted.
func NewMemory(ttl time.Duration, maxKeys int) (*Memory, error) {
	o := lcw.NewOpts[Session]()
	cache, err := lcw.NewExpirableCache(o.MaxKeys(maxKeys), o.TTL(ttl))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Memory{cache: cache}, nil
}

// Get returns the session with the given id.
// Returns ErrNotFound if the session does not exist or is expired.
func (m *Memory) Get(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.cache.Peek(id)
	if !ok || sess.Expired(time.Now()) {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// Set creates or replaces the session.
func (m *Memory) Set(_ context.Context, sess Session) error {
	sess.UpdatedAt = time.Now().UTC()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Delete(sess.ID)
	if _, err := m.cache.Get(sess.ID, func() (Session, error) { return sess, nil }); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

// Delete removes the session.
// Returns ErrNotFound if the session does not exist.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cache.Peek(id); !ok {
		return ErrNotFound
	}
	m.cache.Delete(id)
	return nil
}

// DeleteExpired removes sessions expired by their own deadline and returns the number removed.
// Entries past the cache ttl are dropped by the cache itself.
func (m *Memory) DeleteExpired(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	var deleted int64
	for _, id := range m.cache.Keys() {
		if sess, ok := m.cache.Peek(id); ok && sess.Expired(now) {
			m.cache.Delete(id)
			deleted++
		}
	}
	return deleted, nil
}

// Count returns the number of cached sessions.
func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache.Stat().Keys, nil
}

// Close releases the cache.
func (m *Memory) Close() error {
	if err := m.cache.Close(); err != nil {
		return fmt.Errorf("failed to close cache: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (m *Memory) Stats() lcw.CacheStat {
	return m.cache.Stat()
}
