// Package store provides backends for session-scoped toggle state.
package store

import (
	"errors"
	"time"

	"github.com/umputun/toggler/app/enum"
)

// ErrNotFound is returned when a session is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is the stored state of one browser session.
type Session struct {
	ID        string    `db:"id"`
	Mode      enum.Mode `db:"mode"`
	Status    string    `db:"status"`
	ExpiresAt time.Time `db:"expires_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Expired reports whether the session is expired at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// RWLocker is a subset of sync.RWMutex used by the SQL store.
type RWLocker interface {
	RLock()
	RUnlock()
	Lock()
	Unlock()
}

// noopLocker is used for postgres, which handles concurrency itself.
type noopLocker struct{}

func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
