package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/toggler/app/enum"
)

func TestMemory(t *testing.T) {
	m, err := NewMemory(time.Hour, 100)
	require.NoError(t, err)
	defer m.Close()
	testSessionBackend(t, m)
}

func TestMemory_MaxKeys(t *testing.T) {
	ctx := context.Background()
	m, err := NewMemory(time.Hour, 3)
	require.NoError(t, err)
	defer m.Close()

	for i := range 5 {
		require.NoError(t, m.Set(ctx, Session{ID: fmt.Sprintf("s%d", i), Mode: enum.ModeStop, Status: "x",
			ExpiresAt: time.Now().Add(time.Hour)}))
	}

	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = m.Get(ctx, "s0")
	require.ErrorIs(t, err, ErrNotFound, "oldest session evicted")
	_, err = m.Get(ctx, "s4")
	require.NoError(t, err)
}

func TestMemory_CacheTTL(t *testing.T) {
	ctx := context.Background()
	m, err := NewMemory(50*time.Millisecond, 10)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Set(ctx, Session{ID: "s", Mode: enum.ModeStop, Status: "x", ExpiresAt: time.Now().Add(time.Hour)}))
	_, err = m.Get(ctx, "s")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := m.Get(ctx, "s")
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestMemory_ConcurrentSetGet(t *testing.T) {
	ctx := context.Background()
	m, err := NewMemory(time.Hour, 10)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Set(ctx, Session{ID: "s", Mode: enum.ModeStop, Status: "x", ExpiresAt: time.Now().Add(time.Hour)}))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		mode := enum.ModeStop
		for range 1000 {
			mode = mode.Toggle()
			assert.NoError(t, m.Set(ctx, Session{ID: "s", Mode: mode, Status: "x", ExpiresAt: time.Now().Add(time.Hour)}))
		}
		close(stop)
	}()

	var misses int
	for done := false; !done; {
		select {
		case <-stop:
			done = true
		default:
			if _, err := m.Get(ctx, "s"); err != nil {
				misses++
			}
		}
	}
	wg.Wait()
	assert.Zero(t, misses, "session must stay visible while replaced")
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	assert.True(t, Session{ExpiresAt: now.Add(-time.Second)}.Expired(now))
	assert.True(t, Session{ExpiresAt: now}.Expired(now))
	assert.False(t, Session{ExpiresAt: now.Add(time.Second)}.Expired(now))
	assert.True(t, Session{}.Expired(now))
}
