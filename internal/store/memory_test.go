package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stgibson/boggle/internal/game"
)

func TestMemorySaveGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore(0)

	_, err := s.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	g := &game.Game{ID: "g1", Size: 4}
	require.NoError(t, s.Save(ctx, g))
	got, err := s.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Same(t, g, got)
}

func TestMemoryExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore(time.Hour).(*memory)
	m.now = func() time.Time { return clock }

	require.NoError(t, m.Save(ctx, &game.Game{ID: "old"}))

	clock = clock.Add(30 * time.Minute)
	_, err := m.Get(ctx, "old")
	require.NoError(t, err)

	clock = clock.Add(31 * time.Minute)
	_, err = m.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)

	// The expired entry is swept on the next save.
	require.NoError(t, m.Save(ctx, &game.Game{ID: "new"}))
	m.mu.RLock()
	_, stillThere := m.games["old"]
	m.mu.RUnlock()
	assert.False(t, stillThere)
}

func TestMemoryConcurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			assert.NoError(t, s.Save(ctx, &game.Game{ID: id}))
			_, err := s.Get(ctx, id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}
