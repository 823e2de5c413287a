// internal/store/memory.go
//
// In-memory implementation of the game session Store.
// Boards are held only for the duration of a game; nothing is persisted.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Entries older than the TTL are reported as missing and swept on Save.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stgibson/boggle/internal/game"
)

// ErrNotFound is returned by Get for unknown or expired games.
var ErrNotFound = errors.New("game not found")

// Store defines the session interface for games.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	// Returns ErrNotFound if the game is unknown or expired.
	Get(ctx context.Context, id string) (*game.Game, error)
}

// entry is a stored game with its insertion time.
type entry struct {
	game    *game.Game
	savedAt time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex     // guards games
	games map[string]entry // keyed by Game.ID
	ttl   time.Duration    // <= 0 disables expiry
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store whose entries expire
// after ttl (ttl <= 0 keeps them forever).
func NewMemoryStore(ttl time.Duration) Store {
	return &memory{games: make(map[string]entry), ttl: ttl, now: time.Now}
}

// Save adds or updates the game and drops expired entries.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if m.ttl > 0 {
		for id, e := range m.games {
			if now.Sub(e.savedAt) > m.ttl {
				delete(m.games, id)
			}
		}
	}
	m.games[g.ID] = entry{game: g, savedAt: now}
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.games[id]
	if !ok || (m.ttl > 0 && m.now().Sub(e.savedAt) > m.ttl) {
		return nil, ErrNotFound
	}
	return e.game, nil
}
