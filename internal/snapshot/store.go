// Package snapshot gives readers outside the ingestion loop a safe view of
// the game. The engine owns the live, mutable state; the store holds a
// serialized copy refreshed after each message, so HTTP handlers never touch
// the loop's objects.
package snapshot

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/courtside-live/livestats/internal/domain"
)

// Store keeps the latest immutable game snapshot.
type Store struct {
	mu        sync.RWMutex
	raw       []byte
	updatedAt time.Time
	now       func() time.Time
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Update replaces the stored snapshot with a serialized copy of the game.
// Call it from the ingestion loop (e.g. as an engine listener).
func (s *Store) Update(game *domain.Game) {
	raw, err := json.Marshal(game)
	if err != nil {
		// The domain model is plain data; a marshal failure means a bug,
		// but the previous snapshot stays serveable either way.
		return
	}
	s.mu.Lock()
	s.raw = raw
	s.updatedAt = s.now()
	s.mu.Unlock()
}

// Bytes returns the latest snapshot JSON. The bool is false before the first
// update. Callers must not modify the returned slice.
func (s *Store) Bytes() ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw, s.raw != nil
}

// Game decodes the latest snapshot into a fresh Game detached from the live
// state. The bool is false before the first update.
func (s *Store) Game() (*domain.Game, bool) {
	raw, ok := s.Bytes()
	if !ok {
		return nil, false
	}
	var game domain.Game
	if err := json.Unmarshal(raw, &game); err != nil {
		return nil, false
	}
	return &game, true
}

// UpdatedAt returns when the snapshot was last refreshed.
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
