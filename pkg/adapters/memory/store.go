package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/hangman/pkg/domain"
)

// Store implements ports.WordStore in memory.
// Safe for concurrent use.
type Store struct {
	entries []domain.WordEntry
	mu      sync.RWMutex
}

// NewStore creates a store seeded with the given entries.
func NewStore(entries ...domain.WordEntry) *Store {
	return &Store{
		entries: slices.Clone(entries),
	}
}

// NewDefaultStore creates a store seeded with the built-in word bank.
func NewDefaultStore() *Store {
	return NewStore(DefaultWords()...)
}

// Load returns a copy of the stored entries so callers can't mutate the store.
func (s *Store) Load(ctx context.Context) ([]domain.WordEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries), nil
}

// Append adds the entry at the end of the list.
func (s *Store) Append(ctx context.Context, entry domain.WordEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}
