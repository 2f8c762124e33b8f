package words

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/aretw0/hangman/pkg/ports"
)

// Source serves word entries from a WordStore.
// It validates what the store returns, picks entries at random and
// validates new entries before they reach the store.
type Source struct {
	store  ports.WordStore
	picker ports.Picker
	logger *slog.Logger

	mu      sync.RWMutex
	entries []domain.WordEntry
}

// Option configures a Source.
type Option func(*Source)

// WithPicker injects the random index selection. Use a seeded *rand.Rand for replayable rounds.
func WithPicker(p ports.Picker) Option {
	return func(s *Source) {
		s.picker = p
	}
}

// WithSeed is a shortcut for WithPicker over a math/rand generator.
// A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(s *Source) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.picker = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used to report skipped entries.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// NewSource creates a Source over the given store. Call Load before PickRandom.
func NewSource(store ports.WordStore, opts ...Option) *Source {
	s := &Source{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.picker == nil {
		WithSeed(0)(s)
	}
	return s
}

// Load reads the store and keeps the valid entries.
// Returns domain.ErrSourceNotFound from the store, or domain.ErrEmptySource
// when no valid entry remains. On error the previously loaded entries are kept.
func (s *Source) Load(ctx context.Context) ([]domain.WordEntry, error) {
	raw, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	valid := make([]domain.WordEntry, 0, len(raw))
	for _, e := range raw {
		e = e.Normalize()
		if err := e.Validate(); err != nil {
			s.logger.Debug("Skipping invalid entry", "word", e.Word, "err", err)
			continue
		}
		valid = append(valid, e)
	}
	if len(valid) == 0 {
		return nil, domain.ErrEmptySource
	}

	s.mu.Lock()
	s.entries = valid
	s.mu.Unlock()

	s.logger.Debug("Word source loaded", "entries", len(valid), "skipped", len(raw)-len(valid))
	return slices.Clone(valid), nil
}

// Entries returns the currently loaded entries.
func (s *Source) Entries() []domain.WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// PickRandom returns a uniformly random loaded entry.
func (s *Source) PickRandom() (domain.WordEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return domain.WordEntry{}, domain.ErrEmptySource
	}
	return s.entries[s.picker.Intn(len(s.entries))], nil
}

// Append validates the entry and persists it to the store.
// The loaded entries are not changed until the next Load.
func (s *Source) Append(ctx context.Context, entry domain.WordEntry) (domain.WordEntry, error) {
	entry = entry.Normalize()
	if err := entry.Validate(); err != nil {
		return entry, err
	}
	if err := s.store.Append(ctx, entry); err != nil {
		return entry, fmt.Errorf("failed to append entry: %w", err)
	}
	return entry, nil
}
