package ports

import (
	"context"

	"github.com/aretw0/hangman/pkg/domain"
)

// WordStore defines the backing store of a word source.
// Implementations open and release their resources per call;
// no handle is held between operations.
type WordStore interface {
	// Load reads every well-formed entry from the store, in stored order.
	// Returns domain.ErrSourceNotFound if the backing store does not exist.
	// Malformed records are skipped, not reported.
	Load(ctx context.Context) ([]domain.WordEntry, error)

	// Append persists an entry in a format compatible with Load.
	// Entries are validated by the caller.
	Append(ctx context.Context, entry domain.WordEntry) error
}

// Picker selects a uniformly random index in [0, n).
// *rand.Rand satisfies this interface.
type Picker interface {
	Intn(n int) int
}

// WordSource is the validated view over a WordStore used by the session loop.
type WordSource interface {
	// Load (re)reads the backing store.
	// Returns domain.ErrSourceNotFound or domain.ErrEmptySource.
	Load(ctx context.Context) ([]domain.WordEntry, error)

	// PickRandom returns a random loaded entry, or domain.ErrEmptySource.
	PickRandom() (domain.WordEntry, error)

	// Append validates and persists an entry, returning its normalized form.
	// Returns an error wrapping domain.ErrInvalidEntry for rejected entries.
	Append(ctx context.Context, entry domain.WordEntry) (domain.WordEntry, error)
}
