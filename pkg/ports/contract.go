package ports

import (
	"context"
	"testing"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunWordStoreContract runs a suite of tests to verify that a WordStore implementation
// adheres to the defined interface contract.
// newStore must return a fresh store holding no entries.
func RunWordStoreContract(t *testing.T, newStore func(t *testing.T) WordStore) {
	ctx := context.Background()

	t.Run("Append and Load", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Append(ctx, domain.WordEntry{Word: "cat", Clue: "Animal"}))
		require.NoError(t, store.Append(ctx, domain.WordEntry{Word: "gopher", Clue: "Go Mascot"}))

		entries, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.WordEntry{
			{Word: "cat", Clue: "Animal"},
			{Word: "gopher", Clue: "Go Mascot"},
		}, entries)
	})

	t.Run("Load Returns Copies", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Append(ctx, domain.WordEntry{Word: "dog", Clue: "Pet"}))

		first, err := store.Load(ctx)
		require.NoError(t, err)
		first[0].Word = "mutated"

		second, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "dog", second[0].Word)
	})
}
