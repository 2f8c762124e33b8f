package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/hangman/pkg/adapters/redis"
	"github.com/aretw0/hangman/pkg/domain"
	"github.com/aretw0/hangman/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_Contract(t *testing.T) {
	ports.RunWordStoreContract(t, func(t *testing.T) ports.WordStore {
		store, _ := newTestStore(t)
		return store
	})
}

func TestRedisStore_MissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestRedisStore_SkipsMalformedRecords(t *testing.T) {
	store, mr := newTestStore(t, redis.WithKey("test:words"))

	_, err := mr.RPush("test:words", "not-json", `{"word":" CAT ","clue":" Animal "}`)
	require.NoError(t, err)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.WordEntry{{Word: "cat", Clue: "Animal"}}, entries)
}

func TestRedisStore_Seed(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Append(ctx, domain.WordEntry{Word: "old", Clue: "Stale"}))
	require.NoError(t, store.Seed(ctx, []domain.WordEntry{
		{Word: "cat", Clue: "Animal"},
		{Word: "dog", Clue: "Pet"},
	}))

	entries, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.WordEntry{
		{Word: "cat", Clue: "Animal"},
		{Word: "dog", Clue: "Pet"},
	}, entries)

	list, err := mr.List(redis.DefaultKey)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := redis.New("://nope")
	assert.Error(t, err)
}
